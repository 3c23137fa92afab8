package repositoryImp

import (
	"gorm.io/gorm"

	"smartcrop/entities"
	"smartcrop/pkg/analysis/repository"
)

type predictionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PredictionRepository { return &predictionRepo{db} }

func (r *predictionRepo) Create(p *entities.Prediction) error { return r.db.Create(p).Error }

func (r *predictionRepo) ListByUser(uid string, limit int) ([]entities.Prediction, error) {
	var out []entities.Prediction
	err := r.db.Where("user_id = ?", uid).Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
