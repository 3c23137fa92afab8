package repositoryImp

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smartcrop/entities"
	"smartcrop/pkg/stats/repository"
)

type statsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StatsRepository { return &statsRepo{db} }

func (r *statsRepo) TouchUser(uid string, at time.Time) (*entities.UserProfile, bool, error) {
	var (
		p       entities.UserProfile
		created bool
	)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if created, err = ensureUser(tx, uid, &p); err != nil {
			return err
		}
		if err := tx.Model(&p).Updates(map[string]any{
			"logins_count":  gorm.Expr("logins_count + 1"),
			"last_login_at": at,
		}).Error; err != nil {
			return err
		}
		if err := bump(tx, "total_logins"); err != nil {
			return err
		}
		return tx.First(&p, "user_id = ?", uid).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &p, created, nil
}

func (r *statsRepo) CountPrediction(uid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var p entities.UserProfile
		if _, err := ensureUser(tx, uid, &p); err != nil {
			return err
		}
		if err := tx.Model(&p).Update("predictions_count", gorm.Expr("predictions_count + 1")).Error; err != nil {
			return err
		}
		return bump(tx, "total_predictions")
	})
}

func (r *statsRepo) Totals() (*entities.UsageStats, error) {
	var s entities.UsageStats
	if err := r.db.First(&s, entities.UsageStatsID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statsRepo) Users() ([]entities.UserProfile, error) {
	var out []entities.UserProfile
	if err := r.db.Order("predictions_count DESC, user_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ensureUser inserts the profile unless it exists and loads it. Only the
// insert that actually lands bumps total_users.
func ensureUser(tx *gorm.DB, uid string, p *entities.UserProfile) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entities.UserProfile{UserID: uid})
	if res.Error != nil {
		return false, res.Error
	}
	created := res.RowsAffected == 1
	if created {
		if err := bump(tx, "total_users"); err != nil {
			return false, err
		}
	}
	return created, tx.First(p, "user_id = ?", uid).Error
}

func bump(tx *gorm.DB, column string) error {
	return tx.Model(&entities.UsageStats{ID: entities.UsageStatsID}).
		Update(column, gorm.Expr(column+" + 1")).Error
}
