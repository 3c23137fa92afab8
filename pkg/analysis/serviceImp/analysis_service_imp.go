package serviceImp

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartcrop/entities"
	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/analysis/repository"
	"smartcrop/pkg/analysis/service"
	"smartcrop/pkg/logging"
	"smartcrop/pkg/metrics"
	"smartcrop/pkg/soil"
)

const (
	DefaultHistory = 20
	MaxHistory     = 100
)

type predictionCounter interface {
	CountPrediction(uid string) error
}

type analysisSvc struct {
	adv   agronomy.Advisor
	repo  repository.PredictionRepository
	stats predictionCounter
	now   func() time.Time
}

func NewAnalysisService(adv agronomy.Advisor, repo repository.PredictionRepository, stats predictionCounter) service.AnalysisService {
	return &analysisSvc{adv: adv, repo: repo, stats: stats, now: time.Now}
}

func (s *analysisSvc) Evaluate(in service.Input) service.Outcome {
	ph := in.PH.Clamp(soil.MinPH, soil.MaxPH)
	crop := strings.TrimSpace(in.Crop)
	if cp, ok := s.adv.Catalog().Find(crop); ok {
		crop = cp.Name
	}
	return service.Outcome{
		Crop:          crop,
		SoilType:      in.SoilType,
		Temperature:   in.Temperature,
		PH:            ph.Ptr(),
		Season:        in.Season,
		Analysis:      s.adv.Score(crop, in.SoilType, in.Temperature, ph, in.Season),
		SuitableCrops: s.adv.Rank(in.SoilType, in.Temperature, ph, in.Season),
	}
}

// Analyze never fails on bookkeeping: a prediction that cannot be stored is
// logged and the outcome is returned without an id.
func (s *analysisSvc) Analyze(ctx context.Context, uid string, in service.Input) (*service.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := s.Evaluate(in)
	metrics.RecordPrediction(out.Analysis.Suitable, len(out.SuitableCrops))

	p := &entities.Prediction{
		PublicID:    uuid.NewString(),
		UserID:      uid,
		Crop:        out.Crop,
		SoilType:    string(out.SoilType),
		Temperature: out.Temperature,
		PH:          out.PH,
		Season:      string(out.Season),
		Location:    strings.TrimSpace(in.Location),
		Score:       out.Analysis.Score,
		Suitable:    out.Analysis.Suitable,
		Result:      out.Analysis.Message,
		Penalties:   out.Analysis.Penalties,
		RankedCount: len(out.SuitableCrops),
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(p); err != nil {
		logging.Warn().Err(err).Str("uid", uid).Msg("[analysis] prediction not recorded")
		return &out, nil
	}
	out.ID = p.PublicID
	if s.stats != nil {
		if err := s.stats.CountPrediction(uid); err != nil {
			logging.Warn().Err(err).Str("uid", uid).Msg("[analysis] counters not updated")
		}
	}
	return &out, nil
}

func (s *analysisSvc) History(uid string, limit int) ([]entities.Prediction, error) {
	if limit <= 0 {
		limit = DefaultHistory
	}
	if limit > MaxHistory {
		limit = MaxHistory
	}
	return s.repo.ListByUser(uid, limit)
}
