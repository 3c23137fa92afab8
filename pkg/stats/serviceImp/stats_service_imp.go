package serviceImp

import (
	"crypto/subtle"
	"math"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartcrop/entities"
	"smartcrop/pkg/logging"
	repo "smartcrop/pkg/stats/repository"
	"smartcrop/pkg/stats/service"
)

type statsSvc struct {
	r             repo.StatsRepository
	adminPassword string
	now           func() time.Time
}

func NewStatsService(r repo.StatsRepository, adminPassword string) service.StatsService {
	return &statsSvc{r: r, adminPassword: adminPassword, now: time.Now}
}

func (s *statsSvc) Login(uid string) (*entities.UserProfile, error) {
	p, created, err := s.r.TouchUser(uid, s.now())
	if err != nil {
		return nil, err
	}
	if created {
		logging.Info().Str("uid", uid).Msg("[stats] new user")
	}
	return p, nil
}

func (s *statsSvc) CountPrediction(uid string) error { return s.r.CountPrediction(uid) }

func (s *statsSvc) Summary(password string) (*service.Summary, error) {
	if !s.checkPassword(password) {
		return nil, service.ErrForbidden
	}
	tot, err := s.r.Totals()
	if err != nil {
		return nil, err
	}
	users, err := s.r.Users()
	if err != nil {
		return nil, err
	}
	out := &service.Summary{
		TotalUsers:       tot.TotalUsers,
		TotalLogins:      tot.TotalLogins,
		TotalPredictions: tot.TotalPredictions,
		Users:            users,
	}
	if out.TotalUsers == 0 {
		out.TotalUsers = len(users)
	}
	if len(users) > 0 {
		out.AveragePredictions = math.Round(float64(tot.TotalPredictions)/float64(len(users))*10) / 10
	}
	return out, nil
}

// checkPassword accepts the configured password either as plain text or as a
// bcrypt hash. An unset password disables the admin view.
func (s *statsSvc) checkPassword(password string) bool {
	if s.adminPassword == "" || password == "" {
		return false
	}
	if strings.HasPrefix(s.adminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
}
