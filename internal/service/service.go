package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	enq  Enqueuer

	now func() time.Time
}

func NewService(repo repository.Repository, enq Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		enq:  enq,
		now:  time.Now,
	}
}

// today truncates the clock to a UTC calendar day. All ledger dates are
// day-granular.
func (s *Service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
