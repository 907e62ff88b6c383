package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
)

func (s *Service) ListPlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	return s.repo.ListPlans(ctx)
}

// Subscribe replaces any prior subscription for the student unless an
// unexpired one exists, which is rejected as a conflict.
func (s *Service) Subscribe(ctx context.Context, username string, planID int64) (model.Subscription, error) {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return model.Subscription{}, err
	}
	if _, err := s.repo.GetPlan(ctx, planID); err != nil {
		return model.Subscription{}, err
	}

	today := s.today()
	current, err := s.repo.MostRecentSubscription(ctx, student.ID)
	switch {
	case err == nil:
		if !current.Expired(today) {
			return model.Subscription{}, errs.ErrActiveSubscription
		}
	case !errors.Is(err, errs.ErrNotFound):
		return model.Subscription{}, err
	}

	sub, err := s.repo.ReplaceSubscription(ctx, student.ID, planID, today)
	if err != nil {
		return model.Subscription{}, err
	}
	s.log.Info("subscribe",
		zap.String("student", username),
		zap.String("plan", sub.PlanName))
	return sub, nil
}

func (s *Service) MySubscription(ctx context.Context, username string) (model.Subscription, error) {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return model.Subscription{}, err
	}
	return s.repo.MostRecentSubscription(ctx, student.ID)
}
