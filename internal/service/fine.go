package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/campuslib/circulation/internal/errs"
)

const (
	// loanPeriodDays is the fixed loan period; due dates are not plan-derived.
	loanPeriodDays = 7

	// defaultFinePerDay applies when a student has no subscription history.
	defaultFinePerDay = 10
)

// ComputeFine derives the fine for a late return: whole late days times the
// per-day rate. Not late means no fine. Deterministic for the same inputs, so
// re-deriving an amount from a closed record always matches the stored one.
func ComputeFine(dueDate, returnDate time.Time, ratePerDay float64) float64 {
	lateDays := int(returnDate.Sub(dueDate).Hours() / 24)
	if lateDays <= 0 {
		return 0
	}
	return float64(lateDays) * ratePerDay
}

// fineRate resolves the per-day rate from the student's most recent
// subscription, expired or not, mirroring the lookup used at borrow time.
// No history falls back to the default rate.
func (s *Service) fineRate(ctx context.Context, studentID int64) (float64, error) {
	sub, err := s.repo.MostRecentSubscription(ctx, studentID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return defaultFinePerDay, nil
		}
		return 0, err
	}
	return sub.FinePerDay, nil
}
