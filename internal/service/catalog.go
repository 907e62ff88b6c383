package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
)

func (s *Service) ListBooks(ctx context.Context) ([]model.BookSummary, error) {
	return s.repo.ListBooks(ctx)
}

// SearchBooks is scoped to the catalog allowed in the student's plan; a
// student with no subscription sees nothing.
func (s *Service) SearchBooks(ctx context.Context, username, query string) ([]model.BookSummary, error) {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return nil, err
	}
	sub, err := s.repo.MostRecentSubscription(ctx, student.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return []model.BookSummary{}, nil
		}
		return nil, err
	}
	return s.repo.SearchBooks(ctx, query, sub.PlanID)
}

func (s *Service) RecommendedBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.RecommendedBooks(ctx)
}

func (s *Service) ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error) {
	return s.repo.ListCopies(ctx, bookID)
}
