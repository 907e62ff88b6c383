package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
)

// Borrow checks eligibility in order (first failure wins), then commits the
// record and flips the chosen copy atomically in the repository:
// active unexpired subscription, no unpaid fines, open records under the
// plan limit, and an available copy.
func (s *Service) Borrow(ctx context.Context, username string, bookID int64) (model.BorrowedBook, error) {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return model.BorrowedBook{}, err
	}

	sub, err := s.repo.MostRecentSubscription(ctx, student.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.BorrowedBook{}, errs.ErrNoSubscription
		}
		return model.BorrowedBook{}, err
	}
	today := s.today()
	if sub.Expired(today) {
		return model.BorrowedBook{}, errs.ErrSubscriptionExpired
	}

	unpaid, err := s.repo.UnpaidFineCount(ctx, student.ID)
	if err != nil {
		return model.BorrowedBook{}, err
	}
	if unpaid > 0 {
		return model.BorrowedBook{}, errs.ErrUnpaidFines
	}

	open, err := s.repo.OpenRecordCount(ctx, student.ID)
	if err != nil {
		return model.BorrowedBook{}, err
	}
	if open >= sub.MaxBooks {
		return model.BorrowedBook{}, errs.ErrBorrowLimit
	}

	rec, err := s.repo.CreateBorrow(ctx, student.ID, bookID, today, today.AddDate(0, 0, loanPeriodDays))
	if err != nil {
		return model.BorrowedBook{}, err
	}
	s.log.Info("borrow",
		zap.String("student", username),
		zap.String("record", rec.RecordUID),
		zap.String("copy", rec.CopyID))
	return rec, nil
}

// Return closes the record, restores the copy and, when the return is late,
// materializes the fine. Returning a closed record is an error, not a no-op.
func (s *Service) Return(ctx context.Context, username, recordUID string) (*model.Fine, error) {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.GetRecordByUID(ctx, recordUID)
	if err != nil {
		return nil, err
	}
	if rec.StudentID != student.ID {
		return nil, errs.ErrNotFound
	}
	if rec.ReturnDate != nil {
		return nil, errs.ErrAlreadyReturned
	}

	rate, err := s.fineRate(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	fine, err := s.repo.CloseBorrow(ctx, rec.ID, today, ComputeFine(rec.DueDate, today, rate))
	if err != nil {
		return nil, err
	}
	s.log.Info("return",
		zap.String("student", username),
		zap.String("record", recordUID),
		zap.Bool("fined", fine != nil))
	return fine, nil
}

func (s *Service) MyBorrowedBooks(ctx context.Context, username string) ([]model.BorrowedBook, error) {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRecords(ctx, student.ID)
}

func (s *Service) MyFines(ctx context.Context, username string) ([]model.FineInfo, error) {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFines(ctx, student.ID)
}

func (s *Service) PayFine(ctx context.Context, username, recordUID string) error {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return err
	}
	return s.repo.PayFine(ctx, student.ID, recordUID)
}

// Dashboard fans out the student's records, fines and subscription lookups.
func (s *Service) Dashboard(ctx context.Context, username string) (model.Dashboard, error) {
	student, err := s.repo.GetStudent(ctx, username)
	if err != nil {
		return model.Dashboard{}, err
	}

	var (
		records []model.BorrowedBook
		fines   []model.FineInfo
		sub     model.Subscription
		hasSub  = true
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		records, err = s.repo.ListRecords(ctx, student.ID)
		return err
	})
	gg.Go(func() error {
		var err error
		fines, err = s.repo.ListFines(ctx, student.ID)
		return err
	})
	gg.Go(func() error {
		var err error
		sub, err = s.repo.MostRecentSubscription(ctx, student.ID)
		if errors.Is(err, errs.ErrNotFound) {
			hasSub = false
			return nil
		}
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	d := model.Dashboard{
		Pending:  make([]model.BorrowedBook, 0, len(records)),
		Returned: make([]model.BorrowedBook, 0, len(records)),
		Fines:    fines,
	}
	for _, rec := range records {
		if rec.Open() {
			d.Pending = append(d.Pending, rec)
		} else {
			d.Returned = append(d.Returned, rec)
		}
	}
	for _, f := range fines {
		d.TotalFines += f.Amount
		if !f.Paid {
			d.PendingFines += f.Amount
		}
	}
	if hasSub {
		d.Subscription = &sub
		d.IsExpired = sub.Expired(s.today())
	}
	return d, nil
}
