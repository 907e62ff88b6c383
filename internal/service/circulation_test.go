package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
	repository_mocks "github.com/campuslib/circulation/internal/repository/mocks"
)

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(string, any) error { return nil }

// newTestService pins the clock so day arithmetic in tests is stable.
func newTestService(repo *repository_mocks.MockRepository, today time.Time) *Service {
	svc := NewService(repo, nopEnqueuer{}, zap.NewNop())
	svc.now = func() time.Time { return today }
	return svc
}

func activeSub(today time.Time, maxBooks int, finePerDay float64) model.Subscription {
	return model.Subscription{
		ID:           1,
		StudentID:    7,
		PlanID:       2,
		StartDate:    today.AddDate(0, 0, -3),
		PlanName:     "Standard",
		MaxBooks:     maxBooks,
		DurationDays: 30,
		FinePerDay:   finePerDay,
	}
}

func TestBorrow(t *testing.T) {
	today := date("2024-01-10")
	student := model.Student{ID: 7, Username: "alice"}

	type mockBehavior func(repo *repository_mocks.MockRepository)

	tests := []struct {
		name    string
		mock    mockBehavior
		wantErr error
	}{
		{
			name: "ok",
			mock: func(repo *repository_mocks.MockRepository) {
				repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
				repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
					Return(activeSub(today, 2, 10), nil)
				repo.EXPECT().UnpaidFineCount(gomock.Any(), int64(7)).Return(0, nil)
				repo.EXPECT().OpenRecordCount(gomock.Any(), int64(7)).Return(1, nil)
				repo.EXPECT().
					CreateBorrow(gomock.Any(), int64(7), int64(42), today, today.AddDate(0, 0, 7)).
					Return(model.BorrowedBook{
						BorrowRecord: model.BorrowRecord{RecordUID: "uid-1", BorrowDate: today},
						Title:        "Dune",
						CopyID:       "9780441-1",
					}, nil)
			},
		},
		{
			name: "no subscription",
			mock: func(repo *repository_mocks.MockRepository) {
				repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
				repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
					Return(model.Subscription{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNoSubscription,
		},
		{
			name: "expired subscription",
			mock: func(repo *repository_mocks.MockRepository) {
				expired := activeSub(today, 2, 10)
				expired.StartDate = today.AddDate(0, 0, -40)
				repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
				repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).Return(expired, nil)
			},
			wantErr: errs.ErrSubscriptionExpired,
		},
		{
			name: "unpaid fines block before limit check",
			mock: func(repo *repository_mocks.MockRepository) {
				repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
				repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
					Return(activeSub(today, 2, 10), nil)
				repo.EXPECT().UnpaidFineCount(gomock.Any(), int64(7)).Return(1, nil)
			},
			wantErr: errs.ErrUnpaidFines,
		},
		{
			name: "limit reached",
			mock: func(repo *repository_mocks.MockRepository) {
				repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
				repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
					Return(activeSub(today, 2, 10), nil)
				repo.EXPECT().UnpaidFineCount(gomock.Any(), int64(7)).Return(0, nil)
				repo.EXPECT().OpenRecordCount(gomock.Any(), int64(7)).Return(2, nil)
			},
			wantErr: errs.ErrBorrowLimit,
		},
		{
			name: "no available copy",
			mock: func(repo *repository_mocks.MockRepository) {
				repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
				repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
					Return(activeSub(today, 2, 10), nil)
				repo.EXPECT().UnpaidFineCount(gomock.Any(), int64(7)).Return(0, nil)
				repo.EXPECT().OpenRecordCount(gomock.Any(), int64(7)).Return(0, nil)
				repo.EXPECT().
					CreateBorrow(gomock.Any(), int64(7), int64(42), today, today.AddDate(0, 0, 7)).
					Return(model.BorrowedBook{}, errs.ErrNotAvailable)
			},
			wantErr: errs.ErrNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockRepository(ctrl)
			tt.mock(repo)
			svc := newTestService(repo, today)

			rec, err := svc.Borrow(context.Background(), "alice", 42)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "uid-1", rec.RecordUID)
			require.Equal(t, "Dune", rec.Title)
		})
	}
}

func TestReturn(t *testing.T) {
	today := date("2024-01-15")
	student := model.Student{ID: 7, Username: "alice"}

	record := func(due string, returned *time.Time, studentID int64) model.BorrowRecord {
		return model.BorrowRecord{
			ID:         31,
			RecordUID:  "uid-1",
			StudentID:  studentID,
			BorrowDate: date(due).AddDate(0, 0, -7),
			DueDate:    date(due),
			ReturnDate: returned,
		}
	}

	t.Run("on time, no fine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetRecordByUID(gomock.Any(), "uid-1").
			Return(record("2024-01-20", nil, 7), nil)
		repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
			Return(activeSub(today, 2, 10), nil)
		repo.EXPECT().CloseBorrow(gomock.Any(), int64(31), today, float64(0)).
			Return(nil, nil)

		fine, err := newTestService(repo, today).Return(context.Background(), "alice", "uid-1")
		require.NoError(t, err)
		require.Nil(t, fine)
	})

	t.Run("late return creates fine at plan rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetRecordByUID(gomock.Any(), "uid-1").
			Return(record("2024-01-11", nil, 7), nil)
		repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
			Return(activeSub(today, 2, 5), nil)
		repo.EXPECT().CloseBorrow(gomock.Any(), int64(31), today, float64(20)).
			Return(&model.Fine{BorrowRecordID: 31, Amount: 20}, nil)

		fine, err := newTestService(repo, today).Return(context.Background(), "alice", "uid-1")
		require.NoError(t, err)
		require.NotNil(t, fine)
		require.InDelta(t, 20, fine.Amount, 1e-9)
	})

	t.Run("late return without subscription history uses default rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetRecordByUID(gomock.Any(), "uid-1").
			Return(record("2024-01-12", nil, 7), nil)
		repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
			Return(model.Subscription{}, errs.ErrNotFound)
		repo.EXPECT().CloseBorrow(gomock.Any(), int64(31), today, float64(30)).
			Return(&model.Fine{BorrowRecordID: 31, Amount: 30}, nil)

		fine, err := newTestService(repo, today).Return(context.Background(), "alice", "uid-1")
		require.NoError(t, err)
		require.NotNil(t, fine)
	})

	t.Run("already returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		returned := date("2024-01-12")
		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetRecordByUID(gomock.Any(), "uid-1").
			Return(record("2024-01-11", &returned, 7), nil)

		_, err := newTestService(repo, today).Return(context.Background(), "alice", "uid-1")
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	})

	t.Run("someone else's record reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetRecordByUID(gomock.Any(), "uid-1").
			Return(record("2024-01-20", nil, 99), nil)

		_, err := newTestService(repo, today).Return(context.Background(), "alice", "uid-1")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestSubscribe(t *testing.T) {
	today := date("2024-02-01")
	student := model.Student{ID: 7, Username: "alice"}
	plan := model.SubscriptionPlan{ID: 2, Name: "Standard", MaxBooks: 4, DurationDays: 30, FinePerDay: 5}

	t.Run("first subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetPlan(gomock.Any(), int64(2)).Return(plan, nil)
		repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
			Return(model.Subscription{}, errs.ErrNotFound)
		repo.EXPECT().ReplaceSubscription(gomock.Any(), int64(7), int64(2), today).
			Return(model.Subscription{PlanID: 2, PlanName: "Standard", StartDate: today, DurationDays: 30}, nil)

		sub, err := newTestService(repo, today).Subscribe(context.Background(), "alice", 2)
		require.NoError(t, err)
		require.Equal(t, "Standard", sub.PlanName)
	})

	t.Run("active subscription rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetPlan(gomock.Any(), int64(2)).Return(plan, nil)
		repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
			Return(activeSub(today, 2, 10), nil)

		_, err := newTestService(repo, today).Subscribe(context.Background(), "alice", 2)
		require.ErrorIs(t, err, errs.ErrActiveSubscription)
	})

	t.Run("expired subscription replaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expired := activeSub(today, 2, 10)
		expired.StartDate = today.AddDate(0, 0, -60)

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetPlan(gomock.Any(), int64(2)).Return(plan, nil)
		repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).Return(expired, nil)
		repo.EXPECT().ReplaceSubscription(gomock.Any(), int64(7), int64(2), today).
			Return(model.Subscription{PlanID: 2, PlanName: "Standard", StartDate: today, DurationDays: 30}, nil)

		sub, err := newTestService(repo, today).Subscribe(context.Background(), "alice", 2)
		require.NoError(t, err)
		require.Equal(t, today, sub.StartDate)
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
		repo.EXPECT().GetPlan(gomock.Any(), int64(99)).
			Return(model.SubscriptionPlan{}, errs.ErrNotFound)

		_, err := newTestService(repo, today).Subscribe(context.Background(), "alice", 99)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestDashboard(t *testing.T) {
	today := date("2024-03-01")
	student := model.Student{ID: 7, Username: "alice"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	returned := date("2024-02-10")
	records := []model.BorrowedBook{
		{BorrowRecord: model.BorrowRecord{RecordUID: "open-1", DueDate: date("2024-03-05")}, Title: "Dune"},
		{BorrowRecord: model.BorrowRecord{RecordUID: "closed-1", DueDate: date("2024-02-08"), ReturnDate: &returned}, Title: "Solaris"},
	}
	fines := []model.FineInfo{
		{RecordUID: "closed-1", Amount: 20, Paid: false},
		{RecordUID: "closed-0", Amount: 15, Paid: true},
	}

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().GetStudent(gomock.Any(), "alice").Return(student, nil)
	repo.EXPECT().ListRecords(gomock.Any(), int64(7)).Return(records, nil)
	repo.EXPECT().ListFines(gomock.Any(), int64(7)).Return(fines, nil)
	repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
		Return(activeSub(today, 2, 10), nil)

	d, err := newTestService(repo, today).Dashboard(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, d.Pending, 1)
	require.Len(t, d.Returned, 1)
	require.Equal(t, "open-1", d.Pending[0].RecordUID)
	require.InDelta(t, 35, d.TotalFines, 1e-9)
	require.InDelta(t, 20, d.PendingFines, 1e-9)
	require.NotNil(t, d.Subscription)
	require.False(t, d.IsExpired)
}
