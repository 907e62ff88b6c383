package handler

import (
	"context"
	"io"

	"github.com/campuslib/circulation/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type CirculationService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.Student, error)
	Login(ctx context.Context, req model.LoginRequest) (string, error)

	ListBooks(ctx context.Context) ([]model.BookSummary, error)
	SearchBooks(ctx context.Context, username, query string) ([]model.BookSummary, error)
	RecommendedBooks(ctx context.Context) ([]model.Book, error)
	ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error)

	Borrow(ctx context.Context, username string, bookID int64) (model.BorrowedBook, error)
	Return(ctx context.Context, username, recordUID string) (*model.Fine, error)
	MyBorrowedBooks(ctx context.Context, username string) ([]model.BorrowedBook, error)
	MyFines(ctx context.Context, username string) ([]model.FineInfo, error)
	PayFine(ctx context.Context, username, recordUID string) error
	Dashboard(ctx context.Context, username string) (model.Dashboard, error)

	ListPlans(ctx context.Context) ([]model.SubscriptionPlan, error)
	Subscribe(ctx context.Context, username string, planID int64) (model.Subscription, error)
	MySubscription(ctx context.Context, username string) (model.Subscription, error)

	ExportBooks(ctx context.Context, w io.Writer) error
	ExportBorrowRecords(ctx context.Context, w io.Writer) error
	ImportBooks(ctx context.Context, r io.Reader) (int, error)
	DueSoonReminders(ctx context.Context) (int, error)
	OverdueReminders(ctx context.Context) (int, error)
}
