package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/model"
)

//go:generate mockgen -destination=mocks/mock.go -package=repository_mocks github.com/campuslib/circulation/internal/repository Repository

type Catalog interface {
	ListBooks(ctx context.Context) ([]model.BookSummary, error)
	SearchBooks(ctx context.Context, query string, planID int64) ([]model.BookSummary, error)
	RecommendedBooks(ctx context.Context) ([]model.Book, error)
	ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error)
	ExportBooks(ctx context.Context) ([]model.BookExportRow, error)
	ImportBookRow(ctx context.Context, row model.ImportBookRow) (bool, error)
}

type Subscriptions interface {
	ListPlans(ctx context.Context) ([]model.SubscriptionPlan, error)
	GetPlan(ctx context.Context, planID int64) (model.SubscriptionPlan, error)
	MostRecentSubscription(ctx context.Context, studentID int64) (model.Subscription, error)
	ReplaceSubscription(ctx context.Context, studentID, planID int64, start time.Time) (model.Subscription, error)
}

type Ledger interface {
	OpenRecordCount(ctx context.Context, studentID int64) (int, error)
	UnpaidFineCount(ctx context.Context, studentID int64) (int, error)
	CreateBorrow(ctx context.Context, studentID, bookID int64, borrowDate, dueDate time.Time) (model.BorrowedBook, error)
	GetRecordByUID(ctx context.Context, recordUID string) (model.BorrowRecord, error)
	CloseBorrow(ctx context.Context, recordID int64, returnDate time.Time, fineAmount float64) (*model.Fine, error)
	ListRecords(ctx context.Context, studentID int64) ([]model.BorrowedBook, error)
	ListFines(ctx context.Context, studentID int64) ([]model.FineInfo, error)
	PayFine(ctx context.Context, studentID int64, recordUID string) error
	ExportBorrowRecords(ctx context.Context) ([]model.BorrowExportRow, error)
	DueOn(ctx context.Context, day time.Time) ([]model.ReminderTarget, error)
	OverdueSince(ctx context.Context, threshold time.Time) ([]model.ReminderTarget, error)
}

type Users interface {
	CreateStudentAccount(ctx context.Context, req model.RegisterRequest, passwordHash string) (model.Student, error)
	GetUser(ctx context.Context, username string) (model.UserProfile, error)
	GetStudent(ctx context.Context, username string) (model.Student, error)
}

type Repository interface {
	Catalog
	Subscriptions
	Ledger
	Users
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookTableName     = `book`
	bookCopyTableName = `book_copy`
	planTableName     = `subscription_plan`
	userTableName     = `user_profile`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
