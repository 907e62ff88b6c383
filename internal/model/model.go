package model

import (
	"time"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

type UserProfile struct {
	ID           int64  `json:"-" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PhoneNo      string `json:"phoneNo" db:"phone_no"`
	EmergencyNo  string `json:"emergencyContactNo" db:"emergency_contact_no"`
	Role         Role   `json:"role" db:"role"`
	PasswordHash string `json:"-" db:"password_hash"`
	IsActive     bool   `json:"isActive" db:"is_active"`
}

type Student struct {
	ID            int64  `json:"-" db:"id"`
	UserProfileID int64  `json:"-" db:"user_profile_id"`
	Username      string `json:"username" db:"username"`
	Email         string `json:"email" db:"email"`
	RollNumber    string `json:"rollNumber" db:"roll_number"`
	Branch        string `json:"branch" db:"branch"`
	Year          int    `json:"year" db:"year"`
}

type Author struct {
	ID   int64  `json:"-" db:"id"`
	Name string `json:"name" db:"name"`
}

type Category struct {
	ID       int64  `json:"-" db:"id"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`
}

type Book struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	ISBN          string    `json:"isbn" db:"isbn"`
	CategoryID    *int64    `json:"-" db:"category_id"`
	Description   string    `json:"description" db:"description"`
	PublishedDate time.Time `json:"publishedDate" db:"published_date"`
	Recommended   bool      `json:"recommended" db:"recommended"`
}

// BookSummary is the list/search row: a book with its joined authors,
// category and live available-copy count.
type BookSummary struct {
	ID              int64  `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	ISBN            string `json:"isbn" db:"isbn"`
	Authors         string `json:"authors" db:"authors"`
	Category        string `json:"category" db:"category"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
}

type CopyStatus string

const (
	CopyAvailable CopyStatus = "available"
	CopyBorrowed  CopyStatus = "borrowed"
	CopyLost      CopyStatus = "lost"
	CopyDamaged   CopyStatus = "damaged"
)

type BookCopy struct {
	ID       int64      `json:"-" db:"id"`
	BookID   int64      `json:"bookId" db:"book_id"`
	CopyID   string     `json:"copyId" db:"copy_id"`
	Status   CopyStatus `json:"status" db:"status"`
	Location string     `json:"location" db:"location"`
}

type SubscriptionPlan struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	MaxBooks     int     `json:"maxBooks" db:"max_books"`
	DurationDays int     `json:"durationDays" db:"duration_days"`
	FinePerDay   float64 `json:"finePerDay" db:"fine_per_day"`
	Price        float64 `json:"price" db:"price"`
}

// Subscription is a student_subscription row joined with its plan.
type Subscription struct {
	ID           int64     `json:"-" db:"id"`
	StudentID    int64     `json:"-" db:"student_id"`
	PlanID       int64     `json:"planId" db:"plan_id"`
	StartDate    time.Time `json:"startDate" db:"start_date"`
	PlanName     string    `json:"planName" db:"plan_name"`
	MaxBooks     int       `json:"maxBooks" db:"max_books"`
	DurationDays int       `json:"durationDays" db:"duration_days"`
	FinePerDay   float64   `json:"finePerDay" db:"fine_per_day"`
}

func (s Subscription) EndDate() time.Time {
	return s.StartDate.AddDate(0, 0, s.DurationDays)
}

// Expired reports whether the subscription no longer covers the given day.
func (s Subscription) Expired(today time.Time) bool {
	return today.After(s.EndDate())
}

type BorrowRecord struct {
	ID         int64      `json:"-" db:"id"`
	RecordUID  string     `json:"recordUid" db:"record_uid"`
	StudentID  int64      `json:"-" db:"student_id"`
	BookCopyID int64      `json:"-" db:"book_copy_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
}

func (r BorrowRecord) Open() bool {
	return r.ReturnDate == nil
}

func (r BorrowRecord) Late() bool {
	return r.ReturnDate != nil && r.ReturnDate.After(r.DueDate)
}

// BorrowedBook is a borrow record joined with its copy and book title.
type BorrowedBook struct {
	BorrowRecord
	Title    string `json:"title" db:"title"`
	CopyID   string `json:"copyId" db:"copy_id"`
	Location string `json:"location" db:"location"`
}

type Fine struct {
	ID             int64   `json:"-" db:"id"`
	BorrowRecordID int64   `json:"-" db:"borrow_record_id"`
	Amount         float64 `json:"amount" db:"amount"`
	Paid           bool    `json:"paid" db:"paid"`
}

// FineInfo is a fine joined with its record for student-facing listings.
type FineInfo struct {
	RecordUID  string     `json:"recordUid" db:"record_uid"`
	Title      string     `json:"title" db:"title"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
	Amount     float64    `json:"amount" db:"amount"`
	Paid       bool       `json:"paid" db:"paid"`
}

// BorrowExportRow feeds the staff CSV export of borrow records.
type BorrowExportRow struct {
	Student    string     `db:"student"`
	Title      string     `db:"title"`
	BorrowDate time.Time  `db:"borrow_date"`
	DueDate    time.Time  `db:"due_date"`
	ReturnDate *time.Time `db:"return_date"`
	FineAmount *float64   `db:"fine_amount"`
	FinePaid   *bool      `db:"fine_paid"`
}

// BookExportRow feeds the staff CSV export of the catalog.
type BookExportRow struct {
	Title   string `db:"title"`
	Authors string `db:"authors"`
	ISBN    string `db:"isbn"`
}

// ImportBookRow is one parsed line of the staff bulk-import CSV.
type ImportBookRow struct {
	Title         string
	Author        string
	ISBN          string
	Category      string
	Description   string
	PublishedDate time.Time
	Copies        int
}

// ReminderTarget identifies one open record qualifying for a reminder email.
type ReminderTarget struct {
	Email    string    `db:"email"`
	Username string    `db:"username"`
	Title    string    `db:"title"`
	DueDate  time.Time `db:"due_date"`
}

type ReminderKind string

const (
	ReminderDueSoon ReminderKind = "due-soon"
	ReminderOverdue ReminderKind = "overdue"
)

// ReminderMsg is the payload enqueued for the email dispatcher.
type ReminderMsg struct {
	Kind     ReminderKind `json:"kind"`
	Email    string       `json:"email"`
	Username string       `json:"username"`
	Title    string       `json:"title"`
	DueDate  time.Time    `json:"dueDate"`
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNo     string `json:"phoneNo" validate:"required"`
	EmergencyNo string `json:"emergencyContactNo"`
	RollNumber  string `json:"rollNumber" validate:"required"`
	Branch      string `json:"branch" validate:"required"`
	Year        int    `json:"year" validate:"required,min=1"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SubscribeRequest struct {
	PlanID int64 `json:"planId" validate:"required"`
}

// Dashboard aggregates a student's circulation state.
type Dashboard struct {
	Pending      []BorrowedBook `json:"pending"`
	Returned     []BorrowedBook `json:"returned"`
	Fines        []FineInfo     `json:"fines"`
	Subscription *Subscription  `json:"subscription"`
	TotalFines   float64        `json:"totalFines"`
	PendingFines float64        `json:"pendingFines"`
	IsExpired    bool           `json:"isExpired"`
}
