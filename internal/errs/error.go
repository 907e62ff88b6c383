package errs

import (
	"errors"
)

// Domain errors. Handlers map these onto HTTP statuses: validation -> 400,
// not found -> 404, state conflicts -> 409.
var (
	ErrNotFound            = errors.New("not found")
	ErrNotAvailable        = errors.New("no available copy")
	ErrAlreadyReturned     = errors.New("record already returned")
	ErrNoSubscription      = errors.New("no subscription plan")
	ErrSubscriptionExpired = errors.New("subscription expired")
	ErrUnpaidFines         = errors.New("unpaid fines outstanding")
	ErrBorrowLimit         = errors.New("borrow limit reached")
	ErrActiveSubscription  = errors.New("plan already active")
	ErrFinePaid            = errors.New("fine already paid")
	ErrUserExists          = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)
