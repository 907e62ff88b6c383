package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/errs"
	md "github.com/campuslib/circulation/pkg/middleware"
	"github.com/campuslib/circulation/pkg/validate"
)

type Handler struct {
	svc CirculationService
	log *zap.Logger
}

func New(svc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	user := api.Group("", md.JwtAuthentication)
	user.GET("/books", h.GetBooks)
	user.GET("/books/search", h.SearchBooks)
	user.GET("/books/recommendations", h.GetRecommendations)
	user.GET("/books/:bookID/copies", h.GetCopies)
	user.POST("/books/:bookID/borrow", h.Borrow)
	user.POST("/records/:recordUid/return", h.Return)
	user.GET("/records/my", h.MyBorrowedBooks)
	user.GET("/fines/my", h.MyFines)
	user.POST("/fines/:recordUid/pay", h.PayFine)
	user.GET("/dashboard", h.Dashboard)

	user.GET("/plans", h.GetPlans)
	user.POST("/subscription", h.Subscribe)
	user.GET("/subscription/my", h.MySubscription)

	staff := user.Group("/staff", md.StaffOnly)
	staff.GET("/export/books", h.ExportBooks)
	staff.GET("/export/borrow-records", h.ExportBorrowRecords)
	staff.POST("/import/books", h.ImportBooks)
	staff.POST("/reminders/due-soon", h.DueSoonReminders)
	staff.POST("/reminders/overdue", h.OverdueReminders)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors onto HTTP statuses without leaking internals.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrNoSubscription),
		errors.Is(err, errs.ErrSubscriptionExpired),
		errors.Is(err, errs.ErrUnpaidFines),
		errors.Is(err, errs.ErrBorrowLimit),
		errors.Is(err, errs.ErrActiveSubscription),
		errors.Is(err, errs.ErrFinePaid),
		errors.Is(err, errs.ErrUserExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
