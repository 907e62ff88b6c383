package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuslib/circulation/pkg/auth"
)

func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.svc.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	ctx := c.Request().Context()
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("q is required"))
	}
	books, err := h.svc.SearchBooks(ctx, auth.Username(ctx), query)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetRecommendations(c echo.Context) error {
	books, err := h.svc.RecommendedBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetCopies(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("bookID"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookID is invalid"))
	}
	copies, err := h.svc.ListCopies(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}
