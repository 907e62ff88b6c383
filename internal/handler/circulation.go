package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuslib/circulation/pkg/auth"
)

func (h *Handler) Borrow(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.ParseInt(c.Param("bookID"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookID is invalid"))
	}
	rec, err := h.svc.Borrow(ctx, auth.Username(ctx), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) Return(c echo.Context) error {
	ctx := c.Request().Context()
	recordUID := c.Param("recordUid")

	fine, err := h.svc.Return(ctx, auth.Username(ctx), recordUID)
	if err != nil {
		return httpError(err)
	}
	if fine == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) MyBorrowedBooks(c echo.Context) error {
	ctx := c.Request().Context()
	records, err := h.svc.MyBorrowedBooks(ctx, auth.Username(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) MyFines(c echo.Context) error {
	ctx := c.Request().Context()
	fines, err := h.svc.MyFines(ctx, auth.Username(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) PayFine(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.svc.PayFine(ctx, auth.Username(ctx), c.Param("recordUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	d, err := h.svc.Dashboard(ctx, auth.Username(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}
