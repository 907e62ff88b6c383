package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) ExportBooks(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="books.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return h.svc.ExportBooks(c.Request().Context(), c.Response())
}

func (h *Handler) ExportBorrowRecords(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="borrow_records.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return h.svc.ExportBorrowRecords(c.Request().Context(), c.Response())
}

func (h *Handler) ImportBooks(c echo.Context) error {
	fh, err := c.FormFile("upload_file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("no file uploaded"))
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".csv") {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("a CSV file is required"))
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	imported, err := h.svc.ImportBooks(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": imported})
}

func (h *Handler) DueSoonReminders(c echo.Context) error {
	sent, err := h.svc.DueSoonReminders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"enqueued": sent})
}

func (h *Handler) OverdueReminders(c echo.Context) error {
	sent, err := h.svc.OverdueReminders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"enqueued": sent})
}
