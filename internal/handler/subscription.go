package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuslib/circulation/internal/model"
	"github.com/campuslib/circulation/pkg/auth"
)

func (h *Handler) GetPlans(c echo.Context) error {
	plans, err := h.svc.ListPlans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *Handler) Subscribe(c echo.Context) error {
	var req model.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	sub, err := h.svc.Subscribe(ctx, auth.Username(ctx), req.PlanID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}

func (h *Handler) MySubscription(c echo.Context) error {
	ctx := c.Request().Context()
	sub, err := h.svc.MySubscription(ctx, auth.Username(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sub)
}
