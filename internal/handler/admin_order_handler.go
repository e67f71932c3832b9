package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

type AdminOrderHandler struct {
	uc        *usecase.AdminOrderUsecase
	jwtSecret string
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase, jwtSecret string) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, jwtSecret: jwtSecret}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SetTrackingRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required,max=100"`
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/admin/orders")
	g.Use(middleware.AuthJWT(h.jwtSecret))
	g.Use(middleware.AdminOnly())

	g.GET("", h.list)
	g.GET("/export", h.export)
	g.GET("/:id", h.detail)
	g.PUT("/:id/status", h.updateStatus)
	g.PUT("/:id/tracking", h.ship)
}

func (h *AdminOrderHandler) listInput(c echo.Context) usecase.AdminOrderListInput {
	return usecase.AdminOrderListInput{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
		Status: c.QueryParam("status"),
		From:   c.QueryParam("from"),
		To:     c.QueryParam("to"),
	}
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), h.listInput(c))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *AdminOrderHandler) detail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *AdminOrderHandler) ship(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req SetTrackingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Ship(c.Request().Context(), id, req.TrackingNumber)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *AdminOrderHandler) export(c echo.Context) error {
	data, filename, err := h.uc.ExportXlsx(c.Request().Context(), h.listInput(c))
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
