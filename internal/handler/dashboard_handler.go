package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

type DashboardHandler struct {
	uc        *usecase.DashboardUsecase
	jwtSecret string
}

func NewDashboardHandler(uc *usecase.DashboardUsecase, jwtSecret string) *DashboardHandler {
	return &DashboardHandler{uc: uc, jwtSecret: jwtSecret}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/admin/dashboard")
	g.Use(middleware.AuthJWT(h.jwtSecret))
	g.Use(middleware.AdminOnly())
	g.GET("", h.overview)
}

func (h *DashboardHandler) overview(c echo.Context) error {
	out, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}
