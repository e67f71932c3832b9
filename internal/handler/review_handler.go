package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

type ReviewHandler struct {
	uc        *usecase.ReviewUsecase
	jwtSecret string
}

func NewReviewHandler(uc *usecase.ReviewUsecase, jwtSecret string) *ReviewHandler {
	return &ReviewHandler{uc: uc, jwtSecret: jwtSecret}
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/user/reviews")
	g.Use(middleware.AuthJWT(h.jwtSecret))
	g.GET("", h.listMine)
}

func (h *ReviewHandler) listMine(c echo.Context) error {
	userID, okID := getUserIDFromContext(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}

	out, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}
