package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

type ShippingHandler struct {
	uc        *usecase.ShippingUsecase
	jwtSecret string
}

func NewShippingHandler(uc *usecase.ShippingUsecase, jwtSecret string) *ShippingHandler {
	return &ShippingHandler{uc: uc, jwtSecret: jwtSecret}
}

func (h *ShippingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/shipping")
	g.Use(middleware.AuthJWT(h.jwtSecret))
	g.GET("/cost", h.cost)
	g.GET("/track", h.track)
}

func (h *ShippingHandler) cost(c echo.Context) error {
	weight, err := strconv.ParseInt(c.QueryParam("weight"), 10, 64)
	if err != nil || weight <= 0 {
		return fail(c, http.StatusBadRequest, "weight must be a positive number of grams")
	}

	out, err := h.uc.Cost(c.Request().Context(), usecase.ShippingCostInput{
		Courier:     c.QueryParam("courier"),
		Origin:      c.QueryParam("origin"),
		Destination: c.QueryParam("destination"),
		Weight:      weight,
		Volume:      c.QueryParam("volume"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *ShippingHandler) track(c echo.Context) error {
	out, err := h.uc.Track(c.Request().Context(), c.QueryParam("courier"), c.QueryParam("awb"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}
