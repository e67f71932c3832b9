package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

// RegionHandler serves the address picker lookups. Public, read-only.
type RegionHandler struct {
	uc *usecase.RegionUsecase
}

func NewRegionHandler(uc *usecase.RegionUsecase) *RegionHandler {
	return &RegionHandler{uc: uc}
}

func (h *RegionHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/provinces", h.provinces)
	e.GET("/api/regencies/:id", h.regencies)
	e.GET("/api/districts/:id", h.districts)
	e.GET("/api/villages/:id", h.villages)
	e.GET("/api/search/regions", h.search)
}

func (h *RegionHandler) provinces(c echo.Context) error {
	out, err := h.uc.Provinces(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *RegionHandler) regencies(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Regencies(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *RegionHandler) districts(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Districts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *RegionHandler) villages(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Villages(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *RegionHandler) search(c echo.Context) error {
	out, err := h.uc.Search(c.Request().Context(), usecase.RegionSearchInput{
		Query: c.QueryParam("q"),
		Type:  c.QueryParam("type"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}
