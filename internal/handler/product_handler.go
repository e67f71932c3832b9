package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

// ProductHandler serves the public storefront pages.
type ProductHandler struct {
	products *usecase.ProductUsecase
	reviews  *usecase.ReviewUsecase
}

func NewProductHandler(products *usecase.ProductUsecase, reviews *usecase.ReviewUsecase) *ProductHandler {
	return &ProductHandler{products: products, reviews: reviews}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/home", h.home)
	e.GET("/api/shop", h.shop)
	e.GET("/api/product/:slug", h.detail)
	e.GET("/api/products/:id/reviews", h.productReviews)
}

func (h *ProductHandler) home(c echo.Context) error {
	out, err := h.products.Home(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *ProductHandler) shop(c echo.Context) error {
	in := usecase.ShopInput{
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 12),
		Search:    c.QueryParam("search"),
		SortField: c.QueryParam("sort"),
		SortDir:   c.QueryParam("dir"),
	}
	if v := c.QueryParam("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return fail(c, http.StatusBadRequest, "invalid category_id")
		}
		in.CategoryID = &id
	}

	out, err := h.products.Shop(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	out, err := h.products.DetailBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *ProductHandler) productReviews(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.reviews.ProductSummary(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}
