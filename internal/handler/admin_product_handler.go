package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/infra/storage/localfs"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

type AdminProductHandler struct {
	uc        *usecase.ProductUsecase
	storage   *localfs.Storage
	jwtSecret string
}

func NewAdminProductHandler(uc *usecase.ProductUsecase, storage *localfs.Storage, jwtSecret string) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, storage: storage, jwtSecret: jwtSecret}
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/admin/products")
	g.Use(middleware.AuthJWT(h.jwtSecret))
	g.Use(middleware.AdminOnly())

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *AdminProductHandler) list(c echo.Context) error {
	out, err := h.uc.AdminListProducts(c.Request().Context(), usecase.AdminListProductsInput{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 20),
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *AdminProductHandler) detail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.AdminGetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	in, err := h.bindSaveInput(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.AdminCreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	in, err := h.bindSaveInput(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.AdminUpdateProduct(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *AdminProductHandler) remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return okMessage(c, http.StatusOK, "product deleted")
}

// bindSaveInput reads the multipart product form: scalar fields plus
// any number of image files under "images".
func (h *AdminProductHandler) bindSaveInput(c echo.Context) (usecase.AdminSaveProductInput, error) {
	in := usecase.AdminSaveProductInput{
		Name:         c.FormValue("name"),
		CategoryName: c.FormValue("category"),
		Description:  c.FormValue("description"),
		Sizes:        splitList(c.FormValue("sizes")),
		Colors:       splitList(c.FormValue("colors")),
	}

	var err error
	if in.Stock, err = formInt(c, "stock"); err != nil {
		return in, usecase.NewHTTPError(http.StatusBadRequest, "stock must be a number")
	}
	if in.Price, err = formInt(c, "price"); err != nil {
		return in, usecase.NewHTTPError(http.StatusBadRequest, "price must be a number")
	}
	if in.Weight, err = formInt(c, "weight"); err != nil {
		return in, usecase.NewHTTPError(http.StatusBadRequest, "weight must be a number")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return in, usecase.NewHTTPError(http.StatusBadRequest, "multipart form required")
	}
	for _, fh := range form.File["images"] {
		path, err := h.storage.Save("products", fh)
		if err == localfs.ErrUnsupportedType {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "unsupported image type")
		}
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusInternalServerError, "failed to store image")
		}
		in.Images = append(in.Images, path)
	}

	return in, nil
}

func formInt(c echo.Context, name string) (int64, error) {
	v := c.FormValue(name)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
