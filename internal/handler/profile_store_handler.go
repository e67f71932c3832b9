package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/infra/storage/localfs"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

type ProfileStoreHandler struct {
	uc        *usecase.ProfileStoreUsecase
	storage   *localfs.Storage
	jwtSecret string
}

func NewProfileStoreHandler(uc *usecase.ProfileStoreUsecase, storage *localfs.Storage, jwtSecret string) *ProfileStoreHandler {
	return &ProfileStoreHandler{uc: uc, storage: storage, jwtSecret: jwtSecret}
}

func (h *ProfileStoreHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/store-profile", h.get)

	g := e.Group("/api/admin/store-profile")
	g.Use(middleware.AuthJWT(h.jwtSecret))
	g.Use(middleware.AdminOnly())
	g.PUT("", h.save)
}

func (h *ProfileStoreHandler) get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *ProfileStoreHandler) save(c echo.Context) error {
	in := usecase.SaveProfileStoreInput{
		Name:      c.FormValue("name"),
		Address:   c.FormValue("address"),
		City:      c.FormValue("city"),
		Phone:     c.FormValue("phone"),
		Instagram: c.FormValue("instagram"),
		Facebook:  c.FormValue("facebook"),
		Tiktok:    c.FormValue("tiktok"),
	}

	for field, dst := range map[string]*string{"logo": &in.Logo, "qris": &in.Qris} {
		fh, err := c.FormFile(field)
		if err != nil {
			continue
		}
		path, err := h.storage.Save("store", fh)
		if err == localfs.ErrUnsupportedType {
			return fail(c, http.StatusBadRequest, "unsupported image type")
		}
		if err != nil {
			return fail(c, http.StatusInternalServerError, "failed to store image")
		}
		*dst = path
	}

	out, err := h.uc.Save(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}
