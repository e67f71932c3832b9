package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/infra/storage/localfs"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

type OrderHandler struct {
	uc        *usecase.OrderUsecase
	storage   *localfs.Storage
	jwtSecret string
}

func NewOrderHandler(uc *usecase.OrderUsecase, storage *localfs.Storage, jwtSecret string) *OrderHandler {
	return &OrderHandler{uc: uc, storage: storage, jwtSecret: jwtSecret}
}

type CheckoutRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Address        string `json:"address" validate:"required,max=255"`
	Village        string `json:"village" validate:"required,max=255"`
	District       string `json:"district" validate:"required,max=255"`
	City           string `json:"city" validate:"required,max=255"`
	Province       string `json:"province" validate:"required,max=255"`
	Phone          string `json:"phone" validate:"required,max=15"`
	Note           string `json:"note"`
	PaymentMethod  string `json:"payment_method" validate:"required"`
	ShippingMethod string `json:"shipping_method"`
	ShippingCost   int64  `json:"shipping_cost" validate:"gte=0"`
}

type ReviewRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Rating    int64 `json:"rating" validate:"required,min=1,max=5"`
}

type CompleteOrderRequest struct {
	Reviews []ReviewRequest `json:"reviews" validate:"dive"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/checkout", h.checkout, middleware.AuthJWT(h.jwtSecret))

	g := e.Group("/api/orders")
	g.Use(middleware.AuthJWT(h.jwtSecret))

	g.GET("", h.listMine)
	g.GET("/:id", h.detail)
	g.POST("/:id/payment-proof", h.uploadPaymentProof)
	g.POST("/:id/complete", h.complete)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	userID, okID := getUserIDFromContext(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		Name:           req.Name,
		Address:        req.Address,
		Village:        req.Village,
		District:       req.District,
		City:           req.City,
		Province:       req.Province,
		Phone:          req.Phone,
		Note:           req.Note,
		PaymentMethod:  req.PaymentMethod,
		ShippingMethod: req.ShippingMethod,
		ShippingCost:   req.ShippingCost,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, out)
}

func (h *OrderHandler) listMine(c echo.Context) error {
	userID, okID := getUserIDFromContext(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	userID, okID := getUserIDFromContext(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetMyOrderDetail(c.Request().Context(), userID, id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *OrderHandler) uploadPaymentProof(c echo.Context) error {
	userID, okID := getUserIDFromContext(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	fh, err := c.FormFile("payment_proof")
	if err != nil {
		return fail(c, http.StatusBadRequest, "payment_proof file required")
	}

	path, err := h.storage.Save("payment-proofs", fh)
	if err == localfs.ErrUnsupportedType {
		return fail(c, http.StatusBadRequest, "unsupported file type")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to store file")
	}

	out, err := h.uc.UploadPaymentProof(c.Request().Context(), userID, id, path)
	if err != nil {
		// The order rejected the transition; drop the orphaned file.
		_ = h.storage.Remove(path)
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}

func (h *OrderHandler) complete(c echo.Context) error {
	userID, okID := getUserIDFromContext(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req CompleteOrderRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	in := usecase.CompleteOrderInput{}
	for _, rv := range req.Reviews {
		in.Reviews = append(in.Reviews, usecase.ReviewInput{ProductID: rv.ProductID, Rating: rv.Rating})
	}

	out, err := h.uc.CompleteOrder(c.Request().Context(), userID, id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, out)
}
