package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// Tracking statuses and couriers the completion flow cares about.
const (
	trackingStatusDelivered = "delivered"
	courierGoSend           = "gosend"
)

type OrderUsecase struct {
	tx      repo.TransactionManager
	orders  repo.OrderRepository
	items   repo.OrderItemRepository
	gateway ShippingGateway
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	gateway ShippingGateway,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, items: items, gateway: gateway}
}

type CheckoutInput struct {
	Name           string
	Address        string
	Village        string
	District       string
	City           string
	Province       string
	Phone          string
	Note           string
	PaymentMethod  string
	ShippingMethod string
	ShippingCost   int64
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type OrderOutput struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	Village        string            `json:"village"`
	District       string            `json:"district"`
	City           string            `json:"city"`
	Province       string            `json:"province"`
	Phone          string            `json:"phone"`
	Note           string            `json:"note"`
	Status         string            `json:"status"`
	TotalPrice     int64             `json:"total_price"`
	PaymentMethod  string            `json:"payment_method"`
	PaymentProof   string            `json:"payment_proof"`
	ShippingMethod string            `json:"shipping_method"`
	ShippingCost   int64             `json:"shipping_cost"`
	TrackingNumber string            `json:"tracking_number"`
	CreatedAt      time.Time         `json:"created_at"`
	Items          []OrderItemOutput `json:"items"`
}

func (in *CheckoutInput) validate() error {
	required := []struct {
		value string
		field string
	}{
		{in.Name, "name"},
		{in.Address, "address"},
		{in.Village, "village"},
		{in.District, "district"},
		{in.City, "city"},
		{in.Province, "province"},
		{in.Phone, "phone"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return NewHTTPError(http.StatusBadRequest, f.field+" required")
		}
	}
	if len(in.Phone) > 15 {
		return NewHTTPError(http.StatusBadRequest, "phone too long")
	}

	switch model.PaymentMethod(in.PaymentMethod) {
	case model.PaymentMethodQris, model.PaymentMethodDigitalWallet, model.PaymentMethodCashOnDelivery:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}
	if in.ShippingCost < 0 {
		return NewHTTPError(http.StatusBadRequest, "shipping cost must be >= 0")
	}
	return nil
}

// Checkout snapshots the cart into an order. Order + order items +
// cart clearing happen in one transaction; an empty cart aborts it
// with nothing written.
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := in.validate(); err != nil {
		return OrderOutput{}, err
	}

	method := model.PaymentMethod(in.PaymentMethod)

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cartItems, err := r.Carts().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var itemsTotal int64
		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "a cart item refers to a product that no longer exists")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			lineTotal := ci.UnitPrice * ci.Quantity
			orderItems = append(orderItems, model.OrderItem{
				ProductID:   ci.ProductID,
				ProductName: p.Name,
				Quantity:    ci.Quantity,
				UnitPrice:   ci.UnitPrice,
				TotalPrice:  lineTotal,
				Size:        ci.Size,
				Color:       ci.Color,
			})
			itemsTotal += lineTotal
		}

		now := time.Now()
		order := model.Order{
			UserID:         userID,
			Name:           strings.TrimSpace(in.Name),
			Address:        strings.TrimSpace(in.Address),
			Village:        strings.TrimSpace(in.Village),
			District:       strings.TrimSpace(in.District),
			City:           strings.TrimSpace(in.City),
			Province:       strings.TrimSpace(in.Province),
			Phone:          strings.TrimSpace(in.Phone),
			Note:           in.Note,
			TotalPrice:     itemsTotal + in.ShippingCost,
			PaymentMethod:  method,
			ShippingMethod: in.ShippingMethod,
			ShippingCost:   in.ShippingCost,
			Status:         method.InitialStatus(),
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Carts().DeleteByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.items.ListByOrderID(ctx, o.ID)
		if err != nil {
			return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toOrderOutput(o, items))
	}
	return outs, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	// Someone else's order looks like a missing one.
	if o.UserID != userID {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}

	items, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o, items), nil
}

// UploadPaymentProof records the proof filename and moves a waiting
// order to checking. The file itself is stored by the handler before
// this is called.
func (u *OrderUsecase) UploadPaymentProof(ctx context.Context, userID int64, orderID int64, filename string) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(filename) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "payment proof required")
	}

	// The waiting guard and the write run in one transaction so the
	// proof cannot land on an order an admin moved on concurrently.
	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if o.Status != model.OrderStatusWaiting {
			return NewHTTPError(http.StatusBadRequest, "order is not waiting for payment")
		}

		if err := r.Orders().SetPaymentProof(ctx, orderID, filename, model.OrderStatusChecking); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.PaymentProof = filename
		o.Status = model.OrderStatusChecking

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

type ReviewInput struct {
	ProductID int64
	Rating    int64
}

type CompleteOrderInput struct {
	Reviews []ReviewInput
}

// CompleteOrder lets the customer close out a shipped order: one
// review row per submitted (product, rating) pair, then the status
// flips to completed, all inside one transaction. Reviews may only
// target products the order actually contains.
//
// A GoSend order is reviewable as soon as it is shiping; any other
// courier must additionally be reported delivered by the tracking API.
func (u *OrderUsecase) CompleteOrder(ctx context.Context, userID int64, orderID int64, in CompleteOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	for _, rv := range in.Reviews {
		if rv.ProductID <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if rv.Rating < 1 || rv.Rating > 5 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
		}
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if o.UserID != userID {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if o.Status != model.OrderStatusShiping {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "order is not ready to be completed")
	}

	if !strings.EqualFold(o.ShippingMethod, courierGoSend) {
		tracking, err := u.gateway.Track(ctx, o.ShippingMethod, o.TrackingNumber)
		if err != nil {
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch tracking status")
		}
		if tracking.Status != trackingStatusDelivered {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "order has not been delivered yet")
		}
	}

	items, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	ordered := make(map[int64]struct{}, len(items))
	for _, it := range items {
		ordered[it.ProductID] = struct{}{}
	}
	for _, rv := range in.Reviews {
		if _, ok := ordered[rv.ProductID]; !ok {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "review references a product not in this order")
		}
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()
		for _, rv := range in.Reviews {
			review := model.ProductReview{
				UserID:    userID,
				ProductID: rv.ProductID,
				OrderID:   orderID,
				Rating:    rv.Rating,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := r.Reviews().Upsert(ctx, review); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCompleted); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	o.Status = model.OrderStatusCompleted
	return toOrderOutput(o, items), nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			Price:     it.UnitPrice,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
		})
	}

	return OrderOutput{
		ID:             o.ID,
		UserID:         o.UserID,
		Name:           o.Name,
		Address:        o.Address,
		Village:        o.Village,
		District:       o.District,
		City:           o.City,
		Province:       o.Province,
		Phone:          o.Phone,
		Note:           o.Note,
		Status:         string(o.Status),
		TotalPrice:     o.TotalPrice,
		PaymentMethod:  string(o.PaymentMethod),
		PaymentProof:   o.PaymentProof,
		ShippingMethod: o.ShippingMethod,
		ShippingCost:   o.ShippingCost,
		TrackingNumber: o.TrackingNumber,
		CreatedAt:      o.CreatedAt,
		Items:          outItems,
	}
}
