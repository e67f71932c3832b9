package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

func newAdminOrderTestEnv() (*AdminOrderUsecase, *TxManagerMock, *OrderRepoMock, *OrderItemRepoMock, *InventoryRepoMock, *ProductRepoMock) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	inventory := new(InventoryRepoMock)
	products := new(ProductRepoMock)

	tx := &TxManagerMock{Repos: &TxReposMock{
		orders:     orders,
		orderItems: items,
		carts:      new(CartRepoMock),
		inventory:  inventory,
		products:   products,
		reviews:    new(ReviewRepoMock),
	}}

	uc := NewAdminOrderUsecase(tx, orders, items)
	return uc, tx, orders, items, inventory, products
}

func TestAdminList_InvalidStatusFilter(t *testing.T) {
	uc, _, _, _, _, _ := newAdminOrderTestEnv()

	_, err := uc.List(context.Background(), AdminOrderListInput{Status: "paid"})
	assertErrContains(t, err, "invalid status filter")
}

func TestAdminList_Paginates(t *testing.T) {
	uc, _, orders, _, _, _ := newAdminOrderTestEnv()

	orders.On("ListAdmin", mock.Anything, mock.MatchedBy(func(f repo.AdminOrderListFilter) bool {
		return f.Page == 2 && f.Limit == 10 && f.Status == "waiting"
	})).Return([]model.Order{{ID: 1}}, int64(25), nil)

	out, err := uc.List(context.Background(), AdminOrderListInput{Page: 2, Limit: 10, Status: "waiting"})
	assert.NoError(t, err)
	assert.Equal(t, int64(25), out.Total)
	assert.Equal(t, 3, out.LastPage)
}

func TestAdminUpdateStatus_ShippingMustUseTrackingEndpoint(t *testing.T) {
	uc, _, orders, _, _, _ := newAdminOrderTestEnv()

	_, err := uc.UpdateStatus(context.Background(), 7, "shiping")
	assertErrContains(t, err, "tracking endpoint")
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUpdateStatus_TerminalOrderFrozen(t *testing.T) {
	uc, tx, orders, _, _, _ := newAdminOrderTestEnv()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, Status: model.OrderStatusCompleted,
	}, nil)

	_, err := uc.UpdateStatus(context.Background(), 7, "processing")
	assertErrContains(t, err, "already completed")
}

// The status re-read happens inside the transaction that writes, so a
// cancel racing a just-committed shipment sees shiping and is
// rejected rather than silently overwriting it.
func TestAdminUpdateStatus_CannotCancelShippedOrder(t *testing.T) {
	uc, tx, orders, _, _, _ := newAdminOrderTestEnv()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, Status: model.OrderStatusShiping,
	}, nil)

	_, err := uc.UpdateStatus(context.Background(), 7, "cancelled")
	assertErrContains(t, err, "cannot be cancelled")
	tx.AssertNumberOfCalls(t, "WithinTx", 1)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUpdateStatus_ConfirmPayment(t *testing.T) {
	uc, tx, orders, items, _, _ := newAdminOrderTestEnv()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, Status: model.OrderStatusChecking,
	}, nil)
	orders.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusProcessing).Return(nil)
	items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)

	out, err := uc.UpdateStatus(context.Background(), 7, "processing")
	assert.NoError(t, err)
	assert.Equal(t, string(model.OrderStatusProcessing), out.Status)
	tx.AssertNumberOfCalls(t, "WithinTx", 1)
}

func TestShip_DecrementsStockAndSetsTracking(t *testing.T) {
	uc, tx, orders, items, inventory, _ := newAdminOrderTestEnv()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, Status: model.OrderStatusProcessing,
	}, nil)
	items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{
		{ProductID: 100, ProductName: "Shirt", Quantity: 2},
		{ProductID: 101, ProductName: "Pants", Quantity: 1},
	}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(100), int64(2)).Return(true, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(101), int64(1)).Return(true, nil)
	orders.On("SetTracking", mock.Anything, int64(7), "JNE123", model.OrderStatusShiping).Return(nil)

	out, err := uc.Ship(context.Background(), 7, "JNE123")
	assert.NoError(t, err)
	assert.Equal(t, string(model.OrderStatusShiping), out.Status)
	assert.Equal(t, "JNE123", out.TrackingNumber)
	inventory.AssertNumberOfCalls(t, "DecreaseStockIfEnough", 2)
}

func TestShip_AlreadyShippedRejected(t *testing.T) {
	uc, tx, orders, _, inventory, _ := newAdminOrderTestEnv()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, Status: model.OrderStatusShiping,
	}, nil)

	_, err := uc.Ship(context.Background(), 7, "JNE123")
	assertErrContains(t, err, "already been shipped")
	inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
}

func TestShip_InsufficientStockAbortsTx(t *testing.T) {
	uc, tx, orders, items, inventory, products := newAdminOrderTestEnv()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, Status: model.OrderStatusProcessing,
	}, nil)
	items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{
		{ProductID: 100, ProductName: "Shirt", Quantity: 5},
	}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(100), int64(5)).Return(false, nil)
	products.On("FindByID", mock.Anything, int64(100)).Return(testProduct(100, 2, 50000), nil)

	_, err := uc.Ship(context.Background(), 7, "JNE123")
	assertErrContains(t, err, "insufficient stock for Shirt")
	orders.AssertNotCalled(t, "SetTracking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestShip_MissingProductAbortsTx(t *testing.T) {
	uc, tx, orders, items, inventory, products := newAdminOrderTestEnv()

	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, Status: model.OrderStatusProcessing,
	}, nil)
	items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{
		{ProductID: 100, ProductName: "Shirt", Quantity: 1},
	}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(100), int64(1)).Return(false, nil)
	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Ship(context.Background(), 7, "JNE123")
	assertErrContains(t, err, "no longer exists")
}

func TestShip_EmptyTrackingNumber(t *testing.T) {
	uc, _, _, _, _, _ := newAdminOrderTestEnv()

	_, err := uc.Ship(context.Background(), 7, "   ")
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestAdminList_ToDateCoversWholeDay(t *testing.T) {
	uc, _, orders, _, _, _ := newAdminOrderTestEnv()

	orders.On("ListAdmin", mock.Anything, mock.MatchedBy(func(f repo.AdminOrderListFilter) bool {
		return f.From != nil && f.From.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To != nil && f.To.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]model.Order{}, int64(0), nil)

	_, err := uc.List(context.Background(), AdminOrderListInput{From: "2026-08-01", To: "2026-08-31"})
	assert.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestAdminExport_WalksEveryPage(t *testing.T) {
	uc, _, orders, items, _, _ := newAdminOrderTestEnv()

	makePage := func(start, n int) []model.Order {
		out := make([]model.Order, 0, n)
		for i := 0; i < n; i++ {
			id := int64(start + i)
			out = append(out, model.Order{
				ID: id, Name: fmt.Sprintf("Customer %d", id), Status: model.OrderStatusCompleted,
			})
		}
		return out
	}
	pageFilter := func(page int) interface{} {
		return mock.MatchedBy(func(f repo.AdminOrderListFilter) bool {
			return f.Page == page && f.Limit == 100
		})
	}
	orders.On("ListAdmin", mock.Anything, pageFilter(1)).Return(makePage(1, 100), int64(250), nil)
	orders.On("ListAdmin", mock.Anything, pageFilter(2)).Return(makePage(101, 100), int64(250), nil)
	orders.On("ListAdmin", mock.Anything, pageFilter(3)).Return(makePage(201, 50), int64(250), nil)
	items.On("ListByOrderID", mock.Anything, mock.Anything).Return([]model.OrderItem{}, nil)

	data, filename, err := uc.ExportXlsx(context.Background(), AdminOrderListInput{})
	assert.NoError(t, err)
	assert.Contains(t, filename, ".xlsx")
	orders.AssertNumberOfCalls(t, "ListAdmin", 3)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	assert.NoError(t, err)
	assert.Len(t, rows, 251)
}
