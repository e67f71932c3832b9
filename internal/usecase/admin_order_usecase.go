package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type AdminOrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	items  repo.OrderItemRepository
}

func NewAdminOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, orders: orders, items: items}
}

type AdminOrderListInput struct {
	Page   int
	Limit  int
	Status string
	From   string
	To     string
}

type AdminOrderListOutput struct {
	Orders   []OrderOutput `json:"orders"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	LastPage int           `json:"last_page"`
}

func (u *AdminOrderUsecase) List(ctx context.Context, in AdminOrderListInput) (AdminOrderListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 20
	}

	f := repo.AdminOrderListFilter{Page: in.Page, Limit: in.Limit}

	if in.Status != "" {
		switch model.OrderStatus(in.Status) {
		case model.OrderStatusWaiting, model.OrderStatusChecking, model.OrderStatusProcessing,
			model.OrderStatusShiping, model.OrderStatusCompleted, model.OrderStatusCancelled:
			f.Status = in.Status
		default:
			return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
	}
	var err error
	if f.From, err = parseDateFilter(in.From); err != nil {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
	}
	if f.To, err = parseDateFilter(in.To); err != nil {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
	}
	if f.To != nil {
		// To is exclusive at the repository; bump it to the next
		// midnight so orders placed during the to day are included.
		end := f.To.AddDate(0, 0, 1)
		f.To = &end
	}

	orders, total, err := u.orders.ListAdmin(ctx, f)
	if err != nil {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o, nil))
	}

	lastPage := int((total + int64(in.Limit) - 1) / int64(in.Limit))
	if lastPage < 1 {
		lastPage = 1
	}
	return AdminOrderListOutput{Orders: outs, Total: total, Page: in.Page, LastPage: lastPage}, nil
}

func (u *AdminOrderUsecase) Detail(ctx context.Context, orderID int64) (OrderOutput, error) {
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

	items, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o, items), nil
}

// UpdateStatus handles the manual transitions: confirming a payment
// (checking to processing), cancelling, and so on. Shipping must go
// through Ship so the stock decrement cannot be skipped. Terminal
// orders never move again, and an order already handed to a courier
// cannot be cancelled.
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	next := model.OrderStatus(status)
	switch next {
	case model.OrderStatusWaiting, model.OrderStatusChecking, model.OrderStatusProcessing,
		model.OrderStatusCompleted, model.OrderStatusCancelled:
	case model.OrderStatusShiping:
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "use the tracking endpoint to mark an order as shipped")
	default:
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	// Guard and write share one transaction so a concurrent Ship
	// cannot slip between them and get overwritten.
	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.Status.Terminal() {
			return NewHTTPError(http.StatusBadRequest, "order is already "+string(o.Status))
		}
		if next == model.OrderStatusCancelled && o.Status == model.OrderStatusShiping {
			return NewHTTPError(http.StatusBadRequest, "order already handed to the courier and cannot be cancelled")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, next); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		log.Info().
			Int64("order_id", orderID).
			Str("from", string(o.Status)).
			Str("to", string(next)).
			Msg("order status updated")

		o.Status = next
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

// Ship records the tracking number and moves the order to shiping,
// decrementing stock for every line in the same transaction. Stock is
// only touched here, so re-shipping is rejected rather than
// decrementing twice.
func (u *AdminOrderUsecase) Ship(ctx context.Context, orderID int64, trackingNumber string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "tracking number required")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		switch o.Status {
		case model.OrderStatusWaiting, model.OrderStatusChecking, model.OrderStatusProcessing:
		case model.OrderStatusShiping:
			return NewHTTPError(http.StatusBadRequest, "order has already been shipped")
		default:
			return NewHTTPError(http.StatusBadRequest, "order is "+string(o.Status)+" and cannot be shipped")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, it := range items {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				if _, err := r.Products().FindByID(ctx, it.ProductID); err == repo.ErrNotFound {
					return NewHTTPError(http.StatusBadRequest,
						fmt.Sprintf("product %d no longer exists", it.ProductID))
				}
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("insufficient stock for %s", it.ProductName))
			}
		}

		if err := r.Orders().SetTracking(ctx, orderID, trackingNumber, model.OrderStatusShiping); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		log.Info().
			Int64("order_id", orderID).
			Str("tracking_number", trackingNumber).
			Int("items", len(items)).
			Msg("order shipped, stock decremented")

		o.TrackingNumber = trackingNumber
		o.Status = model.OrderStatusShiping
		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

const exportPageSize = 100

// ExportXlsx renders the filtered order list as a spreadsheet, one
// row per order item so quantities stay visible. It pages through the
// whole filtered set; the export is only done when Total is exhausted.
func (u *AdminOrderUsecase) ExportXlsx(ctx context.Context, in AdminOrderListInput) ([]byte, string, error) {
	in.Limit = exportPageSize

	var exported []OrderOutput
	for page := 1; ; page++ {
		in.Page = page
		list, err := u.List(ctx, in)
		if err != nil {
			return nil, "", err
		}
		exported = append(exported, list.Orders...)
		if len(list.Orders) == 0 || int64(len(exported)) >= list.Total {
			break
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Order ID", "Date", "Customer", "Phone", "City", "Status",
		"Payment Method", "Product", "Quantity", "Unit Price", "Shipping Cost", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, o := range exported {
		items, err := u.items.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, "", NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(items) == 0 {
			items = []model.OrderItem{{}}
		}
		for _, it := range items {
			values := []any{o.ID, o.CreatedAt.Format("2006-01-02"), o.Name, o.Phone, o.City,
				o.Status, o.PaymentMethod, it.ProductName, it.Quantity, it.UnitPrice,
				o.ShippingCost, o.TotalPrice}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", NewHTTPError(http.StatusInternalServerError, "failed to build export")
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102-150405"))
	return buf.Bytes(), filename, nil
}

func parseDateFilter(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
