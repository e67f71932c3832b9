package repository

import "context"

type InventoryRepository interface {
	// DecreaseStockIfEnough subtracts qty only when the row still has
	// at least qty in stock, and reports whether it did. This is the
	// only write path that lowers stock, so stock can never go
	// negative even under concurrent transitions.
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// IncreaseStock returns stock (e.g. when an order is cancelled
	// after it was shipped out of the warehouse count).
	IncreaseStock(ctx context.Context, productID int64, qty int64) error
}
