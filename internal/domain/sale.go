package domain

import (
	"context"
	"time"
)

// Sale is one ledger entry. Name and unit price are denormalized copies
// taken at the moment of sale; later catalog changes never touch them.
type Sale struct {
	ID         int       `json:"id"`
	Reference  string    `json:"reference"`
	MenuItemID int       `json:"menu_item_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  int64     `json:"unit_price"`
	Total      int64     `json:"total"`
	SoldAt     time.Time `json:"sold_at"`
}

// Receipt is what the cashier gets back after a successful sale.
type Receipt struct {
	Reference string    `json:"reference"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	Total     int64     `json:"total"`
	SoldAt    time.Time `json:"sold_at"`
}

// SaleRepository is the store boundary for the ledger. RecordSale performs
// the stock decrement and the ledger append as one indivisible operation:
// on any error the store state is unchanged.
type SaleRepository interface {
	RecordSale(ctx context.Context, menuItemID, quantity int) (*Sale, error)
	ListSales(ctx context.Context, from, to time.Time) ([]Sale, error)
}

type SaleUseCase interface {
	ProcessSale(ctx context.Context, menuItemID, quantity int) (*Receipt, error)
	ListSales(ctx context.Context, from, to time.Time) ([]Sale, error)
}
