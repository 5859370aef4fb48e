package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMenuItemNameRequired = errors.New("menu item name is required")
	ErrInvalidCategory      = errors.New("category must be one of: coffee, non-coffee, food")
	ErrInvalidPrice         = errors.New("price cannot be negative")
	ErrInvalidStock         = errors.New("stock cannot be negative")
	ErrInvalidMenuItemID    = errors.New("invalid menu item ID")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrInsufficientStock    = errors.New("insufficient stock")
)

// InsufficientStockError reports which item could not be sold and how much
// stock was left at the moment of the store-side check. It matches
// ErrInsufficientStock under errors.Is.
type InsufficientStockError struct {
	ItemName  string
	Requested int
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (requested: %d, remaining: %d)", e.ItemName, e.Requested, e.Remaining)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
