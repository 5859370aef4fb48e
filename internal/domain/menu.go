package domain

import (
	"context"
	"strings"
	"time"
)

type Category string

const (
	CategoryCoffee    Category = "coffee"
	CategoryNonCoffee Category = "non-coffee"
	CategoryFood      Category = "food"
)

type MenuItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Price     int64     `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuRepository interface {
	CreateMenuItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	GetMenuItemByID(ctx context.Context, id int) (*MenuItem, error)
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
}

type MenuUseCase interface {
	AddMenuItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	GetMenuItemByID(ctx context.Context, id int) (*MenuItem, error)
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
}

func IsValidCategory(category Category) bool {
	switch category {
	case CategoryCoffee, CategoryNonCoffee, CategoryFood:
		return true
	default:
		return false
	}
}

// ValidateMenuItem checks the fields a new catalog entry must satisfy
// before any store call is made.
func ValidateMenuItem(item *MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrMenuItemNameRequired
	}
	if !IsValidCategory(item.Category) {
		return ErrInvalidCategory
	}
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	if item.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
