package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pos_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresMenuRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresMenuRepository(db *sql.DB, logger *logrus.Logger) domain.MenuRepository {
	return &postgresMenuRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresMenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	query := `
        INSERT INTO menu_items (name, category, price, stock)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, item.Name, item.Category, item.Price, item.Stock).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation for menu item '%s': %s", item.Name, pqErr.Message)
			return nil, fmt.Errorf("menu item data constraint violation: %s", pqErr.Message)
		}
		r.log.Errorf("Failed to create menu item '%s': %v", item.Name, err)
		return nil, fmt.Errorf("could not create menu item: %w", err)
	}
	r.log.Infof("Menu item created successfully with ID: %d, Name: %s", item.ID, item.Name)
	return item, nil
}

func (r *postgresMenuRepository) GetMenuItemByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	query := `
        SELECT id, name, category, price, stock, created_at
        FROM menu_items
        WHERE id = $1`
	item := &domain.MenuItem{}

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Price,
		&item.Stock,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Menu item with ID %d not found", id)
			return nil, fmt.Errorf("menu item with id %d: %w", id, domain.ErrMenuItemNotFound)
		}
		r.log.Errorf("Failed to get menu item by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get menu item by id: %w", err)
	}

	return item, nil
}

func (r *postgresMenuRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
        SELECT id, name, category, price, stock, created_at
        FROM menu_items
        ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list menu items: %v", err)
		return nil, fmt.Errorf("could not list menu items: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Stock, &item.CreatedAt); err != nil {
			r.log.Errorf("Failed to scan menu item row: %v", err)
			return nil, fmt.Errorf("error scanning menu item data: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during menu items list iteration: %v", err)
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}
	r.log.Infof("Retrieved %d menu items", len(items))
	return items, nil
}

func (r *postgresMenuRepository) DeleteMenuItem(ctx context.Context, id int) error {
	query := `DELETE FROM menu_items WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Errorf("Failed to delete menu item ID %d: %v", id, err)
		return fmt.Errorf("could not delete menu item: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting menu item ID %d: %v", id, err)
		return fmt.Errorf("could not confirm menu item deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent menu item ID %d", id)
		return fmt.Errorf("menu item with id %d: %w", id, domain.ErrMenuItemNotFound)
	}
	r.log.Infof("Menu item deleted successfully with ID: %d", id)
	return nil
}
