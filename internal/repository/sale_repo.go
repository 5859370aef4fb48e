package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pos_service/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresSaleRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresSaleRepository(db *sql.DB, logger *logrus.Logger) domain.SaleRepository {
	return &postgresSaleRepository{
		db:  db,
		log: logger,
	}
}

// RecordSale decrements stock and appends the ledger entry in a single
// transaction. The decrement is guarded by the store-side stock check, so
// two concurrent sellers can never drive stock below zero: the second
// UPDATE matches no row and the whole sale rolls back.
func (r *postgresSaleRepository) RecordSale(ctx context.Context, menuItemID, quantity int) (sale *domain.Sale, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.log.Errorf("Failed to begin transaction: %v", err)
		return nil, fmt.Errorf("could not start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			r.log.Error("Recovered from panic, rolling back transaction")
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			r.log.Warnf("Rolling back sale transaction due to error: %v", err)
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Errorf("Failed to rollback transaction: %v", rbErr)
			}
		} else {
			if cErr := tx.Commit(); cErr != nil {
				r.log.Errorf("Failed to commit sale transaction: %v", cErr)
				err = fmt.Errorf("failed to commit transaction: %w", cErr)
			}
		}
	}()

	var itemName string
	var unitPrice int64
	lookupQuery := `
        SELECT name, price
        FROM menu_items
        WHERE id = $1`
	err = tx.QueryRowContext(ctx, lookupQuery, menuItemID).Scan(&itemName, &unitPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Sale rejected: menu item %d not found", menuItemID)
			err = fmt.Errorf("menu item with id %d: %w", menuItemID, domain.ErrMenuItemNotFound)
			return nil, err
		}
		r.log.Errorf("Failed to look up menu item %d for sale: %v", menuItemID, err)
		err = fmt.Errorf("could not look up menu item: %w", err)
		return nil, err
	}

	decrementQuery := `
        UPDATE menu_items
        SET stock = stock - $2
        WHERE id = $1 AND stock >= $2`
	result, execErr := tx.ExecContext(ctx, decrementQuery, menuItemID, quantity)
	if execErr != nil {
		if pqErr, ok := execErr.(*pq.Error); ok && pqErr.Code == "23514" {
			// The guarded WHERE should make this unreachable; the CHECK
			// constraint is the last line of defence.
			r.log.Warnf("Stock check constraint violation for menu item %d: %s", menuItemID, pqErr.Message)
			err = &domain.InsufficientStockError{ItemName: itemName, Requested: quantity}
			return nil, err
		}
		r.log.Errorf("Failed to decrement stock for menu item %d: %v", menuItemID, execErr)
		err = fmt.Errorf("could not decrement stock: %w", execErr)
		return nil, err
	}
	rowsAffected, raErr := result.RowsAffected()
	if raErr != nil {
		r.log.Errorf("Failed to get rows affected for stock decrement of menu item %d: %v", menuItemID, raErr)
		err = fmt.Errorf("could not confirm stock decrement: %w", raErr)
		return nil, err
	}
	if rowsAffected == 0 {
		var remaining int
		if scanErr := tx.QueryRowContext(ctx, `SELECT stock FROM menu_items WHERE id = $1`, menuItemID).Scan(&remaining); scanErr != nil {
			r.log.Errorf("Failed to read remaining stock for menu item %d: %v", menuItemID, scanErr)
		}
		r.log.Warnf("Sale rejected: insufficient stock for '%s' (requested: %d, remaining: %d)", itemName, quantity, remaining)
		err = &domain.InsufficientStockError{ItemName: itemName, Requested: quantity, Remaining: remaining}
		return nil, err
	}

	sale = &domain.Sale{
		Reference:  uuid.NewString(),
		MenuItemID: menuItemID,
		ItemName:   itemName,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Total:      int64(quantity) * unitPrice,
	}
	insertQuery := `
        INSERT INTO sales (reference, menu_item_id, item_name, quantity, unit_price, total)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, sold_at`
	err = tx.QueryRowContext(ctx, insertQuery,
		sale.Reference,
		sale.MenuItemID,
		sale.ItemName,
		sale.Quantity,
		sale.UnitPrice,
		sale.Total,
	).Scan(&sale.ID, &sale.SoldAt)
	if err != nil {
		r.log.Errorf("Failed to append sale for menu item %d: %v", menuItemID, err)
		err = fmt.Errorf("could not append sale record: %w", err)
		return nil, err
	}

	r.log.Infof("Sale %d recorded: '%s' x%d, total %d (reference %s)", sale.ID, sale.ItemName, sale.Quantity, sale.Total, sale.Reference)
	return sale, nil
}

// ListSales returns ledger entries with sold_at in [from, to), newest first.
// Zero from and to select the whole ledger.
func (r *postgresSaleRepository) ListSales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	query := `
        SELECT id, reference, menu_item_id, item_name, quantity, unit_price, total, sold_at
        FROM sales`
	args := []interface{}{}
	if !from.IsZero() && !to.IsZero() {
		query += `
        WHERE sold_at >= $1 AND sold_at < $2`
		args = append(args, from, to)
	}
	query += `
        ORDER BY sold_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Errorf("Failed to list sales: %v", err)
		return nil, fmt.Errorf("could not list sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.Reference,
			&sale.MenuItemID,
			&sale.ItemName,
			&sale.Quantity,
			&sale.UnitPrice,
			&sale.Total,
			&sale.SoldAt,
		); err != nil {
			r.log.Errorf("Failed to scan sale row: %v", err)
			return nil, fmt.Errorf("error scanning sale data: %w", err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during sales list iteration: %v", err)
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}
	r.log.Infof("Retrieved %d sales", len(sales))
	return sales, nil
}
