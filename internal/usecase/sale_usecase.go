package usecase

import (
	"context"
	"pos_service/internal/cache"
	"pos_service/internal/domain"
	"time"

	"github.com/sirupsen/logrus"
)

var _ domain.SaleUseCase = (*saleUseCase)(nil)

type saleUseCase struct {
	saleRepo domain.SaleRepository
	catalog  *cache.CatalogCache
	log      *logrus.Logger
}

func NewSaleUseCase(repo domain.SaleRepository, catalog *cache.CatalogCache, logger *logrus.Logger) domain.SaleUseCase {
	return &saleUseCase{
		saleRepo: repo,
		catalog:  catalog,
		log:      logger,
	}
}

// ProcessSale validates the request and hands it to the store as one
// atomic decrement-and-append. The caller's catalog snapshot may be stale;
// the store-side stock check is the one that counts.
func (uc *saleUseCase) ProcessSale(ctx context.Context, menuItemID, quantity int) (*domain.Receipt, error) {
	if menuItemID <= 0 {
		uc.log.Warnf("Use Case: Sale rejected before store call: invalid menu item ID %d", menuItemID)
		return nil, domain.ErrInvalidMenuItemID
	}
	if quantity <= 0 {
		uc.log.Warnf("Use Case: Sale rejected before store call: invalid quantity %d for menu item %d", quantity, menuItemID)
		return nil, domain.ErrInvalidQuantity
	}

	uc.log.Infof("Use Case: Processing sale for menu item %d, quantity %d", menuItemID, quantity)
	sale, err := uc.saleRepo.RecordSale(ctx, menuItemID, quantity)
	if err != nil {
		uc.log.Warnf("Use Case: Sale failed for menu item %d: %v", menuItemID, err)
		return nil, err
	}

	// The sale mutated stock, so the cached catalog is no longer
	// authoritative. Never patch the snapshot from the sale result.
	uc.catalog.Invalidate()

	receipt := &domain.Receipt{
		Reference: sale.Reference,
		ItemName:  sale.ItemName,
		Quantity:  sale.Quantity,
		UnitPrice: sale.UnitPrice,
		Total:     sale.Total,
		SoldAt:    sale.SoldAt,
	}
	uc.log.Infof("Use Case: Sale completed: '%s' x%d, total %d (reference %s)", receipt.ItemName, receipt.Quantity, receipt.Total, receipt.Reference)
	return receipt, nil
}

func (uc *saleUseCase) ListSales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	if from.IsZero() != to.IsZero() {
		return nil, domain.ErrInvalidDateRange
	}
	if !from.IsZero() && to.Before(from) {
		return nil, domain.ErrInvalidDateRange
	}

	sales, err := uc.saleRepo.ListSales(ctx, from, to)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list sales: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d sales", len(sales))
	return sales, nil
}
