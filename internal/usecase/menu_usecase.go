package usecase

import (
	"context"
	"fmt"
	"pos_service/internal/cache"
	"pos_service/internal/domain"

	"github.com/sirupsen/logrus"
)

var _ domain.MenuUseCase = (*menuUseCase)(nil)

type menuUseCase struct {
	menuRepo domain.MenuRepository
	catalog  *cache.CatalogCache
	log      *logrus.Logger
}

func NewMenuUseCase(repo domain.MenuRepository, catalog *cache.CatalogCache, logger *logrus.Logger) domain.MenuUseCase {
	return &menuUseCase{
		menuRepo: repo,
		catalog:  catalog,
		log:      logger,
	}
}

func (uc *menuUseCase) AddMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := domain.ValidateMenuItem(item); err != nil {
		uc.log.Warnf("Use Case: Menu item validation failed: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Adding menu item '%s' (category: %s, price: %d, stock: %d)", item.Name, item.Category, item.Price, item.Stock)
	created, err := uc.menuRepo.CreateMenuItem(ctx, item)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create menu item '%s': %v", item.Name, err)
		return nil, err
	}

	uc.catalog.Invalidate()
	uc.log.Infof("Use Case: Menu item created with ID %d, catalog snapshot invalidated", created.ID)
	return created, nil
}

func (uc *menuUseCase) GetMenuItemByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidMenuItemID
	}
	item, err := uc.menuRepo.GetMenuItemByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get menu item ID %d: %v", id, err)
		return nil, err
	}
	return item, nil
}

// ListMenuItems serves the last snapshot when it is still valid and
// refetches otherwise. Staleness between mutations is tolerated; every
// mutating operation invalidates the snapshot.
func (uc *menuUseCase) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	if items, ok := uc.catalog.Get(); ok {
		uc.log.Debugf("Use Case: Serving catalog snapshot from cache (%d items)", len(items))
		return items, nil
	}

	items, err := uc.menuRepo.ListMenuItems(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list menu items: %v", err)
		return nil, fmt.Errorf("could not retrieve menu items: %w", err)
	}

	uc.catalog.Set(items)
	uc.log.Infof("Use Case: Catalog snapshot refreshed (%d items)", len(items))
	return items, nil
}

func (uc *menuUseCase) DeleteMenuItem(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.ErrInvalidMenuItemID
	}

	uc.log.Infof("Use Case: Deleting menu item ID %d", id)
	if err := uc.menuRepo.DeleteMenuItem(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete menu item ID %d: %v", id, err)
		return err
	}

	uc.catalog.Invalidate()
	uc.log.Infof("Use Case: Menu item %d deleted, catalog snapshot invalidated", id)
	return nil
}
