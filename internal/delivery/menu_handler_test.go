package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pos_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type fakeMenuUseCase struct {
	items  map[int]domain.MenuItem
	nextID int
}

func newFakeMenuUseCase() *fakeMenuUseCase {
	return &fakeMenuUseCase{items: map[int]domain.MenuItem{}}
}

func (f *fakeMenuUseCase) AddMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := domain.ValidateMenuItem(item); err != nil {
		return nil, err
	}
	f.nextID++
	item.ID = f.nextID
	f.items[item.ID] = *item
	return item, nil
}

func (f *fakeMenuUseCase) GetMenuItemByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("menu item with id %d: %w", id, domain.ErrMenuItemNotFound)
	}
	return &item, nil
}

func (f *fakeMenuUseCase) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeMenuUseCase) DeleteMenuItem(ctx context.Context, id int) error {
	if _, ok := f.items[id]; !ok {
		return fmt.Errorf("menu item with id %d: %w", id, domain.ErrMenuItemNotFound)
	}
	delete(f.items, id)
	return nil
}

func setupMenuRouter(uc domain.MenuUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewMenuHandler(uc, testLogger()).RegisterRoutes(router)
	return router
}

func TestAddMenuItemHandler(t *testing.T) {
	router := setupMenuRouter(newFakeMenuUseCase())

	body := `{"name": "Espresso", "category": "coffee", "price": 15000, "stock": 50}`
	req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data domain.MenuItem `json:"Data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID == 0 || resp.Data.Name != "Espresso" {
		t.Errorf("unexpected created item: %+v", resp.Data)
	}
}

func TestAddMenuItemHandlerInvalidCategory(t *testing.T) {
	router := setupMenuRouter(newFakeMenuUseCase())

	body := `{"name": "Cake", "category": "dessert", "price": 20000, "stock": 5}`
	req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestDeleteMenuItemHandler(t *testing.T) {
	uc := newFakeMenuUseCase()
	item := domain.MenuItem{Name: "Espresso", Category: domain.CategoryCoffee, Price: 15000, Stock: 50}
	if _, err := uc.AddMenuItem(context.Background(), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	router := setupMenuRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/menu/%d", item.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/menu/%d", item.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for second delete, got %d", w.Code)
	}
}

func TestDeleteMenuItemHandlerBadID(t *testing.T) {
	router := setupMenuRouter(newFakeMenuUseCase())

	req := httptest.NewRequest(http.MethodDelete, "/menu/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestListMenuItemsHandler(t *testing.T) {
	uc := newFakeMenuUseCase()
	item := domain.MenuItem{Name: "Espresso", Category: domain.CategoryCoffee, Price: 15000, Stock: 50}
	if _, err := uc.AddMenuItem(context.Background(), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	router := setupMenuRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Data []domain.MenuItem `json:"Data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Errorf("expected 1 item, got %d", len(resp.Data))
	}
}
