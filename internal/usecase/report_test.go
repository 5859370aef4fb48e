package usecase

import (
	"testing"
	"time"

	"pos_service/internal/domain"
)

func saleAt(name string, qty int, total int64, at time.Time) domain.Sale {
	return domain.Sale{
		ItemName: name,
		Quantity: qty,
		Total:    total,
		SoldAt:   at,
	}
}

func TestDailyTotal(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt("Espresso", 2, 30000, day.Add(9*time.Hour)),
		saleAt("Latte", 1, 20000, day.Add(23*time.Hour+59*time.Minute)),
		saleAt("Croissant", 1, 18000, day.AddDate(0, 0, 1)),
	}

	got := DailyTotal(sales, day)
	if got != 50000 {
		t.Errorf("expected daily total 50000, got %d", got)
	}

	// Deterministic over the same immutable input.
	if again := DailyTotal(sales, day); again != got {
		t.Errorf("expected repeated aggregation to yield %d, got %d", got, again)
	}
}

func TestDailyTotalEmpty(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if got := DailyTotal(nil, day); got != 0 {
		t.Errorf("expected zero total for empty ledger, got %d", got)
	}
}

func TestMonthlySeries(t *testing.T) {
	loc := time.UTC
	sales := []domain.Sale{
		saleAt("Espresso", 2, 50000, time.Date(2026, time.March, 1, 10, 0, 0, 0, loc)),
		saleAt("Latte", 1, 30000, time.Date(2026, time.March, 2, 15, 0, 0, 0, loc)),
		saleAt("Croissant", 1, 99999, time.Date(2026, time.April, 1, 0, 0, 0, 0, loc)),
	}

	series := MonthlySeries(sales, 2026, time.March, loc)
	if len(series) != 31 {
		t.Fatalf("expected 31 entries for March, got %d", len(series))
	}
	if series[0] != 50000 {
		t.Errorf("expected day 1 total 50000, got %d", series[0])
	}
	if series[1] != 30000 {
		t.Errorf("expected day 2 total 30000, got %d", series[1])
	}
	for day := 2; day < len(series); day++ {
		if series[day] != 0 {
			t.Errorf("expected day %d total 0, got %d", day+1, series[day])
		}
	}
}

func TestMonthlySeriesLengths(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2026, time.February, 28},
		{2024, time.February, 29},
		{2026, time.April, 30},
		{2026, time.December, 31},
	}
	for _, tt := range tests {
		series := MonthlySeries(nil, tt.year, tt.month, time.UTC)
		if len(series) != tt.days {
			t.Errorf("%d-%s: expected %d entries, got %d", tt.year, tt.month, tt.days, len(series))
		}
	}
}

func TestTopSellers(t *testing.T) {
	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt("A", 5, 75000, at),
		saleAt("B", 8, 80000, at),
		saleAt("C", 2, 10000, at),
	}

	top := TopSellers(sales, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].ItemName != "B" || top[1].ItemName != "A" {
		t.Errorf("expected [B, A], got [%s, %s]", top[0].ItemName, top[1].ItemName)
	}
	if top[0].Quantity != 8 || top[0].Total != 80000 {
		t.Errorf("expected B with quantity 8 and total 80000, got %d and %d", top[0].Quantity, top[0].Total)
	}
}

func TestTopSellersGroupsByName(t *testing.T) {
	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt("Espresso", 2, 30000, at),
		saleAt("Latte", 3, 60000, at),
		saleAt("Espresso", 4, 60000, at),
	}

	top := TopSellers(sales, 5)
	if len(top) != 2 {
		t.Fatalf("expected 2 grouped entries, got %d", len(top))
	}
	if top[0].ItemName != "Espresso" || top[0].Quantity != 6 || top[0].Total != 90000 {
		t.Errorf("expected Espresso with quantity 6 and total 90000, got %+v", top[0])
	}
}

func TestTopSellersStableTies(t *testing.T) {
	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt("First", 3, 1000, at),
		saleAt("Second", 3, 2000, at),
		saleAt("Third", 3, 3000, at),
	}

	top := TopSellers(sales, 3)
	if top[0].ItemName != "First" || top[1].ItemName != "Second" || top[2].ItemName != "Third" {
		t.Errorf("expected encounter order on ties, got [%s, %s, %s]", top[0].ItemName, top[1].ItemName, top[2].ItemName)
	}
}

func TestTopSellersEmpty(t *testing.T) {
	top := TopSellers(nil, 5)
	if len(top) != 0 {
		t.Errorf("expected empty ranking for empty ledger, got %d entries", len(top))
	}
}

func TestRollingRevenue(t *testing.T) {
	today := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt("Espresso", 1, 15000, today.AddDate(0, 0, -6)),
		saleAt("Latte", 1, 20000, today.AddDate(0, 0, -1)),
		saleAt("Croissant", 1, 18000, today),
		saleAt("Old", 1, 99999, today.AddDate(0, 0, -7)),
	}

	series := RollingRevenue(sales, 7, today)
	if len(series) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(series))
	}
	if series[0].Date != "2026-03-04" || series[0].Total != 15000 {
		t.Errorf("expected oldest entry 2026-03-04 with 15000, got %s with %d", series[0].Date, series[0].Total)
	}
	if series[5].Total != 20000 {
		t.Errorf("expected yesterday total 20000, got %d", series[5].Total)
	}
	if series[6].Date != "2026-03-10" || series[6].Total != 18000 {
		t.Errorf("expected today 2026-03-10 with 18000, got %s with %d", series[6].Date, series[6].Total)
	}
}
