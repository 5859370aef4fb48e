package usecase

import (
	"sort"
	"time"

	"pos_service/internal/domain"
)

// Aggregations over an in-memory set of ledger entries. All of them are
// deterministic, side-effect free and total over any input including the
// empty slice. Day boundaries are taken in the location of the reference
// time passed by the caller.

func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DailyTotal sums sale totals for the calendar day containing day.
func DailyTotal(sales []domain.Sale, day time.Time) int64 {
	var total int64
	for _, sale := range sales {
		if sameDay(sale.SoldAt, day) {
			total += sale.Total
		}
	}
	return total
}

// MonthlySeries produces a dense per-day revenue series for the given
// month. Index 0 holds day 1; days without sales stay zero.
func MonthlySeries(sales []domain.Sale, year int, month time.Month, loc *time.Location) []int64 {
	if loc == nil {
		loc = time.Local
	}
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	series := make([]int64, daysInMonth)
	for _, sale := range sales {
		t := sale.SoldAt.In(loc)
		if t.Year() != year || t.Month() != month {
			continue
		}
		series[t.Day()-1] += sale.Total
	}
	return series
}

// TopSellers groups sales by item name, sums quantity and revenue per
// name, and returns the top n by quantity sold. The sort is stable, so
// names that tie keep their first-encountered order.
func TopSellers(sales []domain.Sale, n int) []domain.SellerStat {
	if n <= 0 {
		return []domain.SellerStat{}
	}

	index := make(map[string]int)
	stats := []domain.SellerStat{}
	for _, sale := range sales {
		i, ok := index[sale.ItemName]
		if !ok {
			i = len(stats)
			index[sale.ItemName] = i
			stats = append(stats, domain.SellerStat{ItemName: sale.ItemName})
		}
		stats[i].Quantity += sale.Quantity
		stats[i].Total += sale.Total
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Quantity > stats[j].Quantity
	})

	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// RollingRevenue produces per-day totals for the trailing window of the
// given length ending on today, oldest day first.
func RollingRevenue(sales []domain.Sale, days int, today time.Time) []domain.DayRevenue {
	if days <= 0 {
		return []domain.DayRevenue{}
	}

	series := make([]domain.DayRevenue, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		series = append(series, domain.DayRevenue{
			Date:  day.Format("2006-01-02"),
			Total: DailyTotal(sales, day),
		})
	}
	return series
}
