package domain

import (
	"context"
	"time"
)

// SellerStat is one row of a top-sellers ranking.
type SellerStat struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Total    int64  `json:"total"`
}

// DayRevenue is one day of a revenue series.
type DayRevenue struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}

// DailyReport is the revenue summary for one calendar day.
type DailyReport struct {
	Date       string `json:"date"`
	SalesCount int    `json:"sales_count"`
	Total      int64  `json:"total"`
}

// MonthlyReport is a dense per-day revenue series for one month.
// Days[0] holds day 1; days without sales stay zero.
type MonthlyReport struct {
	Month      string  `json:"month"`
	Days       []int64 `json:"days"`
	Total      int64   `json:"total"`
	SalesCount int     `json:"sales_count"`
}

type ReportUseCase interface {
	Daily(ctx context.Context, day time.Time) (*DailyReport, error)
	Monthly(ctx context.Context, year int, month time.Month, loc *time.Location) (*MonthlyReport, error)
	TopSellers(ctx context.Context, limit int) ([]SellerStat, error)
	Rolling(ctx context.Context, days int, today time.Time) ([]DayRevenue, error)
}
