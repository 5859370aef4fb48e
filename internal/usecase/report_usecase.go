package usecase

import (
	"context"
	"fmt"
	"time"

	"pos_service/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	DefaultTopSellerLimit    = 5
	DefaultRollingWindowDays = 7
)

var _ domain.ReportUseCase = (*reportUseCase)(nil)

// reportUseCase fetches the relevant ledger window from the store and
// reduces it in memory with the pure aggregation functions.
type reportUseCase struct {
	saleRepo domain.SaleRepository
	log      *logrus.Logger
}

func NewReportUseCase(repo domain.SaleRepository, logger *logrus.Logger) domain.ReportUseCase {
	return &reportUseCase{
		saleRepo: repo,
		log:      logger,
	}
}

func (uc *reportUseCase) Daily(ctx context.Context, day time.Time) (*domain.DailyReport, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	sales, err := uc.saleRepo.ListSales(ctx, from, to)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to fetch sales for daily report: %v", err)
		return nil, fmt.Errorf("could not fetch sales for daily report: %w", err)
	}

	report := &domain.DailyReport{
		Date:       from.Format("2006-01-02"),
		SalesCount: len(sales),
		Total:      DailyTotal(sales, day),
	}
	uc.log.Infof("Use Case: Daily report for %s: %d sales, total %d", report.Date, report.SalesCount, report.Total)
	return report, nil
}

func (uc *reportUseCase) Monthly(ctx context.Context, year int, month time.Month, loc *time.Location) (*domain.MonthlyReport, error) {
	if loc == nil {
		loc = time.Local
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	sales, err := uc.saleRepo.ListSales(ctx, from, to)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to fetch sales for monthly report: %v", err)
		return nil, fmt.Errorf("could not fetch sales for monthly report: %w", err)
	}

	days := MonthlySeries(sales, year, month, loc)
	var total int64
	for _, dayTotal := range days {
		total += dayTotal
	}

	report := &domain.MonthlyReport{
		Month:      from.Format("2006-01"),
		Days:       days,
		Total:      total,
		SalesCount: len(sales),
	}
	uc.log.Infof("Use Case: Monthly report for %s: %d sales, total %d", report.Month, report.SalesCount, report.Total)
	return report, nil
}

func (uc *reportUseCase) TopSellers(ctx context.Context, limit int) ([]domain.SellerStat, error) {
	if limit <= 0 {
		limit = DefaultTopSellerLimit
	}

	sales, err := uc.saleRepo.ListSales(ctx, time.Time{}, time.Time{})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to fetch sales for top sellers: %v", err)
		return nil, fmt.Errorf("could not fetch sales for top sellers: %w", err)
	}

	// The grouping walks oldest to newest so ties resolve in the order
	// items first sold; the store returns newest first.
	ordered := make([]domain.Sale, len(sales))
	for i, sale := range sales {
		ordered[len(sales)-1-i] = sale
	}

	stats := TopSellers(ordered, limit)
	uc.log.Infof("Use Case: Top sellers computed over %d sales (limit %d)", len(sales), limit)
	return stats, nil
}

func (uc *reportUseCase) Rolling(ctx context.Context, days int, today time.Time) ([]domain.DayRevenue, error) {
	if days <= 0 {
		days = DefaultRollingWindowDays
	}

	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	from := startOfToday.AddDate(0, 0, -(days - 1))
	to := startOfToday.AddDate(0, 0, 1)

	sales, err := uc.saleRepo.ListSales(ctx, from, to)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to fetch sales for rolling report: %v", err)
		return nil, fmt.Errorf("could not fetch sales for rolling report: %w", err)
	}

	series := RollingRevenue(sales, days, today)
	uc.log.Infof("Use Case: Rolling %d-day revenue computed over %d sales", days, len(sales))
	return series, nil
}
