package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "financas/internal/errors"
	"financas/internal/models"
)

// reportService computes expense aggregates. Nothing is cached: every call
// recomputes from stored rows, so results always reflect the latest
// committed writes.
type reportService struct {
	db            *gorm.DB
	configService ConfigServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, configService ConfigServicer) ReportServicer {
	return &reportService{db: db, configService: configService}
}

// periodBounds returns the half-open [start, end) window for the given
// period, in the local time zone: the current calendar day or the current
// calendar month.
func periodBounds(period ReportPeriod, now time.Time) (time.Time, time.Time, error) {
	switch period {
	case ReportPeriodToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1), nil
	case ReportPeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be today or month")
	}
}

// ExpensesByPeriod returns the sum of expense amounts dated in the current
// local calendar day or month. No matching rows yields zero.
func (s *reportService) ExpensesByPeriod(period ReportPeriod) (int64, error) {
	start, end, err := periodBounds(period, time.Now())
	if err != nil {
		return 0, err
	}

	var total int64
	if err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ? AND date >= ? AND date < ?", models.TransactionTypeExpense, start, end).
		Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return total, nil
}

// ExpensesByCategory returns the current month's expense total per
// category, largest first. Categories with no expense activity this month
// are absent rather than reported as zero.
func (s *reportService) ExpensesByCategory() ([]CategoryTotal, error) {
	start, end, err := periodBounds(ReportPeriodMonth, time.Now())
	if err != nil {
		return nil, err
	}

	var totals []CategoryTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("category, SUM(amount) AS total").
		Where("type = ? AND date >= ? AND date < ?", models.TransactionTypeExpense, start, end).
		Group("category").
		Order("total DESC").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return totals, nil
}

// Summary assembles the dashboard figures in one call: income estimate,
// day and month expense totals, the live total over all account balances,
// remaining budget, and the category breakdown. The budget-used percentage
// is clamped to [0, 100].
func (s *reportService) Summary() (*Summary, error) {
	cfg, err := s.configService.Get()
	if err != nil {
		return nil, err
	}
	estimate := s.configService.EstimateMonthlyIncome(cfg)

	monthTotal, err := s.ExpensesByPeriod(ReportPeriodMonth)
	if err != nil {
		return nil, err
	}
	todayTotal, err := s.ExpensesByPeriod(ReportPeriodToday)
	if err != nil {
		return nil, err
	}
	categories, err := s.ExpensesByCategory()
	if err != nil {
		return nil, err
	}

	var totalBalance int64
	if err := s.db.Model(&models.Account{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&totalBalance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var usedPct float64
	if estimate > 0 {
		usedPct = float64(monthTotal) * 100 / float64(estimate)
		if usedPct < 0 {
			usedPct = 0
		}
		if usedPct > 100 {
			usedPct = 100
		}
	}

	return &Summary{
		EstimatedMonthlyIncome: estimate,
		MonthExpenses:          monthTotal,
		TodayExpenses:          todayTotal,
		TotalBalance:           totalBalance,
		RemainingBudget:        estimate - monthTotal,
		BudgetUsedPercent:      usedPct,
		Categories:             categories,
	}, nil
}
