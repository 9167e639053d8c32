package services

import (
	"gorm.io/gorm"

	"financas/internal/models"
	"financas/internal/pagination"
)

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	Create(name string, initialBalance int64, color string) (*models.Account, error)
	List() ([]models.Account, error)
	GetByID(accountID uint) (*models.Account, error)
	SetBalance(accountID uint, newBalance int64) (*models.Account, error)
	Delete(accountID uint) error
	ApplyDelta(tx *gorm.DB, account *models.Account, transactionType models.TransactionType, amount int64) error
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	Create(description string, amount int64, transactionType models.TransactionType, category string, accountID uint, accountName string) (*models.Transaction, error)
	List(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetByID(transactionID uint) (*models.Transaction, error)
	Delete(transactionID uint) error
}

// ReportPeriod selects the window for expense aggregation.
type ReportPeriod string

const (
	ReportPeriodToday ReportPeriod = "today"
	ReportPeriodMonth ReportPeriod = "month"
)

// CategoryTotal is one row of the per-category expense breakdown.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// Summary aggregates the dashboard figures: the income estimate, expense
// totals for the current local day and month, the live total over all
// account balances, and the month's category breakdown.
type Summary struct {
	EstimatedMonthlyIncome int64           `json:"estimated_monthly_income"`
	MonthExpenses          int64           `json:"month_expenses"`
	TodayExpenses          int64           `json:"today_expenses"`
	TotalBalance           int64           `json:"total_balance"`
	RemainingBudget        int64           `json:"remaining_budget"`
	BudgetUsedPercent      float64         `json:"budget_used_percent"`
	Categories             []CategoryTotal `json:"categories"`
}

// ReportServicer defines the contract for expense aggregation.
type ReportServicer interface {
	ExpensesByPeriod(period ReportPeriod) (int64, error)
	ExpensesByCategory() ([]CategoryTotal, error)
	Summary() (*Summary, error)
}

// ConfigServicer defines the contract for the income-estimation config.
type ConfigServicer interface {
	Get() (*models.Config, error)
	Update(dailyRate int64, daysPerWeek int, manualOverride bool, manualAmount int64) (*models.Config, error)
	EstimateMonthlyIncome(cfg *models.Config) int64
}
