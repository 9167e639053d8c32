package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"financas/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, 0)
}

// CreateTestAccountWithBalance creates an account with the given balance (in cents).
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:    fmt.Sprintf("Test Account %d", nextID()),
		Balance: balance,
		Color:   models.DefaultAccountColor,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a transaction row directly, dated now.
// It bypasses the transaction service, so the account balance is not
// adjusted; use it to arrange report and listing fixtures.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID uint, txType models.TransactionType, amount int64, category string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, accountID, txType, amount, category, time.Now())
}

// CreateTestTransactionAt creates a transaction row with an explicit date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, accountID uint, txType models.TransactionType, amount int64, category string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      amount,
		Type:        txType,
		Category:    category,
		AccountID:   accountID,
		AccountName: fmt.Sprintf("Account %d", accountID),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestConfig inserts the singleton config row with the defaults.
func CreateTestConfig(t *testing.T, db *gorm.DB) *models.Config {
	t.Helper()

	cfg := models.DefaultConfig()
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	return &cfg
}
