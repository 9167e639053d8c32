package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense event affecting one
// account's balance. Transactions are immutable once created; deleting one
// reverses its balance effect.
//
// AccountName is a point-in-time snapshot of the account's name at insert
// time. It is intentionally not kept in sync if the account is later
// renamed, so historical listings show the name the account had then.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `gorm:"not null" json:"category"`
	AccountID   uint            `gorm:"not null;index" json:"account_id"`
	AccountName string          `gorm:"not null" json:"account_name"`
	Date        time.Time       `gorm:"not null" json:"date"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}
