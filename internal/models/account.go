package models

import "time"

// DefaultAccountColor is applied when an account is created without a
// display color.
const DefaultAccountColor = "#64748b"

// Account represents a balance-holding entity, e.g. a bank account or a
// physical wallet. Balance is stored in cents and is kept consistent with
// the account's transaction history by the transaction service; SetBalance
// is the one operation allowed to re-baseline it.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Balance   int64     `gorm:"not null;default:0" json:"balance"`
	Color     string    `gorm:"not null;default:'#64748b'" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
