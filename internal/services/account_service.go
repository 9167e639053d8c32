package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "financas/internal/errors"
	"financas/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// Create inserts a new account with the given starting balance. Names are
// not required to be unique; the color falls back to the default tag.
func (s *accountService) Create(name string, initialBalance int64, color string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	if color == "" {
		color = models.DefaultAccountColor
	}

	account := &models.Account{
		Name:    name,
		Balance: initialBalance,
		Color:   color,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// List returns all accounts in insertion order.
func (s *accountService) List() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetByID retrieves an account by ID.
func (s *accountService) GetByID(accountID uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// SetBalance unconditionally overwrites the account's balance. This is the
// manual-correction escape hatch: it is not validated against transaction
// history and establishes a new baseline for the account.
func (s *accountService) SetBalance(accountID uint, newBalance int64) (*models.Account, error) {
	account, err := s.GetByID(accountID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(account).Update("balance", newBalance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	account.Balance = newBalance
	return account, nil
}

// Delete removes the account and all transactions referencing it. Both
// deletes commit together so a partially cascaded account is never visible.
func (s *accountService) Delete(accountID uint) error {
	account, err := s.GetByID(accountID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(account).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// ApplyDelta adjusts the account's stored balance by the signed amount of a
// transaction: income adds, expense subtracts. Callers must run it inside
// the same database transaction as the transaction-row write so the two
// are never observed partially applied.
func (s *accountService) ApplyDelta(tx *gorm.DB, account *models.Account, transactionType models.TransactionType, amount int64) error {
	switch transactionType {
	case models.TransactionTypeIncome:
		account.Balance += amount
	case models.TransactionTypeExpense:
		account.Balance -= amount
	default:
		return apperrors.ErrInvalidTransactionType
	}

	if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
