package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "financas/internal/errors"
	"financas/internal/models"
	"financas/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// Create records a transaction and applies its balance delta to the
// referenced account as a single all-or-nothing unit. The row is stamped
// with the current time. If the account does not exist or the balance
// write fails, the insert is rolled back: the store never holds an
// orphaned transaction or an unexplained balance change.
//
// accountName is stored as a point-in-time snapshot; when empty, the
// account's current name is used.
func (s *transactionService) Create(
	description string,
	amount int64,
	transactionType models.TransactionType,
	category string,
	accountID uint,
	accountName string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if accountID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}

	var result *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAccountNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if accountName == "" {
			accountName = account.Name
		}

		transaction := &models.Transaction{
			Description: description,
			Amount:      amount,
			Type:        transactionType,
			Category:    category,
			AccountID:   account.ID,
			AccountName: accountName,
			Date:        time.Now(),
		}

		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := s.accountService.ApplyDelta(tx, &account, transactionType, amount); err != nil {
			return err
		}

		result = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List retrieves a paginated list of transactions, newest first.
func (s *transactionService) List(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetByID retrieves a transaction by ID.
func (s *transactionService) GetByID(transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, "id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// Delete removes a transaction and reverses its balance effect on the
// account, atomically, so the balance invariant survives deletions.
func (s *transactionService) Delete(transactionID uint) error {
	transaction, err := s.GetByID(transactionID)
	if err != nil {
		return err
	}

	account, err := s.accountService.GetByID(transaction.AccountID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var reverseType models.TransactionType
		switch transaction.Type {
		case models.TransactionTypeIncome:
			reverseType = models.TransactionTypeExpense
		case models.TransactionTypeExpense:
			reverseType = models.TransactionTypeIncome
		default:
			return apperrors.ErrInvalidTransactionType
		}

		return s.accountService.ApplyDelta(tx, account, reverseType, transaction.Amount)
	})
}
