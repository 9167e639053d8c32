package services

import (
	"testing"

	"financas/internal/models"
	"financas/internal/pagination"
	"financas/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("income_increases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccount(t, db)

		tx, err := txSvc.Create("Salário", 5000, models.TransactionTypeIncome, "Trabalho", account.ID, "")
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.Date.IsZero() {
			t.Error("expected a server-assigned date")
		}

		updated, err := acctSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 5000 {
			t.Errorf("expected balance 5000, got %d", updated.Balance)
		}
	})

	t.Run("expense_decreases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccountWithBalance(t, db, 10000)

		_, err := txSvc.Create("Almoço", 3000, models.TransactionTypeExpense, "Comida", account.ID, "")
		testutil.AssertNoError(t, err)

		updated, err := acctSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 7000 {
			t.Errorf("expected balance 7000, got %d", updated.Balance)
		}
	})

	t.Run("balance_equals_signed_sum", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccountWithBalance(t, db, 100000)

		steps := []struct {
			txType models.TransactionType
			amount int64
		}{
			{models.TransactionTypeIncome, 25000},
			{models.TransactionTypeExpense, 4200},
			{models.TransactionTypeExpense, 800},
			{models.TransactionTypeIncome, 1},
		}

		expected := account.Balance
		for _, step := range steps {
			_, err := txSvc.Create("movimento", step.amount, step.txType, "Varie", account.ID, "")
			testutil.AssertNoError(t, err)
			if step.txType == models.TransactionTypeIncome {
				expected += step.amount
			} else {
				expected -= step.amount
			}
		}

		// A failed call contributes nothing.
		if _, err := txSvc.Create("inválido", -1, models.TransactionTypeExpense, "Varie", account.ID, ""); err == nil {
			t.Fatal("expected error for negative amount")
		}

		updated, err := acctSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != expected {
			t.Errorf("expected balance %d, got %d", expected, updated.Balance)
		}
	})

	t.Run("snapshots_account_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccount(t, db)

		tx, err := txSvc.Create("Café", 500, models.TransactionTypeExpense, "Comida", account.ID, "")
		testutil.AssertNoError(t, err)
		if tx.AccountName != account.Name {
			t.Errorf("expected snapshot name %q, got %q", account.Name, tx.AccountName)
		}

		// Renaming the account must not rewrite the snapshot.
		if err := db.Model(&models.Account{}).Where("id = ?", account.ID).Update("name", "Renomeada").Error; err != nil {
			t.Fatalf("failed to rename account: %v", err)
		}
		reloaded, err := txSvc.GetByID(tx.ID)
		testutil.AssertNoError(t, err)
		if reloaded.AccountName != account.Name {
			t.Errorf("expected snapshot to stay %q, got %q", account.Name, reloaded.AccountName)
		}
	})

	t.Run("caller_supplied_name_wins", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccount(t, db)

		tx, err := txSvc.Create("Café", 500, models.TransactionTypeExpense, "Comida", account.ID, "Apelido")
		testutil.AssertNoError(t, err)
		if tx.AccountName != "Apelido" {
			t.Errorf("expected snapshot name Apelido, got %q", tx.AccountName)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccount(t, db)

		_, err := txSvc.Create("nada", 0, models.TransactionTypeIncome, "Varie", account.ID, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccount(t, db)

		_, err := txSvc.Create("estranho", 100, models.TransactionType("transfer"), "Varie", account.ID, "")
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("zero_account_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)

		_, err := txSvc.Create("sem conta", 100, models.TransactionTypeIncome, "Varie", 0, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_account_leaves_no_orphan", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)

		_, err := txSvc.Create("fantasma", 100, models.TransactionTypeIncome, "Varie", 99999, "")
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")

		var count int64
		if err := db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count transactions: %v", err)
		}
		if count != 0 {
			t.Errorf("expected transactions table unchanged, found %d rows", count)
		}
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccountWithBalance(t, db, 100000)

		first, err := txSvc.Create("antiga", 100, models.TransactionTypeExpense, "Varie", account.ID, "")
		testutil.AssertNoError(t, err)
		second, err := txSvc.Create("recente", 200, models.TransactionTypeExpense, "Varie", account.ID, "")
		testutil.AssertNoError(t, err)

		page := pagination.PageRequest{}
		result, err := txSvc.List(page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Fatalf("expected 2 transactions, got %d", result.TotalItems)
		}
		if result.Data[0].ID != second.ID || result.Data[1].ID != first.ID {
			t.Errorf("expected order [%d %d], got [%d %d]", second.ID, first.ID, result.Data[0].ID, result.Data[1].ID)
		}
	})

	t.Run("pagination_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccountWithBalance(t, db, 100000)

		for i := 0; i < 5; i++ {
			_, err := txSvc.Create("movimento", 100, models.TransactionTypeExpense, "Varie", account.ID, "")
			testutil.AssertNoError(t, err)
		}

		result, err := txSvc.List(pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(result.Data))
		}
		if result.TotalItems != 5 || result.TotalPages != 3 {
			t.Errorf("expected 5 items over 3 pages, got %d over %d", result.TotalItems, result.TotalPages)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("reverses_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccountWithBalance(t, db, 1000)

		tx, err := txSvc.Create("Salário", 5000, models.TransactionTypeIncome, "Trabalho", account.ID, "")
		testutil.AssertNoError(t, err)

		err = txSvc.Delete(tx.ID)
		testutil.AssertNoError(t, err)

		updated, err := acctSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 1000 {
			t.Errorf("expected balance restored to 1000, got %d", updated.Balance)
		}

		_, err = txSvc.GetByID(tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("reverses_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		account := testutil.CreateTestAccountWithBalance(t, db, 9000)

		tx, err := txSvc.Create("Mercado", 2500, models.TransactionTypeExpense, "Comida", account.ID, "")
		testutil.AssertNoError(t, err)

		err = txSvc.Delete(tx.ID)
		testutil.AssertNoError(t, err)

		updated, err := acctSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 9000 {
			t.Errorf("expected balance restored to 9000, got %d", updated.Balance)
		}
	})

	t.Run("missing_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)

		err := txSvc.Delete(99999)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
