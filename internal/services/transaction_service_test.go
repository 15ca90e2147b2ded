package services

import (
	"context"
	"testing"

	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/store"
	"pocketledger/internal/testutil"
	"pocketledger/internal/uuid"
)

func newTestTransactionService() (TransactionServicer, *store.Store) {
	s := newTestStore()
	return NewTransactionService(s, NewTransactionFactory(steppingClock(testNow), nil)), s
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	today := models.DateOf(testNow)

	t.Run("appends to the store", func(t *testing.T) {
		svc, s := newTestTransactionService()

		tx, err := svc.CreateTransaction(ctx, "100", today, models.CategoryGroceries, models.TransactionTypeExpense, "")
		testutil.AssertNoError(t, err)

		if s.Len() != 1 {
			t.Fatalf("expected 1 stored transaction, got %d", s.Len())
		}
		stored, ok := s.Get(tx.ID)
		if !ok || !stored.Amount.Equal(tx.Amount) {
			t.Errorf("stored record does not match: %+v", stored)
		}
	})

	t.Run("defaults category and date", func(t *testing.T) {
		svc, _ := newTestTransactionService()

		expense, err := svc.CreateTransaction(ctx, "5", models.Date{}, "", models.TransactionTypeExpense, "")
		testutil.AssertNoError(t, err)
		if expense.Category != models.CategoryFoodDining {
			t.Errorf("expected Food & Dining, got %q", expense.Category)
		}
		if !expense.Date.Equal(today) {
			t.Errorf("expected today, got %s", expense.Date)
		}

		income, err := svc.CreateTransaction(ctx, "5", today, "", models.TransactionTypeIncome, "")
		testutil.AssertNoError(t, err)
		if income.Category != models.CategorySalary {
			t.Errorf("expected Salary, got %q", income.Category)
		}
	})

	t.Run("rejected input leaves the store unchanged", func(t *testing.T) {
		svc, s := newTestTransactionService()

		for _, raw := range []string{"abc", "0", "-1"} {
			_, err := svc.CreateTransaction(ctx, raw, today, models.CategoryGroceries, models.TransactionTypeExpense, "")
			testutil.AssertAppError(t, err, "INVALID_AMOUNT")
		}
		_, err := svc.CreateTransaction(ctx, "10", today, models.CategorySalary, models.TransactionTypeExpense, "")
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")

		if s.Len() != 0 {
			t.Errorf("expected empty store, got %d", s.Len())
		}
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTransactionService()

	older, err := svc.CreateTransaction(ctx, "1", testutil.MustDate(t, "2024-03-01"), models.CategoryPets, models.TransactionTypeExpense, "")
	testutil.AssertNoError(t, err)
	first, err := svc.CreateTransaction(ctx, "2", testutil.MustDate(t, "2024-03-10"), models.CategoryPets, models.TransactionTypeExpense, "")
	testutil.AssertNoError(t, err)
	second, err := svc.CreateTransaction(ctx, "3", testutil.MustDate(t, "2024-03-10"), models.CategoryPets, models.TransactionTypeExpense, "")
	testutil.AssertNoError(t, err)

	t.Run("newest first with creation tie-break", func(t *testing.T) {
		page, err := svc.ListTransactions(pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		want := []string{second.ID, first.ID, older.ID}
		if page.TotalItems != 3 {
			t.Fatalf("expected 3 items, got %d", page.TotalItems)
		}
		for i, id := range want {
			if page.Data[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, page.Data[i].ID)
			}
		}
	})

	t.Run("paginates", func(t *testing.T) {
		page, err := svc.ListTransactions(pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.Data[0].ID != older.ID || page.TotalPages != 2 {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("recent", func(t *testing.T) {
		recent := svc.RecentTransactions(2)
		if len(recent) != 2 || recent[0].ID != second.ID {
			t.Errorf("unexpected recent list: %v", ids(recent))
		}
		if all := svc.RecentTransactions(0); len(all) != 3 {
			t.Errorf("limit 0 should return everything, got %d", len(all))
		}
	})
}

func TestGetAndDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		svc, _ := newTestTransactionService()
		tx, err := svc.CreateTransaction(ctx, "9", models.DateOf(testNow), models.CategoryGift, models.TransactionTypeIncome, "birthday")
		testutil.AssertNoError(t, err)

		got, err := svc.GetTransactionByID(tx.ID)
		testutil.AssertNoError(t, err)
		if got.Note != "birthday" {
			t.Errorf("unexpected record %+v", got)
		}

		_, err = svc.GetTransactionByID(uuid.New())
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		_, err = svc.GetTransactionByID("nope")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("delete", func(t *testing.T) {
		svc, s := newTestTransactionService()
		tx, err := svc.CreateTransaction(ctx, "9", models.DateOf(testNow), models.CategoryGift, models.TransactionTypeIncome, "")
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteTransaction(ctx, tx.ID))
		if s.Len() != 0 {
			t.Errorf("expected empty store, got %d", s.Len())
		}
		testutil.AssertAppError(t, svc.DeleteTransaction(ctx, tx.ID), "TRANSACTION_NOT_FOUND")
		testutil.AssertAppError(t, svc.DeleteTransaction(ctx, "bad id"), "INVALID_INPUT")
	})
}
