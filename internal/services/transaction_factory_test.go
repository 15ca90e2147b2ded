package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"pocketledger/internal/models"
	"pocketledger/internal/testutil"
)

func TestTransactionFactory_Create(t *testing.T) {
	today := models.NewDate(2024, time.March, 17)

	t.Run("valid expense", func(t *testing.T) {
		f := NewTransactionFactory(steppingClock(testNow), nil)

		tx, err := f.Create("100.50", today, models.CategoryGroceries, models.TransactionTypeExpense, "  weekly shop ")
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, tx.Amount, "100.50")
		if tx.ID == "" {
			t.Error("expected an id")
		}
		if tx.Note != "weekly shop" {
			t.Errorf("expected trimmed note, got %q", tx.Note)
		}
		if !tx.Date.Equal(today) || tx.Category != models.CategoryGroceries || tx.Type != models.TransactionTypeExpense {
			t.Errorf("unexpected record: %+v", tx)
		}
		if tx.CreatedAt.Location() != time.UTC || !tx.CreatedAt.After(testNow) {
			t.Errorf("unexpected created_at %v", tx.CreatedAt)
		}
	})

	t.Run("keeps exact amount", func(t *testing.T) {
		f := NewTransactionFactory(nil, nil)
		for _, raw := range []string{"0.01", "1", "123456789012345.12345678", " 42 ", "1e3"} {
			tx, err := f.Create(raw, today, models.CategorySalary, models.TransactionTypeIncome, "")
			testutil.AssertNoError(t, err)
			testutil.AssertDecimal(t, tx.Amount, strings.TrimSpace(raw))
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		f := NewTransactionFactory(nil, nil)
		seen := make(map[string]bool)
		for i := 0; i < 500; i++ {
			tx, err := f.Create(fmt.Sprintf("%d", i+1), today, models.CategoryOthers, models.TransactionTypeExpense, "")
			testutil.AssertNoError(t, err)
			if seen[tx.ID] {
				t.Fatalf("duplicate id %s", tx.ID)
			}
			seen[tx.ID] = true
		}
	})

	t.Run("rejects bad amounts", func(t *testing.T) {
		f := NewTransactionFactory(nil, nil)
		for _, raw := range []string{"", "   ", "abc", "0", "0.00", "-5", "-0.01", "NaN", "Infinity", "-Inf", "1,000", "12abc", "$5"} {
			t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
				_, err := f.Create(raw, today, models.CategoryGroceries, models.TransactionTypeExpense, "")
				testutil.AssertAppError(t, err, "INVALID_AMOUNT")
			})
		}
	})

	t.Run("rejects out of range amounts", func(t *testing.T) {
		f := NewTransactionFactory(nil, nil)
		for _, raw := range []string{
			"1e20000000",
			"1e-20000000",
			"9e99999999999",
			"1234567890123456",
			"1e15",
			"0.000000001",
			"1" + strings.Repeat("0", MaxAmountLength),
		} {
			t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
				_, err := f.Create(raw, today, models.CategorySalary, models.TransactionTypeIncome, "")
				testutil.AssertAppError(t, err, "INVALID_AMOUNT")
			})
		}
	})

	t.Run("rejects cross-type category", func(t *testing.T) {
		f := NewTransactionFactory(nil, nil)

		_, err := f.Create("10", today, models.CategorySalary, models.TransactionTypeExpense, "")
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")

		_, err = f.Create("10", today, models.CategoryGroceries, models.TransactionTypeIncome, "")
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		f := NewTransactionFactory(nil, nil)
		_, err := f.Create("10", today, models.CategoryOthers, models.TransactionType("transfer"), "")
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("rejects missing date", func(t *testing.T) {
		f := NewTransactionFactory(nil, nil)
		_, err := f.Create("10", models.Date{}, models.CategoryOthers, models.TransactionTypeExpense, "")
		testutil.AssertAppError(t, err, "INVALID_DATE")
	})

	t.Run("uses injected id source", func(t *testing.T) {
		f := NewTransactionFactory(nil, func() string { return "fixed-id" })
		tx, err := f.Create("10", today, models.CategoryOthers, models.TransactionTypeExpense, "")
		testutil.AssertNoError(t, err)
		if tx.ID != "fixed-id" {
			t.Errorf("expected fixed-id, got %s", tx.ID)
		}
	})
}
