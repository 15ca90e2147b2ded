package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
	"pocketledger/internal/uuid"
)

// fixtureClock hands out strictly increasing creation times so fixtures
// created in sequence have a deterministic order.
var fixtureClock = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

// MustDate parses a YYYY-MM-DD string or fails the test.
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", s, err)
	}
	return d
}

// MustDecimal parses a decimal string or fails the test.
func MustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid fixture amount %q: %v", s, err)
	}
	return d
}

// NewTestTransaction builds a transaction without going through the
// factory. Fixtures are not safe for parallel tests.
func NewTestTransaction(t *testing.T, txType models.TransactionType, category models.Category, amount, date string) models.Transaction {
	t.Helper()

	fixtureClock = fixtureClock.Add(time.Second)
	return models.Transaction{
		ID:        uuid.New(),
		Amount:    MustDecimal(t, amount),
		Date:      MustDate(t, date),
		Category:  category,
		Type:      txType,
		CreatedAt: fixtureClock,
	}
}

// NewTestExpense is NewTestTransaction for an expense.
func NewTestExpense(t *testing.T, category models.Category, amount, date string) models.Transaction {
	t.Helper()
	return NewTestTransaction(t, models.TransactionTypeExpense, category, amount, date)
}

// NewTestIncome is NewTestTransaction for an income.
func NewTestIncome(t *testing.T, category models.Category, amount, date string) models.Transaction {
	t.Helper()
	return NewTestTransaction(t, models.TransactionTypeIncome, category, amount, date)
}
