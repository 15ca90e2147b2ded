package models

import (
	"cmp"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction is a single income or expense record. Records are never
// edited; a correction is a delete followed by a new record.
type Transaction struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"100.50"`
	Date      Date            `json:"date" swaggertype:"string" example:"2024-03-10"`
	Category  Category        `json:"category"`
	Type      TransactionType `json:"type"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// CompareTransactions orders transactions newest first: by date, then by
// creation time, then by id, all descending. It is a total order so the
// result never depends on sort stability.
func CompareTransactions(a, b Transaction) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}
