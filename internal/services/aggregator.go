package services

import (
	"slices"

	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
)

// Aggregate totals income and expense and builds the expense breakdown.
// The breakdown is sorted by value descending; categories with equal sums
// keep the order in which they were first seen.
func Aggregate(transactions []models.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	breakdown := []CategoryTotal{}
	index := make(map[models.Category]int)

	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
			if i, ok := index[t.Category]; ok {
				breakdown[i].Value = breakdown[i].Value.Add(t.Amount)
				continue
			}
			index[t.Category] = len(breakdown)
			breakdown = append(breakdown, CategoryTotal{Name: t.Category, Value: t.Amount})
		}
	}

	slices.SortStableFunc(breakdown, func(a, b CategoryTotal) int {
		return b.Value.Cmp(a.Value)
	})

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		Breakdown:    breakdown,
	}
}
