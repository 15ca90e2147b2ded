package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/insight"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
)

// TransactionServicer defines the contract for recording and browsing transactions.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, rawAmount string, date models.Date, category models.Category, transactionType models.TransactionType, note string) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	RecentTransactions(limit int) []models.Transaction
	GetTransactionByID(id string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Name  models.Category `json:"name"`
	Value decimal.Decimal `json:"value" swaggertype:"string" example:"15"`
}

// Summary holds the totals of a filtered transaction set.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income" swaggertype:"string" example:"500"`
	TotalExpense decimal.Decimal `json:"total_expense" swaggertype:"string" example:"100"`
	Balance      decimal.Decimal `json:"balance" swaggertype:"string" example:"400"`
	Breakdown    []CategoryTotal `json:"breakdown"`
}

// Analysis is the summary of one filter window.
type Analysis struct {
	Filter           models.FilterState `json:"filter"`
	Context          string             `json:"context"`
	TransactionCount int                `json:"transaction_count"`
	Summary
}

// AnalysisServicer defines the contract for windowed summaries.
type AnalysisServicer interface {
	FilteredTransactions(filter models.FilterState, now time.Time) []models.Transaction
	Analyze(filter models.FilterState, now time.Time) (*Analysis, error)
}

// InsightServicer defines the contract for natural-language reviews.
type InsightServicer interface {
	RequestInsight(ctx context.Context, filter models.FilterState, now time.Time) (insight.Snapshot, error)
	Status() insight.Snapshot
	ResetInsight() (insight.Snapshot, error)
}
