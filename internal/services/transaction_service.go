package services

import (
	"context"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/store"
	"pocketledger/internal/uuid"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store   *store.Store
	factory *TransactionFactory
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s *store.Store, factory *TransactionFactory) TransactionServicer {
	return &transactionService{
		store:   s,
		factory: factory,
	}
}

// CreateTransaction validates the input, builds the record and appends it
// to the store. An empty category selects the type's default and a zero
// date means today.
func (s *transactionService) CreateTransaction(
	ctx context.Context,
	rawAmount string,
	date models.Date,
	category models.Category,
	transactionType models.TransactionType,
	note string,
) (*models.Transaction, error) {
	if category == "" {
		category = models.DefaultCategory(transactionType)
	}
	if date.IsZero() {
		date = models.DateOf(s.factory.now())
	}

	transaction, err := s.factory.Create(rawAmount, date, category, transactionType, note)
	if err != nil {
		return nil, err
	}

	s.store.Append(ctx, *transaction)
	return transaction, nil
}

// ListTransactions returns a page of transactions, newest first.
func (s *transactionService) ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	result := pagination.Paginate(s.store.List(), page)
	return &result, nil
}

// RecentTransactions returns up to limit of the newest transactions.
func (s *transactionService) RecentTransactions(limit int) []models.Transaction {
	all := s.store.List()
	if limit > 0 && len(all) > limit {
		all = all[:limit:limit]
	}
	return all
}

// GetTransactionByID retrieves a transaction by ID
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if !uuid.IsValid(id) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid transaction id")
	}
	transaction, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction from the store.
func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	if !uuid.IsValid(id) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid transaction id")
	}
	if !s.store.Remove(ctx, id) {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
