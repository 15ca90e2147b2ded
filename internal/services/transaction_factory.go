package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/uuid"
)

// TransactionFactory validates raw input and builds new transactions.
type TransactionFactory struct {
	now   func() time.Time
	newID func() string
}

// NewTransactionFactory creates a factory. Nil arguments fall back to the
// wall clock and UUIDv7 ids.
func NewTransactionFactory(now func() time.Time, newID func() string) *TransactionFactory {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.New
	}
	return &TransactionFactory{now: now, newID: newID}
}

// Create builds a transaction from form input. rawAmount must parse as a
// positive finite decimal and category must belong to transactionType.
func (f *TransactionFactory) Create(
	rawAmount string,
	date models.Date,
	category models.Category,
	transactionType models.TransactionType,
	note string,
) (*models.Transaction, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDate, "date is required")
	}

	if !models.ValidCategory(transactionType, category) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory,
			"category \""+string(category)+"\" is not a valid "+string(transactionType)+" category")
	}

	return &models.Transaction{
		ID:        f.newID(),
		Amount:    amount,
		Date:      date,
		Category:  category,
		Type:      transactionType,
		Note:      strings.TrimSpace(note),
		CreatedAt: f.now().UTC(),
	}, nil
}

// Amount bounds. Exponent notation is accepted, so the bounds apply to the
// parsed value rather than the input length.
const (
	MaxAmountLength        = 32
	MaxAmountIntegerDigits = 15
	MaxAmountScale         = 8
)

// ParseAmount parses a user-entered amount. Surrounding whitespace is
// ignored; anything that is not a positive decimal within the amount
// bounds is rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount is required")
	}
	if len(s) > MaxAmountLength {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount,
			fmt.Sprintf("amount must be at most %d characters", MaxAmountLength))
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInvalidAmount, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	if int64(amount.NumDigits())+int64(amount.Exponent()) > MaxAmountIntegerDigits {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount,
			fmt.Sprintf("amount must have at most %d integer digits", MaxAmountIntegerDigits))
	}
	if -int64(amount.Exponent()) > MaxAmountScale {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount,
			fmt.Sprintf("amount must have at most %d decimal places", MaxAmountScale))
	}
	return amount, nil
}
