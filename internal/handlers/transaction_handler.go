package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	recentLimit        int
}

// NewTransactionHandler creates a new TransactionHandler. recentLimit is the
// default size of the recent list.
func NewTransactionHandler(transactionService services.TransactionServicer, recentLimit int) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, recentLimit: recentLimit}
}

// AmountInput is the raw amount text. It accepts a JSON string or a JSON
// number and keeps the literal digits either way, so 100.10 is not
// rounded through float64.
type AmountInput string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("amount must be a string or a number")
	}
	*a = AmountInput(n)
	return nil
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount is the text typed by the user; an empty date means today and an
// empty category selects the default for the type.
type CreateTransactionRequest struct {
	Amount   AmountInput            `json:"amount" binding:"required,max=32" swaggertype:"string" example:"100.50"`
	Date     string                 `json:"date" binding:"omitempty,iso_date" example:"2024-03-10"`
	Category models.Category        `json:"category" binding:"omitempty,entry_category=Type" example:"Groceries"`
	Type     models.TransactionType `json:"type" binding:"required,transaction_type" example:"expense"`
	Note     string                 `json:"note" binding:"max=500"`
}

// TransactionResponse wraps a single transaction.
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// TransactionListResponse wraps a list of transactions.
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. The amount must be a positive decimal and the category must belong to the type.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDateParam("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(
		c.Request.Context(),
		string(req.Amount),
		date,
		req.Category,
		req.Type,
		req.Note,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Transaction: *transaction})
}

// ListTransactions handles the paginated transaction history
// @Summary     List transactions
// @Description Get a paginated list of all transactions, newest first
// @Tags        transactions
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.ListTransactions(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecentTransactions handles the short recent-activity list
// @Summary     Recent transactions
// @Description Get the newest transactions
// @Tags        transactions
// @Produce     json
// @Param       limit query int false "Number of transactions (default 5)"
// @Success     200 {object} TransactionListResponse "Recent transactions"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Router      /transactions/recent [get]
func (h *TransactionHandler) RecentTransactions(c *gin.Context) {
	limit := h.recentLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Transactions: h.transactionService.RecentTransactions(limit),
	})
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Transaction: *transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID. The request must carry confirm=true.
// @Tags        transactions
// @Produce     json
// @Param       id      path  string true "Transaction ID"
// @Param       confirm query bool   true "Confirm the deletion"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     428 {object} ErrorResponse "Deletion not confirmed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if confirmed, _ := strconv.ParseBool(c.Query("confirm")); !confirmed {
		respondWithError(c, apperrors.ErrConfirmationRequired)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}
