package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// CategoryHandler serves the fixed category lists.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategorySet is the closed category list of one transaction type.
type CategorySet struct {
	Type       models.TransactionType `json:"type"`
	Default    models.Category        `json:"default"`
	Categories []models.Category      `json:"categories"`
}

// CategoriesResponse lists one or both category sets.
type CategoriesResponse struct {
	Sets []CategorySet `json:"sets"`
}

func categorySet(t models.TransactionType) CategorySet {
	return CategorySet{
		Type:       t,
		Default:    models.DefaultCategory(t),
		Categories: models.CategoriesFor(t),
	}
}

// GetCategories handles the category list request
// @Summary     List categories
// @Description Get the categories allowed for a transaction type, or for both types
// @Tags        categories
// @Produce     json
// @Param       type query string false "Transaction type (expense or income)"
// @Success     200 {object} CategoriesResponse "Category sets"
// @Failure     400 {object} ErrorResponse "Invalid transaction type"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	v := c.Query("type")
	if v == "" {
		c.JSON(http.StatusOK, CategoriesResponse{Sets: []CategorySet{
			categorySet(models.TransactionTypeExpense),
			categorySet(models.TransactionTypeIncome),
		}})
		return
	}

	t := models.TransactionType(v)
	if !t.Valid() {
		respondWithError(c, apperrors.ErrInvalidTransactionType)
		return
	}
	c.JSON(http.StatusOK, CategoriesResponse{Sets: []CategorySet{categorySet(t)}})
}
