// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pocketledger/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom tags to v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("time_range", validateTimeRange)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("entry_category", validateEntryCategory)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateTimeRange(fl validator.FieldLevel) bool {
	return models.TimeRange(fl.Field().String()).Valid()
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// validateEntryCategory checks the category against the closed set of the
// transaction type held in the sibling field named by the tag parameter,
// e.g. `entry_category=Type`. Without a parameter any known category passes.
func validateEntryCategory(fl validator.FieldLevel) bool {
	category := models.Category(fl.Field().String())
	if fl.Param() == "" {
		return models.ValidCategory(models.TransactionTypeExpense, category) ||
			models.ValidCategory(models.TransactionTypeIncome, category)
	}

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	typeField := parent.FieldByName(fl.Param())
	if !typeField.IsValid() || typeField.Kind() != reflect.String {
		return false
	}
	return models.ValidCategory(models.TransactionType(typeField.String()), category)
}
