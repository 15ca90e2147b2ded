package models

import "slices"

// Category is the display label of a transaction category.
type Category string

// Expense categories.
const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryGroceries      Category = "Groceries"
	CategoryTransport      Category = "Transport"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryShopping       Category = "Shopping"
	CategoryHealthFitness  Category = "Health & Fitness"
	CategoryHousingRent    Category = "Housing & Rent"
	CategoryEducation      Category = "Education"
	CategoryEntertainment  Category = "Entertainment"
	CategoryTravelVacation Category = "Travel & Vacation"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryGiftsDonations Category = "Gifts & Donations"
	CategoryInvestment     Category = "Investment"
	CategoryDebtLoans      Category = "Debt & Loans"
	CategoryInsurance      Category = "Insurance"
	CategoryPets           Category = "Pets"
	CategoryOthers         Category = "Others"
)

// Income categories. "Others" is shared with the expense set.
const (
	CategorySalary           Category = "Salary"
	CategoryFreelance        Category = "Freelance"
	CategoryBusiness         Category = "Business"
	CategoryGift             Category = "Gift"
	CategoryRefund           Category = "Refund"
	CategoryInvestmentReturn Category = "Investment Return"
	CategoryRentalIncome     Category = "Rental Income"
)

var expenseCategories = []Category{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryTransport,
	CategoryBillsUtilities,
	CategoryShopping,
	CategoryHealthFitness,
	CategoryHousingRent,
	CategoryEducation,
	CategoryEntertainment,
	CategoryTravelVacation,
	CategoryPersonalCare,
	CategoryGiftsDonations,
	CategoryInvestment,
	CategoryDebtLoans,
	CategoryInsurance,
	CategoryPets,
	CategoryOthers,
}

var incomeCategories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryBusiness,
	CategoryGift,
	CategoryRefund,
	CategoryInvestmentReturn,
	CategoryRentalIncome,
	CategoryOthers,
}

// CategoriesFor returns a copy of the closed category set for t, in display
// order. Unknown types yield nil.
func CategoriesFor(t TransactionType) []Category {
	switch t {
	case TransactionTypeExpense:
		return slices.Clone(expenseCategories)
	case TransactionTypeIncome:
		return slices.Clone(incomeCategories)
	}
	return nil
}

// ValidCategory reports whether c may be used on a transaction of type t.
func ValidCategory(t TransactionType, c Category) bool {
	switch t {
	case TransactionTypeExpense:
		return slices.Contains(expenseCategories, c)
	case TransactionTypeIncome:
		return slices.Contains(incomeCategories, c)
	}
	return false
}

// DefaultCategory is the category preselected for a new transaction of type t.
func DefaultCategory(t TransactionType) Category {
	if t == TransactionTypeIncome {
		return CategorySalary
	}
	return CategoryFoodDining
}
