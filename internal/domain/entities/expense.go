package entities

import "time"

// ExpenseCategory classifies an operational expense.
type ExpenseCategory string

const (
	ExpenseCategoryMaterial   ExpenseCategory = "Material"
	ExpenseCategoryServicio   ExpenseCategory = "Servicio"
	ExpenseCategoryTransporte ExpenseCategory = "Transporte"
	ExpenseCategoryOtro       ExpenseCategory = "Otro"
)

// Expense is a standalone operational expense. It relates to no invoice or
// client; reporting aggregates expenses independently.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Date        time.Time       `json:"date"`
}
