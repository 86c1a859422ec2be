package models

import "time"

// CategoryType distinguishes spending categories from income sources.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category groups expenses and income entries.
type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	Icon      string       `json:"icon,omitempty"`
	Color     string       `json:"color,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Icon  string       `json:"icon,omitempty"`
	Color string       `json:"color,omitempty"`
}

// Expense is a single spending record.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CategoryID  string    `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExpenseInput carries the editable fields of an expense.
// Date uses the backend's YYYY-MM-DD form.
type ExpenseInput struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CategoryID  string  `json:"categoryId"`
	Date        string  `json:"date"`
}

// Income is a single earning record.
type Income struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Source      string    `json:"source"`
	Description string    `json:"description,omitempty"`
	CategoryID  string    `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IncomeInput carries the editable fields of an income record.
type IncomeInput struct {
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Description string  `json:"description,omitempty"`
	CategoryID  string  `json:"categoryId"`
	Date        string  `json:"date"`
}

// BudgetPeriod is the recurrence window a budget applies to.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget is a spending limit for a category over a period.
type Budget struct {
	ID         string       `json:"id"`
	CategoryID string       `json:"categoryId"`
	Category   *Category    `json:"category,omitempty"`
	Amount     float64      `json:"amount"`
	Period     BudgetPeriod `json:"period"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// BudgetInput carries the editable fields of a budget.
type BudgetInput struct {
	CategoryID string       `json:"categoryId"`
	Amount     float64      `json:"amount"`
	Period     BudgetPeriod `json:"period"`
}

// BudgetAlert reports a budget whose spending crossed the warning threshold.
type BudgetAlert struct {
	BudgetID     string  `json:"budgetId"`
	CategoryName string  `json:"categoryName"`
	Limit        float64 `json:"limit"`
	Spent        float64 `json:"spent"`
	Percent      float64 `json:"percent"`
	Message      string  `json:"message"`
}

// CategoryTotal is an aggregate of spending or earning per category.
type CategoryTotal struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
}

// MonthTotal is an aggregate per calendar month (YYYY-MM).
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// Stats is the aggregate payload returned by the expense and income
// stats endpoints.
type Stats struct {
	Total      float64         `json:"total"`
	Count      int64           `json:"count"`
	ByCategory []CategoryTotal `json:"byCategory"`
	ByMonth    []MonthTotal    `json:"byMonth"`
}
