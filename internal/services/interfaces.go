package services

import (
	"context"

	"spendwise/internal/models"
	"spendwise/internal/reports"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name, color, icon string) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(categoryID, name, color, icon string) (*models.Category, error)
	DeleteCategory(categoryID string) error
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(amount float64, categoryID, description, date string) (*models.Expense, error)
	GetExpenses() ([]models.Expense, error)
	UpdateExpense(expenseID string, amount float64, categoryID, description, date string) (*models.Expense, error)
	DeleteExpense(expenseID string) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(categoryID string, amount float64, recurring bool) (*models.Budget, error)
	GetBudgets() ([]models.Budget, error)
	UpdateBudget(budgetID, categoryID string, amount float64, recurring bool) (*models.Budget, error)
	DeleteBudget(budgetID string) error
}

// ReportServicer defines the contract for the derived read-only views.
type ReportServicer interface {
	Dashboard(ctx context.Context) (*reports.DashboardSummary, error)
	Analytics(ctx context.Context) (*reports.AnalyticsSummary, error)
}

// InsightSummary mirrors the numbers embedded in the narrative prompt.
type InsightSummary struct {
	TotalExpenses        float64 `json:"total_expenses"`
	CurrentMonthExpenses float64 `json:"current_month_expenses"`
	CurrentMonthBudget   float64 `json:"current_month_budget"`
	NumTransactions      int     `json:"num_transactions"`
	Categories           int     `json:"categories"`
	BudgetsSet           int     `json:"budgets_set"`
}

// InsightReport carries the generated narrative and its numeric summary.
type InsightReport struct {
	Insights string         `json:"insights"`
	Summary  InsightSummary `json:"summary"`
}

// InsightServicer defines the contract for AI-generated narrative insights.
type InsightServicer interface {
	GenerateInsights(ctx context.Context) (*InsightReport, error)
}
