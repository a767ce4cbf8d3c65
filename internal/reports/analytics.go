package reports

import (
	"sort"
	"time"

	"spendwise/internal/models"
)

// CategorySpending is an all-time spending total for one category.
type CategorySpending struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Color    string  `json:"color"`
}

// TopCategory names the category with the highest all-time spend.
type TopCategory struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// MonthlyTrend is the spending total for one month that has expenses.
type MonthlyTrend struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// BudgetComparison pairs a recurring budget with its current-month spend.
type BudgetComparison struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
	Actual   float64 `json:"actual"`
	Color    string  `json:"color"`
}

// AnalyticsSummary is the response payload of the analytics view.
type AnalyticsSummary struct {
	CategorySpending       []CategorySpending `json:"category_spending"`
	MonthlyTrends          []MonthlyTrend     `json:"monthly_trends"`
	BudgetComparison       []BudgetComparison `json:"budget_comparison"`
	AverageMonthlySpending float64            `json:"average_monthly_spending"`
	HighestSpendingCat     *TopCategory       `json:"highest_spending_category"`
	TotalCategories        int                `json:"total_categories"`
	TotalTransactions      int                `json:"total_transactions"`
}

// Analytics computes the analytics view from a snapshot at reference time now.
//
// With zero expenses it returns the empty structure immediately. Category
// spending is emitted in first-seen order of the grouping pass over the
// snapshot's expenses; the highest spending category is the first entry with
// the maximum amount, so ties go to the category seen first. Monthly trends
// keep only the 6 most recent distinct months that have any expense; months
// without spend are absent, not zero-filled. The monthly average is taken
// over those (at most 6) months only.
func Analytics(snap Snapshot, now time.Time) AnalyticsSummary {
	summary := AnalyticsSummary{
		CategorySpending: []CategorySpending{},
		MonthlyTrends:    []MonthlyTrend{},
		BudgetComparison: []BudgetComparison{},
		TotalCategories:  len(snap.Categories),
	}
	if len(snap.Expenses) == 0 {
		return summary
	}

	categories := categoryIndex(snap.Categories)
	summary.TotalTransactions = len(snap.Expenses)
	summary.CategorySpending = categorySpending(snap.Expenses, categories)

	for _, cs := range summary.CategorySpending {
		if summary.HighestSpendingCat == nil || cs.Amount > summary.HighestSpendingCat.Amount {
			top := TopCategory{Name: cs.Category, Amount: cs.Amount}
			summary.HighestSpendingCat = &top
		}
	}

	summary.MonthlyTrends = monthlyTrends(snap.Expenses)
	if len(summary.MonthlyTrends) > 0 {
		var total float64
		for _, t := range summary.MonthlyTrends {
			total += t.Amount
		}
		summary.AverageMonthlySpending = total / float64(len(summary.MonthlyTrends))
	}

	summary.BudgetComparison = budgetComparison(snap.Budgets, snap.Expenses, categories, MonthKey(now))
	return summary
}

// categorySpending groups all-time expenses by category in first-seen order.
// Groups whose category no longer exists are dropped.
func categorySpending(expenses []models.Expense, categories map[string]models.Category) []CategorySpending {
	totals := make(map[string]float64)
	var order []string
	for _, exp := range expenses {
		if _, seen := totals[exp.CategoryID]; !seen {
			order = append(order, exp.CategoryID)
		}
		totals[exp.CategoryID] += exp.Amount
	}

	spending := make([]CategorySpending, 0, len(order))
	for _, catID := range order {
		cat, ok := categories[catID]
		if !ok {
			continue
		}
		spending = append(spending, CategorySpending{
			Category: cat.Name,
			Amount:   totals[catID],
			Color:    cat.Color,
		})
	}
	return spending
}

// monthlyTrends sums expenses per "YYYY-MM" month, sorted ascending, keeping
// the last 6 entries.
func monthlyTrends(expenses []models.Expense) []MonthlyTrend {
	totals := make(map[string]float64)
	for _, exp := range expenses {
		totals[exp.Month()] += exp.Amount
	}

	trends := make([]MonthlyTrend, 0, len(totals))
	for month, amount := range totals {
		trends = append(trends, MonthlyTrend{Month: month, Amount: amount})
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Month < trends[j].Month
	})
	if len(trends) > 6 {
		trends = trends[len(trends)-6:]
	}
	return trends
}

// budgetComparison pairs every recurring budget with a live category against
// that category's spend in the current month.
func budgetComparison(budgets []models.Budget, expenses []models.Expense, categories map[string]models.Category, currentMonth string) []BudgetComparison {
	comparison := make([]BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		if !b.Recurring {
			continue
		}
		cat, ok := categories[b.CategoryID]
		if !ok {
			continue
		}

		var actual float64
		for _, exp := range expenses {
			if exp.CategoryID == b.CategoryID && exp.Month() == currentMonth {
				actual += exp.Amount
			}
		}

		comparison = append(comparison, BudgetComparison{
			Category: cat.Name,
			Budget:   b.Amount,
			Actual:   actual,
			Color:    cat.Color,
		})
	}
	return comparison
}
