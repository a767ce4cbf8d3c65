package reports

import (
	"fmt"
	"testing"

	"spendwise/internal/models"
)

func TestAnalytics(t *testing.T) {
	t.Run("empty_state", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{category("cat-a", "Food", "#ef4444", "🍽️")},
		}

		summary := Analytics(snap, january)

		if len(summary.CategorySpending) != 0 || len(summary.MonthlyTrends) != 0 || len(summary.BudgetComparison) != 0 {
			t.Errorf("expected empty lists, got %+v", summary)
		}
		if summary.AverageMonthlySpending != 0 {
			t.Errorf("expected average 0, got %f", summary.AverageMonthlySpending)
		}
		if summary.HighestSpendingCat != nil {
			t.Errorf("expected nil highest spending category, got %+v", summary.HighestSpendingCat)
		}
		if summary.TotalCategories != 1 {
			t.Errorf("expected 1 total category, got %d", summary.TotalCategories)
		}
		if summary.TotalTransactions != 0 {
			t.Errorf("expected 0 total transactions, got %d", summary.TotalTransactions)
		}
	})

	t.Run("monthly_trends_months_with_data_only", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{category("cat-a", "Food", "#ef4444", "🍽️")},
			Expenses: []models.Expense{
				expense("exp-1", "cat-a", 100, "2024-11-01"),
				expense("exp-2", "cat-a", 50, "2025-01-01"),
			},
		}

		summary := Analytics(snap, january)

		if len(summary.MonthlyTrends) != 2 {
			t.Fatalf("expected 2 trend entries, got %d", len(summary.MonthlyTrends))
		}
		// Ascending by month; December is absent, not zero-filled.
		if summary.MonthlyTrends[0].Month != "2024-11" || !almostEqual(summary.MonthlyTrends[0].Amount, 100) {
			t.Errorf("unexpected first trend: %+v", summary.MonthlyTrends[0])
		}
		if summary.MonthlyTrends[1].Month != "2025-01" || !almostEqual(summary.MonthlyTrends[1].Amount, 50) {
			t.Errorf("unexpected second trend: %+v", summary.MonthlyTrends[1])
		}
	})

	t.Run("monthly_trends_keep_last_six", func(t *testing.T) {
		var expenses []models.Expense
		months := []string{"2024-05", "2024-06", "2024-07", "2024-08", "2024-09", "2024-10", "2024-11", "2024-12"}
		for i, month := range months {
			expenses = append(expenses, expense(fmt.Sprintf("exp-%d", i), "cat-a", 10, month+"-15"))
		}
		snap := Snapshot{
			Categories: []models.Category{category("cat-a", "Food", "#ef4444", "🍽️")},
			Expenses:   expenses,
		}

		summary := Analytics(snap, january)

		if len(summary.MonthlyTrends) != 6 {
			t.Fatalf("expected 6 trend entries, got %d", len(summary.MonthlyTrends))
		}
		if summary.MonthlyTrends[0].Month != "2024-07" {
			t.Errorf("expected oldest kept month 2024-07, got %s", summary.MonthlyTrends[0].Month)
		}
		if summary.MonthlyTrends[5].Month != "2024-12" {
			t.Errorf("expected newest month 2024-12, got %s", summary.MonthlyTrends[5].Month)
		}
	})

	t.Run("average_over_trend_months", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{category("cat-a", "Food", "#ef4444", "🍽️")},
			Expenses: []models.Expense{
				expense("exp-1", "cat-a", 100, "2024-11-01"),
				expense("exp-2", "cat-a", 50, "2025-01-01"),
			},
		}

		summary := Analytics(snap, january)

		var total float64
		for _, trend := range summary.MonthlyTrends {
			total += trend.Amount
		}
		want := total / float64(len(summary.MonthlyTrends))
		if !almostEqual(summary.AverageMonthlySpending, want) {
			t.Errorf("expected average %f, got %f", want, summary.AverageMonthlySpending)
		}
	})

	t.Run("category_spending_first_seen_order", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{
				category("cat-a", "Food", "#ef4444", "🍽️"),
				category("cat-b", "Transport", "#22c55e", "🚗"),
			},
			Expenses: []models.Expense{
				expense("exp-1", "cat-b", 20, "2025-01-02"),
				expense("exp-2", "cat-a", 30, "2025-01-03"),
				expense("exp-3", "cat-b", 25, "2025-01-04"),
			},
		}

		summary := Analytics(snap, january)

		if len(summary.CategorySpending) != 2 {
			t.Fatalf("expected 2 spending entries, got %d", len(summary.CategorySpending))
		}
		if summary.CategorySpending[0].Category != "Transport" || !almostEqual(summary.CategorySpending[0].Amount, 45) {
			t.Errorf("unexpected first entry: %+v", summary.CategorySpending[0])
		}
		if summary.CategorySpending[1].Category != "Food" || !almostEqual(summary.CategorySpending[1].Amount, 30) {
			t.Errorf("unexpected second entry: %+v", summary.CategorySpending[1])
		}
	})

	t.Run("deleted_category_spending_dropped", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{category("cat-a", "Food", "#ef4444", "🍽️")},
			Expenses: []models.Expense{
				expense("exp-1", "cat-a", 30, "2025-01-03"),
				expense("exp-2", "gone", 99, "2025-01-04"),
			},
		}

		summary := Analytics(snap, january)

		if len(summary.CategorySpending) != 1 {
			t.Fatalf("expected 1 spending entry, got %d", len(summary.CategorySpending))
		}
		if summary.CategorySpending[0].Category != "Food" {
			t.Errorf("expected Food, got %s", summary.CategorySpending[0].Category)
		}
		// The dropped group must not win highest-spending either.
		if summary.HighestSpendingCat == nil || summary.HighestSpendingCat.Name != "Food" {
			t.Errorf("unexpected highest spending category: %+v", summary.HighestSpendingCat)
		}
	})

	t.Run("highest_spending_tie_goes_to_first_seen", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{
				category("cat-a", "Food", "#ef4444", "🍽️"),
				category("cat-b", "Transport", "#22c55e", "🚗"),
			},
			Expenses: []models.Expense{
				expense("exp-1", "cat-b", 50, "2025-01-02"),
				expense("exp-2", "cat-a", 50, "2025-01-03"),
			},
		}

		summary := Analytics(snap, january)

		if summary.HighestSpendingCat == nil || summary.HighestSpendingCat.Name != "Transport" {
			t.Errorf("expected tie to go to Transport, got %+v", summary.HighestSpendingCat)
		}
	})

	t.Run("budget_comparison_current_month_only", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{category("cat-a", "Food", "#ef4444", "🍽️")},
			Expenses: []models.Expense{
				expense("exp-1", "cat-a", 40, "2025-01-05"),
				expense("exp-2", "cat-a", 999, "2024-12-05"), // previous month
			},
			Budgets: []models.Budget{budget("bud-1", "cat-a", 500)},
		}

		summary := Analytics(snap, january)

		if len(summary.BudgetComparison) != 1 {
			t.Fatalf("expected 1 comparison entry, got %d", len(summary.BudgetComparison))
		}
		entry := summary.BudgetComparison[0]
		if !almostEqual(entry.Actual, 40) || !almostEqual(entry.Budget, 500) {
			t.Errorf("unexpected comparison entry: %+v", entry)
		}
	})

	t.Run("budget_comparison_skips_deleted_category", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{category("cat-a", "Food", "#ef4444", "🍽️")},
			Expenses:   []models.Expense{expense("exp-1", "cat-a", 40, "2025-01-05")},
			Budgets: []models.Budget{
				budget("bud-1", "cat-a", 500),
				budget("bud-2", "gone", 300),
			},
		}

		summary := Analytics(snap, january)

		if len(summary.BudgetComparison) != 1 {
			t.Fatalf("expected 1 comparison entry, got %d", len(summary.BudgetComparison))
		}
	})

	t.Run("totals", func(t *testing.T) {
		snap := Snapshot{
			Categories: []models.Category{
				category("cat-a", "Food", "#ef4444", "🍽️"),
				category("cat-b", "Transport", "#22c55e", "🚗"),
				category("cat-c", "Idle", "#888888", "📦"), // no spend, still counted
			},
			Expenses: []models.Expense{
				expense("exp-1", "cat-a", 40, "2025-01-05"),
				expense("exp-2", "cat-b", 10, "2024-03-01"),
			},
		}

		summary := Analytics(snap, january)

		if summary.TotalCategories != 3 {
			t.Errorf("expected 3 total categories, got %d", summary.TotalCategories)
		}
		if summary.TotalTransactions != 2 {
			t.Errorf("expected 2 total transactions, got %d", summary.TotalTransactions)
		}
	})
}
