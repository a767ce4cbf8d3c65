package reports

import (
	"sort"
	"time"

	"spendwise/internal/models"
)

// RecentTransaction is one entry in the dashboard's recent activity list,
// with the referenced category's display fields resolved. When the category
// has since been deleted, the default name/color/icon are substituted.
type RecentTransaction struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	CategoryName  string  `json:"category_name"`
	CategoryColor string  `json:"category_color"`
	CategoryIcon  string  `json:"category_icon"`
}

// BudgetStatus reports current-month spending against one recurring budget.
type BudgetStatus struct {
	Category      string  `json:"category"`
	CategoryIcon  string  `json:"category_icon"`
	CategoryColor string  `json:"category_color"`
	Budget        float64 `json:"budget"`
	Spent         float64 `json:"spent"`
	Remaining     float64 `json:"remaining"`
	Percentage    float64 `json:"percentage"`
}

// DashboardSummary is the response payload of the dashboard view.
type DashboardSummary struct {
	CurrentMonth         string              `json:"current_month"`
	CurrentMonthExpenses float64             `json:"current_month_expenses"`
	CurrentMonthBudget   float64             `json:"current_month_budget"`
	RemainingBudget      float64             `json:"remaining_budget"`
	BudgetUtilization    float64             `json:"budget_utilization"`
	RecentTransactions   []RecentTransaction `json:"recent_transactions"`
	BudgetStatus         []BudgetStatus      `json:"budget_status"`
	TransactionCount     int                 `json:"transaction_count"`
}

// Dashboard computes the dashboard view from a snapshot at reference time now.
//
// Current-month membership is a "YYYY-MM" prefix match on the expense date.
// Remaining budget may go negative; it is not clamped. Recent transactions
// cover all time, sorted by date descending with ties kept in snapshot order.
func Dashboard(snap Snapshot, now time.Time) DashboardSummary {
	currentMonth := MonthKey(now)
	categories := categoryIndex(snap.Categories)

	var monthExpenses []models.Expense
	var monthTotal float64
	for _, exp := range snap.Expenses {
		if exp.Month() == currentMonth {
			monthExpenses = append(monthExpenses, exp)
			monthTotal += exp.Amount
		}
	}

	// Every recurring budget counts toward the month's cap, whether or not
	// its category has any current-month spend.
	var monthBudget float64
	for _, b := range snap.Budgets {
		if b.Recurring {
			monthBudget += b.Amount
		}
	}

	var utilization float64
	if monthBudget > 0 {
		utilization = monthTotal / monthBudget * 100
	}

	return DashboardSummary{
		CurrentMonth:         currentMonth,
		CurrentMonthExpenses: monthTotal,
		CurrentMonthBudget:   monthBudget,
		RemainingBudget:      monthBudget - monthTotal,
		BudgetUtilization:    utilization,
		RecentTransactions:   recentTransactions(snap.Expenses, categories),
		BudgetStatus:         budgetStatus(snap.Budgets, monthExpenses, categories),
		TransactionCount:     len(monthExpenses),
	}
}

// recentTransactions returns the 5 most recent expenses across all time with
// their category display fields resolved.
func recentTransactions(expenses []models.Expense, categories map[string]models.Category) []RecentTransaction {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	recent := make([]RecentTransaction, 0, len(sorted))
	for _, exp := range sorted {
		name := models.UnknownCategoryName
		color := models.DefaultCategoryColor
		icon := models.DefaultCategoryIcon
		if cat, ok := categories[exp.CategoryID]; ok {
			name, color, icon = cat.Name, cat.Color, cat.Icon
		}
		recent = append(recent, RecentTransaction{
			ID:            exp.ID,
			Amount:        exp.Amount,
			Description:   exp.Description,
			Date:          exp.Date,
			CategoryName:  name,
			CategoryColor: color,
			CategoryIcon:  icon,
		})
	}
	return recent
}

// budgetStatus reports current-month spend against every recurring budget
// whose category still exists. Budgets referencing a deleted category are
// silently omitted.
func budgetStatus(budgets []models.Budget, monthExpenses []models.Expense, categories map[string]models.Category) []BudgetStatus {
	status := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		if !b.Recurring {
			continue
		}
		cat, ok := categories[b.CategoryID]
		if !ok {
			continue
		}

		var spent float64
		for _, exp := range monthExpenses {
			if exp.CategoryID == b.CategoryID {
				spent += exp.Amount
			}
		}

		var pct float64
		if b.Amount > 0 {
			pct = spent / b.Amount * 100
		}

		status = append(status, BudgetStatus{
			Category:      cat.Name,
			CategoryIcon:  cat.Icon,
			CategoryColor: cat.Color,
			Budget:        b.Amount,
			Spent:         spent,
			Remaining:     b.Amount - spent,
			Percentage:    pct,
		})
	}
	return status
}
