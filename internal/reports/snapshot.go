// Package reports contains the pure aggregation logic behind the dashboard
// and analytics views. Functions here operate on an in-memory snapshot of all
// records and perform no I/O, which keeps them trivially testable.
package reports

import (
	"time"

	"spendwise/internal/models"
)

// Snapshot is a full in-memory copy of the three collections at one point in
// time. Slice order is the store's natural order; the aggregation functions
// rely on it only where a deterministic tie-break is needed.
type Snapshot struct {
	Categories []models.Category
	Expenses   []models.Expense
	Budgets    []models.Budget
}

// MonthKey returns the "YYYY-MM" prefix used to bucket expenses by month.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// categoryIndex builds a lookup from category ID to category.
func categoryIndex(categories []models.Category) map[string]models.Category {
	idx := make(map[string]models.Category, len(categories))
	for _, cat := range categories {
		idx[cat.ID] = cat
	}
	return idx
}
