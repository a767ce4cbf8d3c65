package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"spendwise/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name and default display values.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  fmt.Sprintf("Test Category %d", nextID()),
		Color: models.DefaultCategoryColor,
		Icon:  models.DefaultCategoryIcon,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense for the given category on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, categoryID string, amount float64, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:      amount,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a recurring budget for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, categoryID string, amount float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		CategoryID: categoryID,
		Amount:     amount,
		Recurring:  true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
