package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// budgetUnique checks that no other budget exists for the category.
// excludingID carries the record's own ID on the update path so a budget
// never collides with itself.
func (s *budgetService) budgetUnique(categoryID, excludingID string) error {
	query := s.db.Model(&models.Budget{}).Where("category_id = ?", categoryID)
	if excludingID != "" {
		query = query.Where("id <> ?", excludingID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrBudgetExists
	}
	return nil
}

// CreateBudget creates a new recurring budget for a category. The category
// must exist and must not already have a budget.
//
// The existence and uniqueness checks are read-then-write with no
// transactional isolation, so two concurrent creations for the same category
// can race past the check. Accepted limitation.
func (s *budgetService) CreateBudget(categoryID string, amount float64, recurring bool) (*models.Budget, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must not be negative")
	}
	if err := categoryExists(s.db, categoryID); err != nil {
		return nil, err
	}
	if err := s.budgetUnique(categoryID, ""); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		CategoryID: categoryID,
		Amount:     amount,
		Recurring:  recurring,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetBudgets retrieves all budgets.
func (s *budgetService) GetBudgets() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// UpdateBudget replaces a budget's fields. The referenced category must
// exist, and moving the budget to another category must not collide with
// that category's existing budget. The record's own ID is excluded from the
// collision check so an in-place update never conflicts with itself.
func (s *budgetService) UpdateBudget(budgetID, categoryID string, amount float64, recurring bool) (*models.Budget, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must not be negative")
	}
	if err := categoryExists(s.db, categoryID); err != nil {
		return nil, err
	}

	var budget models.Budget
	if err := s.db.Where("id = ?", budgetID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.budgetUnique(categoryID, budgetID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"category_id": categoryID,
		"amount":      amount,
		"recurring":   recurring,
	}
	if err := s.db.Model(&budget).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &budget, nil
}

// DeleteBudget deletes a budget by ID.
func (s *budgetService) DeleteBudget(budgetID string) error {
	result := s.db.Where("id = ?", budgetID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
