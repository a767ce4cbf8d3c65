package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// categoryExists verifies that an expense or budget write references an
// existing category.
func categoryExists(db *gorm.DB, categoryID string) error {
	var category models.Category
	if err := db.Select("id").Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CreateExpense creates a new expense after checking the referenced category exists.
func (s *expenseService) CreateExpense(amount float64, categoryID, description, date string) (*models.Expense, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense amount must not be negative")
	}
	if err := categoryExists(s.db, categoryID); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Amount:      amount,
		CategoryID:  categoryID,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetExpenses retrieves all expenses sorted by date descending. Ties on the
// same date fall back to creation order, newest first, so the listing is
// deterministic.
func (s *expenseService) GetExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Order("date DESC, created_at DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// UpdateExpense replaces an expense's fields. The referenced category must
// exist; updating an absent expense reports not found.
func (s *expenseService) UpdateExpense(expenseID string, amount float64, categoryID, description, date string) (*models.Expense, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense amount must not be negative")
	}
	if err := categoryExists(s.db, categoryID); err != nil {
		return nil, err
	}

	var expense models.Expense
	if err := s.db.Where("id = ?", expenseID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"amount":      amount,
		"category_id": categoryID,
		"description": description,
		"date":        date,
	}
	if err := s.db.Model(&expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &expense, nil
}

// DeleteExpense deletes an expense by ID.
func (s *expenseService) DeleteExpense(expenseID string) error {
	result := s.db.Where("id = ?", expenseID).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
