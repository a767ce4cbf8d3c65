package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category. Color and icon fall back to the
// default display values when not provided.
func (s *categoryService) CreateCategory(name, color, icon string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if color == "" {
		color = models.DefaultCategoryColor
	}
	if icon == "" {
		icon = models.DefaultCategoryIcon
	}

	category := &models.Category{
		Name:  name,
		Color: color,
		Icon:  icon,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetCategories retrieves all categories.
func (s *categoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// getCategoryByID retrieves a category by ID.
func (s *categoryService) getCategoryByID(categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory replaces a category's fields. Updating an absent category
// reports not found; an update that changes nothing is still a success.
func (s *categoryService) UpdateCategory(categoryID, name, color, icon string) (*models.Category, error) {
	category, err := s.getCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	updates := map[string]interface{}{
		"name":  name,
		"color": color,
		"icon":  icon,
	}
	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// DeleteCategory deletes a category that no expense references, cascading a
// delete of every budget for that category. Deletion is blocked while any
// expense still references it; the error names the exact count.
func (s *categoryService) DeleteCategory(categoryID string) error {
	category, err := s.getCategoryByID(categoryID)
	if err != nil {
		return err
	}

	var expenseCount int64
	if err := s.db.Model(&models.Expense{}).Where("category_id = ?", categoryID).Count(&expenseCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenseCount > 0 {
		return apperrors.WithMessage(apperrors.ErrCategoryInUse,
			fmt.Sprintf("Cannot delete category with %d expenses", expenseCount))
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Where("category_id = ?", categoryID).Delete(&models.Budget{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
