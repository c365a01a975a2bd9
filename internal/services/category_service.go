package services

import (
	"fmt"
	"strings"

	"github.com/corems/corems-backend/internal/dto"
	"github.com/corems/corems-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService is the superadmin-managed category registry.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	var existing models.Category
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrCategoryExists
	}

	category := models.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// Delete removes a category and its admin assignments. Deletion is
// unconditional: complaints filed under the category keep their (now
// dangling) category name and stay readable.
func (s *CategoryService) Delete(categoryID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", categoryID).Delete(&models.CategoryAssignment{}).Error; err != nil {
			return fmt.Errorf("failed to clear assignments: %w", err)
		}
		result := tx.Where("id = ?", categoryID).Delete(&models.Category{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
