package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/models"
)

// recurringCategories are the category names whose expenses recur
// monthly. Inferred at sync time from the spreadsheet's category value.
var recurringCategories = map[string]bool{
	"Alquiler":                      true,
	"Utilidades":                    true,
	"Gastos Personal":               true,
	"Sueldos":                       true,
	"Internet, Agua y Electricidad": true,
	"Electricidad Nave":             true,
}

// IsRecurringCategory reports whether expenses under the category name
// recur monthly.
func IsRecurringCategory(name string) bool {
	return recurringCategories[strings.TrimSpace(name)]
}

// categoryService manages the expense category hierarchy.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategoryTree returns all root categories with their children
// preloaded, ordered by name.
func (s *categoryService) ListCategoryTree() ([]models.ExpenseCategory, error) {
	var roots []models.ExpenseCategory
	if err := s.db.
		Preload("Children", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("parent_id IS NULL").
		Order("name ASC").
		Find(&roots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return roots, nil
}

// ResolveLeaf returns the category node a transaction should attach to,
// creating the parent -> child hierarchy on demand. An empty category
// resolves to the Uncategorized root; an empty subcategory resolves to
// the parent itself.
func (s *categoryService) ResolveLeaf(category, subcategory string) (*models.ExpenseCategory, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = models.UncategorizedName
	}
	subcategory = strings.TrimSpace(subcategory)

	parent, err := s.getOrCreate(category, nil)
	if err != nil {
		return nil, err
	}
	if subcategory == "" {
		return parent, nil
	}
	return s.getOrCreate(subcategory, &parent.ID)
}

func (s *categoryService) getOrCreate(name string, parentID *string) (*models.ExpenseCategory, error) {
	query := s.db.Where("name = ?", name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var node models.ExpenseCategory
	err := query.First(&node).Error
	if err == nil {
		return &node, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	node = models.ExpenseCategory{
		Name:        name,
		ParentID:    parentID,
		IsRecurring: IsRecurringCategory(name),
	}
	if err := s.db.Create(&node).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &node, nil
}
