package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/models"
	"ledgerdash/internal/pagination"
)

// incomeService handles income document queries.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// ListIncome retrieves a paginated, filtered list of income documents.
func (s *incomeService) ListIncome(filter IncomeFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	query := s.db.Model(&models.Income{})
	if filter.FromDate != nil {
		query = query.Where("doc_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("doc_date <= ?", *filter.ToDate)
	}
	if filter.Location != "" && filter.Location != "All" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Customer != "" {
		query = query.Where("customer = ?", filter.Customer)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var docs []models.Income
	if err := query.
		Order("doc_date DESC").
		Scopes(pagination.Paginate(page)).
		Find(&docs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(docs, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetIncomeByID retrieves a single income document.
func (s *incomeService) GetIncomeByID(id string) (*models.Income, error) {
	var doc models.Income
	if err := s.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &doc, nil
}
