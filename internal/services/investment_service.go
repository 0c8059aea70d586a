package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/models"
	"ledgerdash/internal/pagination"
)

// investmentService handles pending investment queries.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// ListInvestments retrieves a paginated, filtered list of pending
// investments ordered by priority then reference code.
func (s *investmentService) ListInvestments(filter InvestmentFilter, page pagination.PageRequest) (*pagination.PageResponse[models.PendingInvestment], error) {
	page.Defaults()

	query := s.db.Model(&models.PendingInvestment{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Location != "" && filter.Location != "All" {
		query = query.Where("location = ?", filter.Location)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var docs []models.PendingInvestment
	if err := query.
		Order("priority ASC, ref_code ASC").
		Scopes(pagination.Paginate(page)).
		Find(&docs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(docs, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetInvestmentByID retrieves a single pending investment.
func (s *investmentService) GetInvestmentByID(id string) (*models.PendingInvestment, error) {
	var doc models.PendingInvestment
	if err := s.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &doc, nil
}
