package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/pagination"
	"ledgerdash/internal/services"
)

// ListIncomeQuery holds the bindable query parameters for ListIncome.
type ListIncomeQuery struct {
	pagination.PageRequest
	Location string `form:"location"`
	Status   string `form:"status" binding:"omitempty,doc_status"`
	Customer string `form:"customer"`
}

// IncomeHandler handles income document requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// ListIncome lists income documents
// @Summary     List income documents
// @Description Paginated list of income documents with optional filters
// @Tags        income
// @Produce     json
// @Param       start_date query string false "Filter from date (DD/MM/YYYY)"
// @Param       end_date   query string false "Filter to date (DD/MM/YYYY)"
// @Param       location   query string false "Location filter"
// @Param       status     query string false "Document status filter"
// @Param       customer   query string false "Customer filter"
// @Param       page       query int    false "Page number" default(1)
// @Param       page_size  query int    false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.Income] "Income documents"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [get]
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	var query ListIncomeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fromDate, err := parseOptionalDate(c, "start_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	toDate, err := parseOptionalDate(c, "end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.incomeService.ListIncome(services.IncomeFilter{
		FromDate: fromDate,
		ToDate:   toDate,
		Location: query.Location,
		Status:   query.Status,
		Customer: query.Customer,
	}, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetIncome retrieves a single income document
// @Summary     Get an income document
// @Tags        income
// @Produce     json
// @Param       id path string true "Income document ID"
// @Success     200 {object} models.Income "Income document"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	doc, err := h.incomeService.GetIncomeByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
