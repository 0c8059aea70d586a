package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/pagination"
	"ledgerdash/internal/services"
)

// InvestmentHandler handles pending investment requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// ListInvestments lists pending investments
// @Summary     List pending investments
// @Description Paginated list of planned capital expenditures
// @Tags        investments
// @Produce     json
// @Param       status    query string false "Status filter"
// @Param       priority  query string false "Priority filter"
// @Param       location  query string false "Location filter"
// @Param       page      query int    false "Page number" default(1)
// @Param       page_size query int    false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.PendingInvestment] "Pending investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	var query struct {
		pagination.PageRequest
		Status   string `form:"status"`
		Priority string `form:"priority"`
		Location string `form:"location"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.investmentService.ListInvestments(services.InvestmentFilter{
		Status:   query.Status,
		Priority: query.Priority,
		Location: query.Location,
	}, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetInvestment retrieves a single pending investment
// @Summary     Get a pending investment
// @Tags        investments
// @Produce     json
// @Param       id path string true "Pending investment ID"
// @Success     200 {object} models.PendingInvestment "Pending investment"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	doc, err := h.investmentService.GetInvestmentByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
