package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/pagination"
	"ledgerdash/internal/services"
)

// ListExpensesQuery holds the bindable query parameters for ListExpenses.
type ListExpensesQuery struct {
	pagination.PageRequest
	Location string `form:"location"`
	Status   string `form:"status" binding:"omitempty,doc_status"`
	Type     string `form:"type" binding:"omitempty,expense_type"`
	Category string `form:"category"`
}

// ExpenseHandler handles expense document requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpenses lists expense documents
// @Summary     List expense documents
// @Description Paginated list of expenses with optional filters
// @Tags        expenses
// @Produce     json
// @Param       start_date query string false "Filter from date (DD/MM/YYYY)"
// @Param       end_date   query string false "Filter to date (DD/MM/YYYY)"
// @Param       location   query string false "Location filter"
// @Param       status     query string false "Document status filter"
// @Param       type       query string false "Expense type: CAPEX, OPEX or COGS"
// @Param       category   query string false "Category name filter"
// @Param       page       query int    false "Page number" default(1)
// @Param       page_size  query int    false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.Expense] "Expense documents"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var query ListExpensesQuery
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

	resp, err := h.expenseService.ListExpenses(services.ExpenseFilter{
		FromDate: fromDate,
		ToDate:   toDate,
		Location: query.Location,
		Status:   query.Status,
		Type:     query.Type,
		Category: query.Category,
	}, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetExpense retrieves a single expense document
// @Summary     Get an expense document
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense document ID"
// @Success     200 {object} models.Expense "Expense document"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	doc, err := h.expenseService.GetExpenseByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
