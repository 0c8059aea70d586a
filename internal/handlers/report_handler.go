package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerdash/internal/services"
)

// ReportHandler handles report generation requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetPnL generates a Profit & Loss report
// @Summary     Profit & Loss report
// @Description Generate a P&L report over a date range at yearly or monthly granularity
// @Tags        reports
// @Produce     json
// @Param       start_date query string true  "Start date (DD/MM/YYYY)"
// @Param       end_date   query string true  "End date (DD/MM/YYYY)"
// @Param       format     query string false "Report format: yearly or monthly" default(yearly)
// @Param       location   query string false "Location filter; empty or All for no filter"
// @Success     200 {object} report.PnLDocument "P&L report"
// @Failure     400 {object} ErrorResponse "Validation error"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/pnl [get]
func (h *ReportHandler) GetPnL(c *gin.Context) {
	doc, err := h.reportService.GetPnLReport(services.ReportRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Format:    c.Query("format"),
		Location:  c.Query("location"),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetCashflow generates a cashflow report
// @Summary     Cashflow report
// @Description Generate a cashflow report with opening/closing balance carry-forward
// @Tags        reports
// @Produce     json
// @Param       start_date      query string  true  "Start date (DD/MM/YYYY)"
// @Param       end_date        query string  true  "End date (DD/MM/YYYY)"
// @Param       format          query string  false "Report format: yearly or monthly" default(yearly)
// @Param       location        query string  false "Location filter; empty or All for no filter"
// @Param       opening_balance query number  false "Opening balance for the first period" default(0)
// @Success     200 {object} report.CashflowDocument "Cashflow report"
// @Failure     400 {object} ErrorResponse "Validation error"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/cashflow [get]
func (h *ReportHandler) GetCashflow(c *gin.Context) {
	openingBalance, err := parseOptionalFloat(c, "opening_balance", 0)
	if err != nil {
		respondWithError(c, err)
		return
	}

	doc, err := h.reportService.GetCashflowReport(services.ReportRequest{
		StartDate:      c.Query("start_date"),
		EndDate:        c.Query("end_date"),
		Format:         c.Query("format"),
		Location:       c.Query("location"),
		OpeningBalance: openingBalance,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
