package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerdash/internal/services"
)

// SyncHandler handles spreadsheet sync requests.
type SyncHandler struct {
	syncService services.SyncServicer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService services.SyncServicer) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Sync runs the spreadsheet sync pipeline
// @Summary     Sync from spreadsheet
// @Description Fetch the income and expense sheets and upsert rows by row_id
// @Tags        sync
// @Produce     json
// @Security    ApiKeyAuth
// @Param       X-API-Key header string true "Pipeline API key"
// @Success     200 {object} services.SyncSummary "Sync summary"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     502 {object} ErrorResponse "Spreadsheet service error"
// @Router      /sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	summary, err := h.syncService.Run(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
