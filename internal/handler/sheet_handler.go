package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airquote/internal/service"
)

// SheetHandler handles remote spreadsheet sync endpoints.
type SheetHandler struct {
	syncService service.SheetSyncService
}

// NewSheetHandler creates a new SheetHandler.
func NewSheetHandler(syncService service.SheetSyncService) *SheetHandler {
	return &SheetHandler{syncService: syncService}
}

// Sync handles POST /api/v1/sheet/sync. With a URL in the body that URL is
// synced; with an empty body the stored preference URL is used.
func (h *SheetHandler) Sync(c *gin.Context) {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && c.Request.ContentLength > 0 {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var (
		result *service.SyncResult
		err    error
	)
	if body.URL != "" {
		result, err = h.syncService.Sync(c.Request.Context(), body.URL)
	} else {
		result, err = h.syncService.SyncFromPreference(c.Request.Context())
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
