package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airquote/internal/service"
)

// PreferenceHandler handles persisted setting endpoints.
type PreferenceHandler struct {
	preferenceService service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// All handles GET /api/v1/preferences
func (h *PreferenceHandler) All(c *gin.Context) {
	prefs, err := h.preferenceService.All(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, prefs)
}

// Get handles GET /api/v1/preferences/:key
func (h *PreferenceHandler) Get(c *gin.Context) {
	value, err := h.preferenceService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"key": c.Param("key"), "value": value})
}

// Set handles PUT /api/v1/preferences/:key
func (h *PreferenceHandler) Set(c *gin.Context) {
	var body struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	key := c.Param("key")
	if err := h.preferenceService.Set(c.Request.Context(), key, body.Value); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"key": key, "value": body.Value})
}
