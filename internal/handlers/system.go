package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/services"
	"github.com/mediavault/backend/internal/types"
)

type SystemHandler struct {
	log          *logger.Logger
	mediaService services.MediaService
}

func NewSystemHandler(log *logger.Logger, mediaService services.MediaService) *SystemHandler {
	return &SystemHandler{
		log:          log.With("handler", "SystemHandler"),
		mediaService: mediaService,
	}
}

// GET /media-types
func (sh *SystemHandler) GetMediaTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"media_types": types.AllMediaTypes()})
}

// GET /media-statuses
func (sh *SystemHandler) GetMediaStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": types.AllMediaStatuses()})
}

// GET /db-test
// Connection probe: item count plus a few sample rows.
func (sh *SystemHandler) DBTest(c *gin.Context) {
	items, err := sh.mediaService.List(c.Request.Context(), "")
	if err != nil {
		sh.log.Error("Database probe failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	sample := items
	if len(sample) > 3 {
		sample = sample[:3]
	}
	c.JSON(http.StatusOK, gin.H{
		"status":            "database connected",
		"media_items_count": len(items),
		"sample_items":      sample,
	})
}
