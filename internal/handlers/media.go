package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/services"
	"github.com/mediavault/backend/internal/types"
)

type MediaHandler struct {
	log          *logger.Logger
	mediaService services.MediaService
}

func NewMediaHandler(log *logger.Logger, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		log:          log.With("handler", "MediaHandler"),
		mediaService: mediaService,
	}
}

// POST /api/media
func (mh *MediaHandler) Create(c *gin.Context) {
	var req types.MediaItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := mh.mediaService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GET /api/media?user_id=
func (mh *MediaHandler) List(c *gin.Context) {
	items, err := mh.mediaService.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/media/:id
func (mh *MediaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media item id"})
		return
	}
	item, err := mh.mediaService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "media item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /api/media/:id
func (mh *MediaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media item id"})
		return
	}
	var req types.MediaItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := mh.mediaService.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "media item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/media/:id
func (mh *MediaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media item id"})
		return
	}
	deleted, err := mh.mediaService.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "media item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GET /api/media/search?q=&user_id=
func (mh *MediaHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	items, err := mh.mediaService.Search(c.Request.Context(), query, c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
