package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/services"
	"github.com/mediavault/backend/internal/types"
)

type CollectionHandler struct {
	log               *logger.Logger
	collectionService services.CollectionService
	tagService        services.TagService
}

func NewCollectionHandler(log *logger.Logger, collectionService services.CollectionService, tagService services.TagService) *CollectionHandler {
	return &CollectionHandler{
		log:               log.With("handler", "CollectionHandler"),
		collectionService: collectionService,
		tagService:        tagService,
	}
}

// POST /api/collections
func (ch *CollectionHandler) CreateCollection(c *gin.Context) {
	var req types.CollectionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collection, err := ch.collectionService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, collection)
}

// GET /api/collections?user_id=
func (ch *CollectionHandler) ListCollections(c *gin.Context) {
	collections, err := ch.collectionService.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, collections)
}

// POST /api/tags
func (ch *CollectionHandler) CreateTag(c *gin.Context) {
	var req types.TagCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tag, err := ch.tagService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// GET /api/tags?user_id=
func (ch *CollectionHandler) ListTags(c *gin.Context) {
	tags, err := ch.tagService.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}
