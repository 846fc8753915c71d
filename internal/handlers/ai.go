package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/services"
	"github.com/mediavault/backend/internal/types"
)

// AIHandler exposes the intelligence operations. Model and input failures are
// domain results, not transport errors: the orchestrator's success=false
// payload goes out with HTTP 200 and must reach the front end unchanged.
type AIHandler struct {
	log          *logger.Logger
	intelligence services.IntelligenceService
	mediaService services.MediaService
}

func NewAIHandler(log *logger.Logger, intelligence services.IntelligenceService, mediaService services.MediaService) *AIHandler {
	return &AIHandler{
		log:          log.With("handler", "AIHandler"),
		intelligence: intelligence,
		mediaService: mediaService,
	}
}

type CategorizeRequest struct {
	Title       string          `json:"title" binding:"required"`
	Creator     string          `json:"creator" binding:"required"`
	MediaType   types.MediaType `json:"media_type" binding:"required"`
	Description string          `json:"description"`
}

// POST /api/ai/categorize
func (ah *AIHandler) Categorize(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.MediaType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media_type: " + string(req.MediaType)})
		return
	}
	result := ah.intelligence.SmartCategorize(c.Request.Context(), req.Title, req.Creator, req.MediaType, req.Description)
	c.JSON(http.StatusOK, result)
}

type RecommendationsRequest struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit"`
}

// POST /api/ai/recommendations
func (ah *AIHandler) Recommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := ah.mediaService.List(c.Request.Context(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	result := ah.intelligence.GetRecommendations(c.Request.Context(), items, req.Limit)
	c.JSON(http.StatusOK, result)
}

type InsightsRequest struct {
	UserID string `json:"user_id"`
}

// POST /api/ai/insights
func (ah *AIHandler) Insights(c *gin.Context) {
	var req InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := ah.mediaService.List(c.Request.Context(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	result := ah.intelligence.GenerateInsights(c.Request.Context(), items)
	c.JSON(http.StatusOK, result)
}

type SearchRequest struct {
	Query  string `json:"query" binding:"required"`
	UserID string `json:"user_id"`
}

// POST /api/ai/search
func (ah *AIHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := ah.mediaService.List(c.Request.Context(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	result := ah.intelligence.SmartSearch(c.Request.Context(), req.Query, items)
	c.JSON(http.StatusOK, result)
}
