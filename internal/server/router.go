package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mediavault/backend/internal/handlers"
)

type RouterConfig struct {
	AllowOrigins      []string
	SystemHandler     *handlers.SystemHandler
	MediaHandler      *handlers.MediaHandler
	CollectionHandler *handlers.CollectionHandler
	AIHandler         *handlers.AIHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/", handlers.Root)
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/media-types", cfg.SystemHandler.GetMediaTypes)
	router.GET("/media-statuses", cfg.SystemHandler.GetMediaStatuses)
	router.GET("/db-test", cfg.SystemHandler.DBTest)

	api := router.Group("/api")
	{
		media := api.Group("/media")
		{
			media.POST("", cfg.MediaHandler.Create)
			media.GET("", cfg.MediaHandler.List)
			media.GET("/search", cfg.MediaHandler.Search)
			media.GET("/:id", cfg.MediaHandler.Get)
			media.PUT("/:id", cfg.MediaHandler.Update)
			media.DELETE("/:id", cfg.MediaHandler.Delete)
		}

		api.POST("/collections", cfg.CollectionHandler.CreateCollection)
		api.GET("/collections", cfg.CollectionHandler.ListCollections)
		api.POST("/tags", cfg.CollectionHandler.CreateTag)
		api.GET("/tags", cfg.CollectionHandler.ListTags)

		ai := api.Group("/ai")
		{
			ai.POST("/categorize", cfg.AIHandler.Categorize)
			ai.POST("/recommendations", cfg.AIHandler.Recommendations)
			ai.POST("/insights", cfg.AIHandler.Insights)
			ai.POST("/search", cfg.AIHandler.Search)
		}
	}

	return router
}
