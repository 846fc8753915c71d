package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mediavault/backend/internal/db"
	"github.com/mediavault/backend/internal/handlers"
	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/repos"
	"github.com/mediavault/backend/internal/server"
	"github.com/mediavault/backend/internal/services"
	"github.com/mediavault/backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	port := utils.GetEnv("PORT", "8000", log)
	corsOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	mediaItemRepo := repos.NewMediaItemRepo(thePG, log)
	collectionRepo := repos.NewCollectionRepo(thePG, log)
	tagRepo := repos.NewTagRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}
	intelligenceService := services.NewIntelligenceService(log, openaiClient)
	mediaService := services.NewMediaService(thePG, log, mediaItemRepo)
	collectionService := services.NewCollectionService(thePG, log, collectionRepo)
	tagService := services.NewTagService(thePG, log, tagRepo)

	// Handlers
	log.Info("Setting up handlers...")
	systemHandler := handlers.NewSystemHandler(log, mediaService)
	mediaHandler := handlers.NewMediaHandler(log, mediaService)
	collectionHandler := handlers.NewCollectionHandler(log, collectionService, tagService)
	aiHandler := handlers.NewAIHandler(log, intelligenceService, mediaService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AllowOrigins:      strings.Split(corsOrigins, ","),
		SystemHandler:     systemHandler,
		MediaHandler:      mediaHandler,
		CollectionHandler: collectionHandler,
		AIHandler:         aiHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
