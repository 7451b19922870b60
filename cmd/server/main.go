package main

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"cvrag/controller"
	"cvrag/internal/config"
	"cvrag/internal/cv"
	"cvrag/internal/domain"
	"cvrag/internal/embedding"
	"cvrag/internal/llm"
	"cvrag/internal/pipeline"
	"cvrag/internal/vectorstore"
)

func main() {
	cfg := config.Load()

	embedder, err := embedding.NewOllama(cfg.OllamaBaseURL, cfg.EmbeddingModel)
	if err != nil {
		log.Fatalf("FATAL: Failed to create embedding client: %v", err)
	}

	index, err := vectorstore.Load(cfg.IndexDir, embedder)
	if err != nil {
		if errors.Is(err, vectorstore.ErrIndexNotFound) {
			log.Fatalf("FATAL: %v. Run `ingest` before starting the server.", err)
		}
		log.Fatalf("FATAL: Failed to load vector index: %v", err)
	}

	generator, err := newGenerator(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to create generation client: %v", err)
	}

	extractor := cv.NewExtractor(cfg.CVDir)
	qa := pipeline.New(extractor, embedder, index, generator, cfg.TopK)
	queryController := controller.NewQueryController(qa)

	router := gin.Default()
	router.Use(corsMiddleware())
	router.GET("/health", queryController.Health)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/query", queryController.Query)
	}

	log.Printf("SERVER: Starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("FATAL: Failed to start server: %v", err)
	}
}

func newGenerator(cfg *config.Config) (domain.Generator, error) {
	switch cfg.GenerationBackend {
	case "gemini":
		return llm.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return llm.NewOllama(cfg.OllamaBaseURL, cfg.GenerationModel)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
