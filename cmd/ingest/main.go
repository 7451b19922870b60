package main

import (
	"context"
	"log"

	"cvrag/internal/chunker"
	"cvrag/internal/config"
	"cvrag/internal/corpus"
	"cvrag/internal/embedding"
	"cvrag/internal/pipeline"
)

func main() {
	cfg := config.Load()

	embedder, err := embedding.NewOllama(cfg.OllamaBaseURL, cfg.EmbeddingModel)
	if err != nil {
		log.Fatalf("FATAL: Failed to create embedding client: %v", err)
	}

	loader := corpus.NewLoader(cfg.CVDir, cfg.SkillsDir)
	splitter := chunker.New(cfg.ChunkSize, cfg.ChunkOverlap)

	if err := pipeline.Ingest(context.Background(), loader, splitter, embedder, cfg.IndexDir); err != nil {
		log.Fatalf("FATAL: Ingestion failed: %v", err)
	}
}
