package pipeline

import (
	"context"
	"log"

	"cvrag/internal/chunker"
	"cvrag/internal/corpus"
	"cvrag/internal/domain"
	"cvrag/internal/vectorstore"
)

// Ingest runs the offline build: Load -> Chunk -> Embed -> persist.
// Idempotent; re-running fully overwrites the previous index.
func Ingest(ctx context.Context, loader *corpus.Loader, splitter *chunker.Chunker, embedder domain.Embedder, indexDir string) error {
	log.Println("INDEXER: Starting document ingestion.")

	documents, err := loader.Load()
	if err != nil {
		return err
	}
	log.Printf("INDEXER: Loaded %d documents.", len(documents))

	chunks, err := splitter.Split(documents)
	if err != nil {
		return err
	}
	log.Printf("INDEXER: Split into %d chunks.", len(chunks))

	if err := vectorstore.Build(ctx, indexDir, chunks, embedder); err != nil {
		return err
	}
	log.Printf("INDEXER: Ingestion complete, index saved to %s.", indexDir)
	return nil
}
