package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"

	"cvrag/internal/domain"
)

const collectionName = "profile"

// ErrIndexNotFound means the on-disk index is missing. This is a setup
// precondition, not a bad query: the ingest command has to run first.
var ErrIndexNotFound = errors.New("vector index not found, run the ingest command first")

// Store is a persistent nearest-neighbor index over chunk embeddings.
// Built once by the offline ingestion job, loaded read-only by the server.
// Precondition: the embedding model used for Load must match the one used
// for Build; mixing dimensionalities is undefined.
type Store struct {
	collection *chromem.Collection
}

// Build embeds all chunk texts in one batch call and persists a fresh index
// at path, fully overwriting any previous one. Fails loudly on zero chunks.
func Build(ctx context.Context, path string, chunks []domain.Document, embedder domain.Embedder) error {
	if len(chunks) == 0 {
		return errors.New("refusing to build a vector index from zero chunks")
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}
	vectors, err := embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed %d chunks: %w", len(chunks), err)
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to clear previous index at %s: %w", path, err)
	}
	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return fmt.Errorf("failed to create index at %s: %w", path, err)
	}
	collection, err := db.CreateCollection(collectionName, nil, queryEmbeddingFunc(embedder))
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	documents := make([]chromem.Document, len(chunks))
	for i, c := range chunks {
		documents[i] = chromem.Document{
			ID:        uuid.New().String(),
			Metadata:  c.Metadata,
			Embedding: vectors[i],
			Content:   c.Content,
		}
	}
	if err := collection.AddDocuments(ctx, documents, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add %d chunks to index: %w", len(documents), err)
	}
	log.Printf("INDEXER: Persisted %d chunks to %s", len(documents), path)
	return nil
}

// Load opens an existing index read-only. Returns ErrIndexNotFound if the
// path or the collection does not exist.
func Load(path string, embedder domain.Embedder) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w (looked in %s)", ErrIndexNotFound, path)
	}
	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open index at %s: %w", path, err)
	}
	collection := db.GetCollection(collectionName, queryEmbeddingFunc(embedder))
	if collection == nil {
		return nil, fmt.Errorf("%w (no %q collection in %s)", ErrIndexNotFound, collectionName, path)
	}
	log.Printf("INDEXER: Loaded index with %d chunks from %s", collection.Count(), path)
	return &Store{collection: collection}, nil
}

// Search returns up to k chunks, highest similarity first. Asking for more
// results than the index holds returns everything it has.
func (s *Store) Search(ctx context.Context, queryVector []float32, k int) ([]domain.SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("invalid k: %d", k)
	}
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}
	matches, err := s.collection.QueryEmbedding(ctx, queryVector, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}
	results := make([]domain.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, domain.SearchResult{
			Document: domain.Document{Content: m.Content, Metadata: m.Metadata},
			Score:    m.Similarity,
		})
	}
	return results, nil
}

// Count reports how many chunks the index holds.
func (s *Store) Count() int { return s.collection.Count() }

func queryEmbeddingFunc(embedder domain.Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}
}
