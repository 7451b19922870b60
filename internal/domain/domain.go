package domain

import "context"

// Metadata keys attached to every loaded document and propagated to chunks.
const (
	MetaSource   = "source"
	MetaCategory = "category"
	MetaFileType = "file_type"
	MetaPage     = "page"
	MetaHeader1  = "header1"
	MetaHeader2  = "header2"
	MetaHeader3  = "header3"
)

// Document is a unit of source text with provenance metadata. Chunking
// produces new Documents; the originals are discarded.
type Document struct {
	Content  string
	Metadata map[string]string
}

// CloneMetadata returns a copy of the document's metadata, never nil.
func (d Document) CloneMetadata() map[string]string {
	out := make(map[string]string, len(d.Metadata))
	for k, v := range d.Metadata {
		out[k] = v
	}
	return out
}

// SearchResult is a retrieved chunk with its similarity score.
type SearchResult struct {
	Document Document
	Score    float32
}

// QueryResult is the contract the pipeline returns to its caller.
type QueryResult struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Success      bool   `json:"success"`
	ErrorDetails string `json:"error_details,omitempty"`
}

// Embedder converts text into fixed-length vectors via a remote model.
// Safe for concurrent use.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Generator produces an answer from a fully assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Index is a read-only nearest-neighbor index over chunk embeddings.
// Results come back highest similarity first, at most k of them.
type Index interface {
	Search(ctx context.Context, queryVector []float32, k int) ([]SearchResult, error)
}
