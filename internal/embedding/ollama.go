package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms/ollama"
)

// Error marks a failure on the embedding path. The pipeline recognizes it
// to pick a more specific user-facing message.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("embedding failed: %v", e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// OllamaClient embeds text with a remote Ollama model. Safe for concurrent
// use; it holds no mutable state.
type OllamaClient struct {
	llm *ollama.LLM
}

// NewOllama creates an embedding client for the given Ollama server and model.
func NewOllama(baseURL, model string) (*OllamaClient, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(baseURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama embedding client: %w", err)
	}
	return &OllamaClient{llm: llm}, nil
}

// EmbedDocuments embeds a batch of texts in one call. Every input is
// sanitized first; the remote API rejects malformed payloads outright.
func (c *OllamaClient) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	clean := make([]string, len(texts))
	for i, t := range texts {
		clean[i] = Sanitize(t)
	}
	vectors, err := c.llm.CreateEmbedding(ctx, clean)
	if err != nil {
		return nil, &Error{Err: err}
	}
	if len(vectors) != len(texts) {
		return nil, &Error{Err: fmt.Errorf("expected %d embeddings, got %d", len(texts), len(vectors))}
	}
	return vectors, nil
}

// EmbedQuery embeds a single query string.
func (c *OllamaClient) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.llm.CreateEmbedding(ctx, []string{Sanitize(text)})
	if err != nil {
		return nil, &Error{Err: err}
	}
	if len(vectors) == 0 {
		return nil, &Error{Err: fmt.Errorf("no embedding returned")}
	}
	return vectors[0], nil
}

// Sanitize normalizes text before it is sent to the embedding API: valid
// UTF-8, no NUL bytes, never empty. Applied to every input, composed in
// front of the remote call rather than baked into a client subtype.
func Sanitize(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, "\x00", "")
	if strings.TrimSpace(text) == "" {
		return " "
	}
	return text
}
