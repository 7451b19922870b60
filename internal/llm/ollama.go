package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Ollama generates answers with a local Ollama model. Temperature is pinned
// to zero so answers stay factually consistent across identical questions.
type Ollama struct {
	llm *ollama.LLM
}

func NewOllama(baseURL, model string) (*Ollama, error) {
	client, err := ollama.New(
		ollama.WithServerURL(baseURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama generation client: %w", err)
	}
	return &Ollama{llm: client}, nil
}

// Generate runs a single completion call for the assembled prompt.
func (o *Ollama) Generate(ctx context.Context, promptText string) (string, error) {
	answer, err := llms.GenerateFromSinglePrompt(ctx, o.llm, promptText, llms.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}
	return answer, nil
}
