package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini generates answers with the Gemini API, as an alternative to a
// local Ollama model. Selected with GENERATION_BACKEND=gemini.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate runs a single completion call at temperature zero.
func (g *Gemini) Generate(ctx context.Context, promptText string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(promptText), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	answer := resp.Text()
	if answer == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return answer, nil
}
