package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvrag/internal/cv"
	"cvrag/internal/domain"
	"cvrag/internal/embedding"
)

type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func (s *stubEmbedder) EmbedQuery(context.Context, string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []float32{1, 0}, nil
}

type stubIndex struct {
	results []domain.SearchResult
	err     error
	gotK    int
}

func (s *stubIndex) Search(_ context.Context, _ []float32, k int) ([]domain.SearchResult, error) {
	s.gotK = k
	return s.results, s.err
}

type stubGenerator struct {
	answer string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

const fixtureCV = `# Jane Doe

## Summary
Seasoned platform engineer.

## Professional Experience

### Platform Engineer, Acme Corp
Ran the clusters.

### SRE, Initech
Kept the pagers quiet.
`

func fixtureExtractor(t *testing.T) *cv.Extractor {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.md"), []byte(fixtureCV), 0o644))
	return cv.NewExtractor(dir)
}

func TestAnswerQuestionRetrievalPath(t *testing.T) {
	index := &stubIndex{results: []domain.SearchResult{
		{Document: domain.Document{Content: "Built Kubernetes platforms at Acme."}, Score: 0.9},
	}}
	gen := &stubGenerator{answer: "Grounded answer."}
	p := New(fixtureExtractor(t), &stubEmbedder{}, index, gen, 7)

	result := p.AnswerQuestion(context.Background(), "What cloud platforms have you used?")

	require.True(t, result.Success)
	assert.Equal(t, "Grounded answer.", result.Answer)
	assert.Empty(t, result.ErrorDetails)
	assert.Equal(t, 7, index.gotK)
	assert.Contains(t, gen.prompt, "Built Kubernetes platforms at Acme.")
	assert.Contains(t, gen.prompt, "What cloud platforms have you used?")
}

func TestAnswerQuestionFullCV(t *testing.T) {
	gen := &stubGenerator{}
	p := New(fixtureExtractor(t), &stubEmbedder{}, &stubIndex{}, gen, 7)

	result := p.AnswerQuestion(context.Background(), "Can I see your CV?")

	require.True(t, result.Success)
	assert.Equal(t, fixtureCV, result.Answer)
	assert.Empty(t, gen.prompt, "direct CV answers must not hit the model")
}

func TestAnswerQuestionSection(t *testing.T) {
	p := New(fixtureExtractor(t), &stubEmbedder{}, &stubIndex{}, &stubGenerator{}, 7)

	result := p.AnswerQuestion(context.Background(), "Give me a quick summary")

	require.True(t, result.Success)
	assert.Equal(t, "Seasoned platform engineer.", result.Answer)
}

func TestAnswerQuestionAllExperience(t *testing.T) {
	p := New(fixtureExtractor(t), &stubEmbedder{}, &stubIndex{}, &stubGenerator{}, 7)

	result := p.AnswerQuestion(context.Background(), "list all professional experience")

	require.True(t, result.Success)
	first := strings.Index(result.Answer, "### Platform Engineer, Acme Corp")
	second := strings.Index(result.Answer, "### SRE, Initech")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
}

func TestAnswerQuestionGenerationFailure(t *testing.T) {
	index := &stubIndex{results: []domain.SearchResult{{Document: domain.Document{Content: "ctx"}}}}
	gen := &stubGenerator{err: errors.New("model exploded: connection refused")}
	p := New(fixtureExtractor(t), &stubEmbedder{}, index, gen, 7)

	result := p.AnswerQuestion(context.Background(), "What do you know about Go?")

	require.False(t, result.Success)
	assert.Equal(t, genericErrorMessage, result.Answer)
	assert.Contains(t, result.ErrorDetails, "model exploded")
	assert.NotEqual(t, result.Answer, result.ErrorDetails)
}

func TestAnswerQuestionEmbeddingFailureGetsSpecificMessage(t *testing.T) {
	emb := &stubEmbedder{err: &embedding.Error{Err: errors.New("validation error on input")}}
	p := New(fixtureExtractor(t), emb, &stubIndex{}, &stubGenerator{}, 7)

	result := p.AnswerQuestion(context.Background(), "What do you know about Go?")

	require.False(t, result.Success)
	assert.Equal(t, embeddingErrorMessage, result.Answer)
	assert.Contains(t, result.ErrorDetails, "validation error")
}

func TestAnswerQuestionMissingCVFile(t *testing.T) {
	// Empty CV directory, so every direct CV route hits the named condition.
	p := New(cv.NewExtractor(t.TempDir()), &stubEmbedder{}, &stubIndex{}, &stubGenerator{}, 7)

	result := p.AnswerQuestion(context.Background(), "Can I see your CV?")

	require.False(t, result.Success)
	assert.Equal(t, cvNotFoundMessage, result.Answer)
	assert.Contains(t, result.ErrorDetails, "CV file not found")
	assert.NotEqual(t, result.Answer, result.ErrorDetails)
}

func TestAnswerQuestionEmptyRetrievalStillAnswers(t *testing.T) {
	gen := &stubGenerator{answer: "Refusal."}
	p := New(fixtureExtractor(t), &stubEmbedder{}, &stubIndex{}, gen, 7)

	result := p.AnswerQuestion(context.Background(), "Something entirely unrelated?")

	require.True(t, result.Success)
	assert.Contains(t, gen.prompt, "No relevant context found.")
}
