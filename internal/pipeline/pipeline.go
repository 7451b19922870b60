package pipeline

import (
	"context"
	"errors"
	"log"

	"cvrag/internal/cv"
	"cvrag/internal/domain"
	"cvrag/internal/embedding"
	"cvrag/internal/intent"
	"cvrag/internal/prompt"
)

// User-safe fallback answers. Raw error text stays in ErrorDetails and is
// never shown as the primary answer.
const (
	genericErrorMessage   = "I encountered an issue processing your question. This could be due to a temporary problem with the language model or the retrieval system."
	embeddingErrorMessage = "There was an issue with the underlying embedding model. Please try again in a moment."
	cvNotFoundMessage     = "The CV file could not be found. Direct CV requests are unavailable right now, but you can still ask about specific skills and experience."
)

const experienceSection = "Professional Experience"

// Pipeline composes intent routing, CV extraction, retrieval, and
// generation into a single synchronous question-answering call. It holds no
// per-request state; all dependencies are read-only or safe for concurrent
// use.
type Pipeline struct {
	extractor *cv.Extractor
	embedder  domain.Embedder
	index     domain.Index
	generator domain.Generator
	topK      int
}

func New(extractor *cv.Extractor, embedder domain.Embedder, index domain.Index, generator domain.Generator, topK int) *Pipeline {
	if topK <= 0 {
		topK = 7
	}
	return &Pipeline{
		extractor: extractor,
		embedder:  embedder,
		index:     index,
		generator: generator,
		topK:      topK,
	}
}

// AnswerQuestion is the sole entry point for adapters: question in,
// structured result out. Every failure anywhere in the chain is caught here
// exactly once and normalized to a user-safe answer.
func (p *Pipeline) AnswerQuestion(ctx context.Context, question string) domain.QueryResult {
	log.Printf("PIPELINE: Processing question: %s", question)

	answer, err := p.answer(ctx, question)
	if err != nil {
		log.Printf("PIPELINE: Error answering question: %v", err)
		return domain.QueryResult{
			Question:     question,
			Answer:       fallbackMessage(err),
			Success:      false,
			ErrorDetails: err.Error(),
		}
	}
	return domain.QueryResult{Question: question, Answer: answer, Success: true}
}

func (p *Pipeline) answer(ctx context.Context, question string) (string, error) {
	switch routed := intent.Classify(question); routed.Kind {
	case intent.FullCV:
		log.Println("PIPELINE: Routed to full CV.")
		return p.extractor.FullText()
	case intent.Section:
		log.Printf("PIPELINE: Routed to CV section %q.", routed.Section)
		if routed.Section == experienceSection {
			return p.extractor.ExperienceEntries()
		}
		return p.extractor.Section(routed.Section)
	default:
		return p.retrieveAndGenerate(ctx, question)
	}
}

func (p *Pipeline) retrieveAndGenerate(ctx context.Context, question string) (string, error) {
	queryVector, err := p.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return "", err
	}
	results, err := p.index.Search(ctx, queryVector, p.topK)
	if err != nil {
		return "", err
	}
	log.Printf("PIPELINE: Retrieved %d chunks.", len(results))
	return p.generator.Generate(ctx, prompt.Assemble(results, question))
}

// fallbackMessage picks the user-safe answer for a failure. A missing CV
// file and embedding failures each get their own non-technical message.
func fallbackMessage(err error) string {
	if errors.Is(err, cv.ErrCVFileNotFound) {
		return cvNotFoundMessage
	}
	var embErr *embedding.Error
	if errors.As(err, &embErr) {
		return embeddingErrorMessage
	}
	return genericErrorMessage
}
