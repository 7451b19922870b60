package chunker

import (
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"cvrag/internal/domain"
)

// Separator priority for the recursive split: top-level header, second-level
// header, paragraph break, line break, word break, character break.
var separators = []string{"\n# ", "\n## ", "\n\n", "\n", " ", ""}

// Chunker splits loaded documents into bounded, overlapping chunks while
// propagating the parent document's metadata.
type Chunker struct {
	chunkSize    int
	chunkOverlap int
	splitter     textsplitter.RecursiveCharacter
}

func New(chunkSize, chunkOverlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if chunkOverlap < 0 {
		chunkOverlap = 50
	}
	// An overlap at or above the chunk size breaks the splitter's merge step.
	if chunkOverlap >= chunkSize {
		clamped := chunkSize / 10
		log.Printf("CHUNKER: Overlap %d must be smaller than chunk size %d, using %d", chunkOverlap, chunkSize, clamped)
		chunkOverlap = clamped
	}
	return &Chunker{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(chunkOverlap),
			textsplitter.WithSeparators(separators),
		),
	}
}

// Split chunks every document. Markdown documents are pre-split by header
// structure first, so each chunk carries the header path it fell under.
func (c *Chunker) Split(documents []domain.Document) ([]domain.Document, error) {
	var chunks []domain.Document
	for _, doc := range documents {
		if doc.Metadata[domain.MetaFileType] == "markdown" {
			sections := splitByHeaders(doc.Content)
			for _, sec := range sections {
				secChunks, err := c.splitOne(domain.Document{Content: sec.text, Metadata: doc.Metadata}, sec.headers)
				if err != nil {
					return nil, err
				}
				chunks = append(chunks, secChunks...)
			}
			continue
		}
		docChunks, err := c.splitOne(doc, nil)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, docChunks...)
	}
	return chunks, nil
}

func (c *Chunker) splitOne(doc domain.Document, headers map[string]string) ([]domain.Document, error) {
	parts, err := c.splitter.SplitText(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to split document %s: %w", doc.Metadata[domain.MetaSource], err)
	}
	chunks := make([]domain.Document, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		meta := doc.CloneMetadata()
		for k, v := range headers {
			meta[k] = v
		}
		chunks = append(chunks, domain.Document{Content: part, Metadata: meta})
	}
	return chunks, nil
}

// section is a run of Markdown under a fixed header path.
type section struct {
	text    string
	headers map[string]string
}

// splitByHeaders groups Markdown lines by the #/##/### headers above them.
// Header lines stay in the section text; the header path goes to metadata.
// A document with no headers comes back as a single section.
func splitByHeaders(content string) []section {
	lines := strings.Split(content, "\n")
	var sections []section
	var current []string
	headers := map[string]string{}

	flush := func() {
		text := strings.TrimRight(strings.Join(current, "\n"), "\n")
		if strings.TrimSpace(text) != "" {
			copied := make(map[string]string, len(headers))
			for k, v := range headers {
				copied[k] = v
			}
			sections = append(sections, section{text: text, headers: copied})
		}
		current = nil
	}

	for _, line := range lines {
		level, title := headerLine(line)
		if level > 0 {
			flush()
			switch level {
			case 1:
				headers = map[string]string{domain.MetaHeader1: title}
			case 2:
				headers = subPath(headers, domain.MetaHeader1)
				headers[domain.MetaHeader2] = title
			default:
				headers = subPath(headers, domain.MetaHeader1, domain.MetaHeader2)
				headers[domain.MetaHeader3] = title
			}
		}
		current = append(current, line)
	}
	flush()
	return sections
}

// headerLine reports the header level (1-3) and title, or 0 for a plain line.
func headerLine(line string) (int, string) {
	trimmed := strings.TrimLeft(line, "#")
	level := len(line) - len(trimmed)
	if level < 1 || level > 3 || !strings.HasPrefix(trimmed, " ") {
		return 0, ""
	}
	return level, strings.TrimSpace(trimmed)
}

// subPath keeps only the named keys from the current header path.
func subPath(headers map[string]string, keep ...string) map[string]string {
	out := make(map[string]string, len(keep)+1)
	for _, k := range keep {
		if v, ok := headers[k]; ok {
			out[k] = v
		}
	}
	return out
}
