package cv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrCVFileNotFound means no Markdown CV exists in the CV directory.
var ErrCVFileNotFound = errors.New("CV file not found")

const experienceSection = "Professional Experience"

var experienceEntryRe = regexp.MustCompile(`(?m)^### `)

// Extractor answers direct CV requests straight from the Markdown source,
// without going through the vector index. The file is parsed on demand so
// edits to the CV show up without a restart.
type Extractor struct {
	dir string
}

func NewExtractor(dir string) *Extractor {
	return &Extractor{dir: dir}
}

// FullText returns the entire CV source unmodified.
func (e *Extractor) FullText() (string, error) {
	return e.read()
}

// Section returns the body of the `## name` section, up to the next top- or
// second-level header. A missing section is a normal answer, not an error.
func (e *Extractor) Section(name string) (string, error) {
	text, err := e.read()
	if err != nil {
		return "", err
	}
	body, ok := findSection(text, name)
	if !ok {
		return fmt.Sprintf("No section '%s' found in the CV.", name), nil
	}
	return strings.TrimSpace(body), nil
}

// ExperienceEntries returns every entry of the experience section, each
// starting with its own `###` header, in document order. A section without
// subheaders comes back verbatim so partial CVs still produce output.
func (e *Extractor) ExperienceEntries() (string, error) {
	text, err := e.read()
	if err != nil {
		return "", err
	}
	body, ok := findSection(text, experienceSection)
	if !ok {
		return fmt.Sprintf("No section '%s' found in the CV.", experienceSection), nil
	}

	starts := experienceEntryRe.FindAllStringIndex(body, -1)
	if len(starts) == 0 {
		return strings.TrimSpace(body), nil
	}
	entries := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		entries = append(entries, strings.TrimSpace(body[loc[0]:end]))
	}
	return strings.Join(entries, "\n\n"), nil
}

// read locates and loads the canonical Markdown CV: the first .md file in
// the CV directory.
func (e *Extractor) read() (string, error) {
	matches, err := filepath.Glob(filepath.Join(e.dir, "*.md"))
	if err != nil {
		return "", fmt.Errorf("failed to scan CV directory %s: %w", e.dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w in %s", ErrCVFileNotFound, e.dir)
	}
	content, err := os.ReadFile(matches[0])
	if err != nil {
		return "", fmt.Errorf("failed to read CV file %s: %w", matches[0], err)
	}
	return string(content), nil
}

// findSection returns the text between `## name` and the next #/## header,
// or false if the section is absent.
func findSection(text, name string) (string, bool) {
	headerRe := regexp.MustCompile(`(?mi)^##\s+` + regexp.QuoteMeta(name) + `\s*$`)
	loc := headerRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	body := text[loc[1]:]
	if next := regexp.MustCompile(`(?m)^##?\s`).FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}
	return body, true
}
