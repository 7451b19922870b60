package intent

import (
	"regexp"
	"strings"
)

// Kind selects which code path answers a question.
type Kind int

const (
	// Retrieval is the default path through the vector index.
	Retrieval Kind = iota
	// FullCV means the visitor asked for the CV itself.
	FullCV
	// Section means the visitor asked for a named CV section.
	Section
)

// Intent is the classification of an incoming question.
type Intent struct {
	Kind    Kind
	Section string
}

// CV-referencing patterns are matched on word boundaries, not substrings,
// so questions about e.g. "cvs pharmacy" careers do not hijack the route.
var fullCVPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bcv\b`),
	regexp.MustCompile(`\bcurriculum\s+vitae\b`),
	regexp.MustCompile(`\bresume\b`),
	// \b is ASCII-only and never matches around the accented ends, so the
	// boundaries are spelled out as non-letters.
	regexp.MustCompile(`(?:^|[^\p{L}])résumé(?:[^\p{L}]|$)`),
}

// sectionRule maps a question keyword to the canonical CV section header.
type sectionRule struct {
	pattern *regexp.Regexp
	section string
}

var sectionRules = []sectionRule{
	{regexp.MustCompile(`\bcore\s+competencies\b`), "Core Competencies & Technical Skills"},
	{regexp.MustCompile(`\bsummary\b`), "Summary"},
	{regexp.MustCompile(`\bvolunteering\b`), "Volunteering"},
	{regexp.MustCompile(`\blanguages\b`), "Languages"},
	{regexp.MustCompile(`\binterests\b`), "Interests"},
	{regexp.MustCompile(`\bprofessional\s+experience\b`), "Professional Experience"},
	{regexp.MustCompile(`\bwork\s+(experience|history)\b`), "Professional Experience"},
	{regexp.MustCompile(`\b(all|entire)\s+(your\s+)?experience\b`), "Professional Experience"},
}

// Classify routes a question with one unified rule set. CV/resume requests
// win over an embedded section keyword; everything else falls through to
// semantic retrieval.
func Classify(question string) Intent {
	q := strings.ToLower(question)
	for _, p := range fullCVPatterns {
		if p.MatchString(q) {
			return Intent{Kind: FullCV}
		}
	}
	for _, rule := range sectionRules {
		if rule.pattern.MatchString(q) {
			return Intent{Kind: Section, Section: rule.section}
		}
	}
	return Intent{Kind: Retrieval}
}
