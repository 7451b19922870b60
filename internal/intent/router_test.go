package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		question string
		want     Intent
	}{
		{"Can I see your CV?", Intent{Kind: FullCV}},
		{"Please show me your full resume", Intent{Kind: FullCV}},
		{"Where can I download the curriculum vitae?", Intent{Kind: FullCV}},
		{"What are your core competencies?", Intent{Kind: Section, Section: "Core Competencies & Technical Skills"}},
		{"Give me a summary", Intent{Kind: Section, Section: "Summary"}},
		{"Any volunteering?", Intent{Kind: Section, Section: "Volunteering"}},
		{"Which languages do you speak?", Intent{Kind: Section, Section: "Languages"}},
		{"Tell me about your interests", Intent{Kind: Section, Section: "Interests"}},
		{"list all professional experience", Intent{Kind: Section, Section: "Professional Experience"}},
		{"What is your work history?", Intent{Kind: Section, Section: "Professional Experience"}},
		{"What cloud platforms have you used?", Intent{Kind: Retrieval}},
		{"How do you approach observability?", Intent{Kind: Retrieval}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.question), "question: %s", tt.question)
	}
}

func TestClassifyAccentedResume(t *testing.T) {
	assert.Equal(t, Intent{Kind: FullCV}, Classify("Can I see your résumé?"))
	assert.Equal(t, Intent{Kind: FullCV}, Classify("Résumé"))
	// Plural stays consistent with the unaccented \bresume\b rule.
	assert.Equal(t, Intent{Kind: Retrieval}, Classify("Do you review résumés for others?"))
}

func TestClassifyCVBeatsSectionKeyword(t *testing.T) {
	got := Classify("Show me the summary section of your cv")
	assert.Equal(t, Intent{Kind: FullCV}, got)
}

func TestClassifyMatchesWordBoundariesOnly(t *testing.T) {
	// "cv" inside another word must not trigger the full-CV route.
	got := Classify("Have you worked with opencv at all?")
	assert.Equal(t, Intent{Kind: Retrieval}, got)
}
