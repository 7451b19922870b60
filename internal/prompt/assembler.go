package prompt

import (
	"strings"

	"cvrag/internal/domain"
)

// EmptyContext is substituted when retrieval returned nothing. The model
// must never receive a silently empty context.
const EmptyContext = "No relevant context found."

// Refusal is the fixed string the model is instructed to emit when the
// answer is not derivable from the context.
const Refusal = "I don't have enough information about that in the CV or skill descriptions."

const template = `You are a helpful AI assistant answering questions about the candidate's professional experience, skills, and technical knowledge. Format your responses using Markdown for better readability.

When answering:
1. Answer only from the context below; never state facts that are not present in it
2. Keep proper nouns, dates, company names, and job titles exactly as they appear in the context
3. Combine information from multiple context fragments when they are relevant to the question
4. Prioritize CV sections for work history and core skills, and skills documentation for technical detail

Format your responses following these guidelines:
* Use headings for main topics and subtopics
* Use bullet points for lists and ` + "`code`" + ` for technical terms, commands, or tools
* Use **bold** for companies and job titles
* Use > for key achievements or responsibilities

If the information asked for is not in the context, respond with:
> "` + Refusal + `"

End every answer with a short one-line tip suggesting something else the visitor could ask about.

Context:
{context}

Question: {question}`

// Assemble formats the retrieved chunks and the question into the grounding
// prompt. Chunk texts are joined with a blank line between them.
func Assemble(results []domain.SearchResult, question string) string {
	context := EmptyContext
	if len(results) > 0 {
		parts := make([]string, len(results))
		for i, r := range results {
			parts[i] = r.Document.Content
		}
		context = strings.Join(parts, "\n\n")
	}
	replacer := strings.NewReplacer("{context}", context, "{question}", question)
	return replacer.Replace(template)
}
