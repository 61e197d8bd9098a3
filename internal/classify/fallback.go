package classify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"servicematch/internal/llm"
	"servicematch/internal/taxonomy"
)

// fallbackConfidence is a fixed acceptance confidence, not a calibrated
// probability: it signals "the fallback decided", nothing more.
const fallbackConfidence = 99.0

// Fallback classifies with the generative model against a closed list of
// display names. It runs only when the primary classifier yields no label.
type Fallback struct {
	llm llm.TextClient
}

func NewFallback(client llm.TextClient) *Fallback {
	return &Fallback{llm: client}
}

// Classify prompts the model with the category display names and matches
// its one-line answer exactly. On match the result carries the matched
// category's hypothesis text, keeping both classifier paths homogeneous for
// reconciliation, plus the category itself. No match or any generation
// failure yields the canonical unknown result. Never returns an error.
func (f *Fallback) Classify(ctx context.Context, query string, categories []taxonomy.Category) Result {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.DisplayName
	}
	log.Printf("classify: generative fallback over categories %v", names)

	answer, err := f.llm.GenerateText(ctx, fallbackPrompt(query, names))
	if err != nil {
		log.Printf("classify: fallback generation failed: %v", err)
		return Unknown()
	}

	answer = strings.TrimSpace(answer)
	log.Printf("classify: fallback answered %q", answer)
	for i := range categories {
		if categories[i].DisplayName == answer {
			return Result{
				Label:      categories[i].Hypothesis,
				Confidence: fallbackConfidence,
				Category:   &categories[i],
				Source:     SourceFallback,
			}
		}
	}
	log.Printf("classify: fallback answer %q is not in the category list", answer)
	return Unknown()
}

func fallbackPrompt(query string, names []string) string {
	return fmt.Sprintf(`Analyze the following user request and classify it into ONE of the following service categories.
Respond with ONLY the category name that is the best fit. If no category is a good fit, respond with "General Home Maintenance".

# Categories:
%s

# User Request:
"%s"

# Your Answer (one category name only):
`, strings.Join(names, ", "), query)
}
