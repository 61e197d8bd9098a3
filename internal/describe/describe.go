// Package describe generates seller-facing marketing copy for a service
// listing. It shares nothing with the classifier beyond the generative
// client.
package describe

import (
	"context"
	"fmt"
	"log"

	"servicematch/internal/llm"
)

// Apology is returned whenever generation fails. Single attempt, no retry.
const Apology = "Could not generate a description. Please write one manually."

type Generator struct {
	llm llm.TextClient
}

func NewGenerator(client llm.TextClient) *Generator {
	return &Generator{llm: client}
}

// Describe generates a short marketing description for the given service.
// Failure degrades to the fixed apology string; never fails outward.
func (g *Generator) Describe(ctx context.Context, serviceTitle, categoryName string) string {
	log.Printf("describe: generating description for %q", serviceTitle)

	text, err := g.llm.GenerateText(ctx, descriptionPrompt(serviceTitle, categoryName))
	if err != nil {
		log.Printf("describe: generation failed: %v", err)
		return Apology
	}
	return text
}

func descriptionPrompt(serviceTitle, categoryName string) string {
	return fmt.Sprintf(`As a marketing expert, write a compelling and professional service description for a local service provider.

Service Name: "%s"
Category: "%s"

The description should be concise (2-3 sentences), highlight the key benefits for the customer, and encourage them to book the service. It should be ready to be displayed on a service booking website.
`, serviceTitle, categoryName)
}
