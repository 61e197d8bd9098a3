// Package advice turns a matched service and the user's request into short
// expert guidance via a single generative call.
package advice

import (
	"context"
	"fmt"
	"log"

	"servicematch/internal/llm"
)

// Apology is returned whenever generation fails. Single attempt, no retry.
const Apology = "Please consult a certified professional for assistance."

type Generator struct {
	llm llm.TextClient
}

func NewGenerator(client llm.TextClient) *Generator {
	return &Generator{llm: client}
}

// Advise generates expert advice for the matched service. Failure degrades
// to the fixed apology string; this call never fails outward.
func (g *Generator) Advise(ctx context.Context, serviceName, query string) string {
	log.Printf("advice: generating expert advice for %q", serviceName)

	text, err := g.llm.GenerateText(ctx, advicePrompt(serviceName, query))
	if err != nil {
		log.Printf("advice: generation failed: %v", err)
		return Apology
	}
	return text
}

func advicePrompt(serviceName, query string) string {
	return fmt.Sprintf(`# ROLE
You are a senior %s expert. Speak like a friendly, helpful professional on a chat app - warm, direct, and non-robotic.

# TASK
Respond to: %s

# CONTENT RULES
1. START: Acknowledge the trouble with a quick, empathetic opening (e.g., "I know how annoying a leaky tap can be!").
2. THE CAUSE: Give ONE specific, likely reason in plain English.
3. THE CHECK: Suggest exactly ONE "eyes-only" check that requires zero tools or risk.
4. THE VENDOR VALUE: Briefly mention one risk of DIY (e.g., "Tinkering with this without the right sensors can actually blow the fuse").
5. BOOKING PUSH: Recommend 1-2 specific service names (e.g., 'AC Deep Clean') and a friendly nudge to book a verified vendor today for a longterm repair.

# STYLE
- Keep it under 100 words.
- Use "I" and "You."
- No bulleted lists or "As an AI..."
- No step-by-step repair guides.
`, serviceName, query)
}
