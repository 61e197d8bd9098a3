package classify

import (
	"context"
	"log"

	"servicematch/internal/taxonomy"
)

// Primary is the cheap first-stage classifier. *ZeroShot implements it.
type Primary interface {
	Classify(ctx context.Context, query string, labels []string) Result
}

// FallbackClassifier is the second-stage classifier. *Fallback implements it.
type FallbackClassifier interface {
	Classify(ctx context.Context, query string, categories []taxonomy.Category) Result
}

// Orchestrator owns the confidence-gated sequencing of the two classifiers
// and the reconciliation of raw labels back to categories.
type Orchestrator struct {
	primary  Primary
	fallback FallbackClassifier
}

func NewOrchestrator(primary Primary, fallback FallbackClassifier) *Orchestrator {
	return &Orchestrator{primary: primary, fallback: fallback}
}

// Classify runs the primary classifier and, when it yields no label,
// replaces its result with the fallback's. Results are never merged.
func (o *Orchestrator) Classify(ctx context.Context, query string, categories []taxonomy.Category) Result {
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.Hypothesis
	}

	res := o.primary.Classify(ctx, query, labels)
	if res.IsGeneral() {
		log.Printf("classify: primary yielded no label (confidence %.2f), trying fallback", res.Confidence)
		res = o.fallback.Classify(ctx, query, categories)
	}
	return res
}

// Reconcile maps a final classification result to a stable category
// identity. A category resolved by the fallback wins outright; otherwise
// the taxonomy is scanned for the first category whose hypothesis text
// equals the label. No match yields the general-maintenance default.
func Reconcile(categories []taxonomy.Category, res Result) (displayName, slug string) {
	if res.Category != nil {
		return res.Category.DisplayName, res.Category.Slug
	}
	for _, c := range categories {
		if c.Hypothesis == res.Label {
			return c.DisplayName, c.Slug
		}
	}
	return DefaultServiceName, DefaultServiceSlug
}
