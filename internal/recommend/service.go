// Package recommend ties the pipeline together: taxonomy resolution,
// two-stage classification, reconciliation and advice generation.
package recommend

import (
	"context"

	"servicematch/internal/advice"
	"servicematch/internal/classify"
	"servicematch/internal/taxonomy"
)

// StatusMatching is the only status the matching workflow emits; the
// always-answer contract means even degraded requests report it.
const StatusMatching = "matching_vendors"

// Recommendation is the consumer-facing answer to one request.
type Recommendation struct {
	Service      string
	Slug         string
	Confidence   float64
	ExpertAdvice string
	Status       string
	Source       classify.Source
}

type Service struct {
	taxonomy   *taxonomy.Loader
	classifier *classify.Orchestrator
	advisor    *advice.Generator
}

func New(loader *taxonomy.Loader, classifier *classify.Orchestrator, advisor *advice.Generator) *Service {
	return &Service{taxonomy: loader, classifier: classifier, advisor: advisor}
}

// Recommend resolves the taxonomy, classifies the query, reconciles the
// label to a category and generates advice. Every stage degrades to a
// documented default, so this always produces a recommendation-shaped
// answer.
func (s *Service) Recommend(ctx context.Context, query string) Recommendation {
	categories := s.taxonomy.Load(ctx)

	res := s.classifier.Classify(ctx, query, categories)
	displayName, slug := classify.Reconcile(categories, res)

	return Recommendation{
		Service:      displayName,
		Slug:         slug,
		Confidence:   res.Confidence,
		ExpertAdvice: s.advisor.Advise(ctx, displayName, query),
		Status:       StatusMatching,
		Source:       res.Source,
	}
}
