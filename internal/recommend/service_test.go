package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"servicematch/internal/advice"
	"servicematch/internal/classify"
	"servicematch/internal/llm"
	"servicematch/internal/taxonomy"
)

type stubPrimary struct {
	res classify.Result
}

func (s *stubPrimary) Classify(context.Context, string, []string) classify.Result {
	return s.res
}

type stubFallback struct {
	res    classify.Result
	called bool
}

func (s *stubFallback) Classify(context.Context, string, []taxonomy.Category) classify.Result {
	s.called = true
	return s.res
}

type failingSource struct{}

func (failingSource) ListActive(context.Context) ([]taxonomy.Record, error) {
	return nil, errors.New("data source unreachable")
}

func newService(primary classify.Primary, fallback classify.FallbackClassifier, advisorLLM llm.TextClient) *Service {
	loader := taxonomy.NewLoader(failingSource{}, 0)
	orch := classify.NewOrchestrator(primary, fallback)
	return New(loader, orch, advice.NewGenerator(advisorLLM))
}

func TestRecommendEndToEnd(t *testing.T) {
	primary := &stubPrimary{res: classify.Result{
		Label:      "Plumbing repair service",
		Confidence: 87.0,
		Source:     classify.SourcePrimary,
	}}
	fallback := &stubFallback{}
	svc := newService(primary, fallback, &llm.FakeClient{Text: "Try the washer first."})

	rec := svc.Recommend(context.Background(), "my tap is leaking")

	assert.Equal(t, "Plumbing Services", rec.Service)
	assert.Equal(t, "plumbing", rec.Slug)
	assert.Equal(t, 87.0, rec.Confidence)
	assert.Equal(t, "Try the washer first.", rec.ExpertAdvice)
	assert.Equal(t, StatusMatching, rec.Status)
	assert.Equal(t, classify.SourcePrimary, rec.Source)
	assert.False(t, fallback.called)
}

func TestRecommendFallbackPath(t *testing.T) {
	electrical := taxonomy.Defaults()[1]
	primary := &stubPrimary{res: classify.Result{Label: classify.GeneralLabel, Confidence: 41.2, Source: classify.SourcePrimary}}
	fallback := &stubFallback{res: classify.Result{
		Label:      electrical.Hypothesis,
		Confidence: 99.0,
		Category:   &electrical,
		Source:     classify.SourceFallback,
	}}
	svc := newService(primary, fallback, &llm.FakeClient{Text: "Flickering lights usually mean a loose connection."})

	rec := svc.Recommend(context.Background(), "my lights flicker")

	assert.True(t, fallback.called)
	assert.Equal(t, "Electrical & Lighting", rec.Service)
	assert.Equal(t, "electrical", rec.Slug)
	assert.Equal(t, 99.0, rec.Confidence)
	assert.Equal(t, classify.SourceFallback, rec.Source)
}

func TestRecommendEverythingFailingStillAnswers(t *testing.T) {
	primary := &stubPrimary{res: classify.Unknown()}
	fallback := &stubFallback{res: classify.Unknown()}
	svc := newService(primary, fallback, &llm.FakeClient{Err: errors.New("model down")})

	rec := svc.Recommend(context.Background(), "help")

	assert.Equal(t, classify.DefaultServiceName, rec.Service)
	assert.Equal(t, classify.DefaultServiceSlug, rec.Slug)
	assert.Zero(t, rec.Confidence)
	assert.Equal(t, advice.Apology, rec.ExpertAdvice)
	assert.Equal(t, StatusMatching, rec.Status)
	assert.Equal(t, classify.SourceNone, rec.Source)
}
