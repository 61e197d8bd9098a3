package classify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicematch/internal/llm"
	"servicematch/internal/taxonomy"
)

func TestFallbackMatchReturnsHypothesisAndFixedConfidence(t *testing.T) {
	fake := &llm.FakeClient{Text: "Electrical & Lighting"}
	f := NewFallback(fake)

	res := f.Classify(context.Background(), "my lights flicker", taxonomy.Defaults())

	assert.Equal(t, "Electrical installation or repair service", res.Label)
	assert.Equal(t, 99.0, res.Confidence)
	assert.Equal(t, SourceFallback, res.Source)
	require.NotNil(t, res.Category)
	assert.Equal(t, "Electrical & Lighting", res.Category.DisplayName)
	assert.Equal(t, "electrical", res.Category.Slug)
}

func TestFallbackTrimsModelAnswer(t *testing.T) {
	fake := &llm.FakeClient{Text: "\n  Plumbing Services  \n"}
	f := NewFallback(fake)

	res := f.Classify(context.Background(), "leaking tap", taxonomy.Defaults())

	assert.Equal(t, "Plumbing repair service", res.Label)
}

func TestFallbackUnknownAnswerDegradesToUnknown(t *testing.T) {
	fake := &llm.FakeClient{Text: "General Home Maintenance"}
	f := NewFallback(fake)

	res := f.Classify(context.Background(), "something odd", taxonomy.Defaults())

	assert.Equal(t, Unknown(), res)
	assert.Nil(t, res.Category)
}

func TestFallbackGenerationFailureDegradesToUnknown(t *testing.T) {
	fake := &llm.FakeClient{Err: errors.New("quota exhausted")}
	f := NewFallback(fake)

	res := f.Classify(context.Background(), "leaking tap", taxonomy.Defaults())

	assert.Equal(t, Unknown(), res)
}

func TestFallbackPromptIsClosedList(t *testing.T) {
	fake := &llm.FakeClient{Text: "Painting Services"}
	f := NewFallback(fake)

	f.Classify(context.Background(), "repaint my wall", taxonomy.Defaults())

	prompts := fake.Prompts()
	require.Len(t, prompts, 1)
	// Display names only; hypothesis strings never leak into the prompt.
	assert.Contains(t, prompts[0], "Plumbing Services, Electrical & Lighting")
	assert.Contains(t, prompts[0], `"repaint my wall"`)
	assert.NotContains(t, prompts[0], "Plumbing repair service")
	assert.True(t, strings.Contains(prompts[0], "General Home Maintenance"))
}
