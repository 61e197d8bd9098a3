// Package classify implements the two-stage classification pipeline:
// a zero-shot scorer gated by a confidence threshold, a generative-model
// fallback, and the reconciliation of raw labels back to categories.
package classify

import "servicematch/internal/taxonomy"

// GeneralLabel is the canonical label of an unknown or failed classification.
const GeneralLabel = "General"

// Defaults used when no category matches the final label.
const (
	DefaultServiceName = "General Home Maintenance"
	DefaultServiceSlug = "general"
)

// Source records which classifier produced a result, so callers can tell a
// degraded default from a full success.
type Source string

const (
	SourceNone     Source = "none"
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one classification stage.
//
// Label is either a category hypothesis text or GeneralLabel; Confidence is
// 0-100. The fallback path resolves its Category directly, so reconciliation
// does not depend on a second string match for it.
type Result struct {
	Label      string
	Confidence float64
	Category   *taxonomy.Category
	Source     Source
}

// Unknown is the canonical failed-classification result.
func Unknown() Result {
	return Result{Label: GeneralLabel, Source: SourceNone}
}

// IsGeneral reports whether the result carries no usable label.
func (r Result) IsGeneral() bool {
	return r.Label == GeneralLabel
}
