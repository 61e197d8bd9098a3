// Package llm provides the generative-text capability shared by the
// fallback classifier, the advice generator and the description generator.
package llm

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("llm: empty response from model")

// TextClient generates plain text from a prompt.
type TextClient interface {
	Name() string
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}
