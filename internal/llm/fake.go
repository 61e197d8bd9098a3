package llm

import (
	"context"
	"sync"
)

// FakeClient returns deterministic replies for offline/testing use.
type FakeClient struct {
	// Reply maps a prompt to a response. When nil, Text/Err are returned
	// for every call.
	Reply func(prompt string) (string, error)
	Text  string
	Err   error

	mu      sync.Mutex
	prompts []string
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.Reply != nil {
		return f.Reply(prompt)
	}
	return f.Text, f.Err
}

// Prompts returns every prompt seen so far.
func (f *FakeClient) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.prompts))
	copy(out, f.prompts)
	return out
}
