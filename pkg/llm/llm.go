// Package llm wraps the chat-completion provider used for keyword analysis
// and article generation.
package llm

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured is returned by the disabled client when no API key is set.
var ErrNotConfigured = errors.New("llm: provider not configured")

// Request is a single-turn chat completion.
type Request struct {
	System    string
	User      string
	MaxTokens int
}

// Response carries the assistant reply and token usage.
type Response struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// Client produces completions.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
	Model() string
}

// Config selects and tunes the provider.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// New returns an OpenAI-compatible client, or a disabled client when no API
// key is configured so the service can still start without one.
func New(cfg Config) Client {
	if cfg.APIKey == "" {
		return disabled{}
	}
	return newOpenAIClient(cfg)
}

type disabled struct{}

func (disabled) Complete(context.Context, Request) (Response, error) {
	return Response{}, ErrNotConfigured
}

func (disabled) Model() string { return "" }
