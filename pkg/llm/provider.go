package llm

import "context"

// Message is one turn of a conversation in provider-neutral form.
// Role is "user", "model" or "system".
type Message struct {
	Role    string
	Content string
}

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // overrides the provider default
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the contract every generative-model backend satisfies. The
// caller treats it as a black box: one blocking call, errors surfaced as-is
// for the service layer to classify.
type LLMProvider interface {
	// Chat sends a multi-turn history and returns the model's reply.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
