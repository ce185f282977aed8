package ai

import "context"

// GenerateOptions holds configuration for completion requests.
type GenerateOptions struct {
	Model         string   // Model identifier to use for generation
	SystemPrompts []string // System prompts prepended to the request
	Temperature   float64  // Sampling temperature (0.0-2.0)
	MaxTokens     int      // Output token ceiling, 0 means provider default
}

// GenerateOption is a functional option for configuring completion requests.
type GenerateOption func(*GenerateOptions)

// WithModel sets the model to use for generation.
func WithModel(model string) GenerateOption {
	return func(o *GenerateOptions) {
		o.Model = model
	}
}

// WithSystemPrompts sets the system prompts prepended to the request.
func WithSystemPrompts(prompts ...string) GenerateOption {
	return func(o *GenerateOptions) {
		o.SystemPrompts = prompts
	}
}

// WithTemperature sets the sampling temperature. Lower values make output
// more deterministic.
func WithTemperature(temp float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temp
	}
}

// WithMaxTokens caps the number of output tokens.
func WithMaxTokens(tokens int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = tokens
	}
}

// ModelMetrics contains accumulated usage metrics from model calls.
type ModelMetrics struct {
	InputTokens  int   `json:"input_tokens"`
	OutputTokens int   `json:"output_tokens"`
	TotalTokens  int   `json:"total_tokens"`
	DurationMs   int64 `json:"duration_ms"`
}

// CompletionClient is the interface a language-model backend has to
// satisfy. Implementations are safe for concurrent use and bound their
// in-flight requests.
type CompletionClient interface {
	// GenerateCompletion sends a single-turn prompt and returns the
	// generated text.
	GenerateCompletion(
		ctx context.Context,
		prompt string,
		opts ...GenerateOption,
	) (string, error)

	// GenerateCompletionWithFormat sends a prompt with a JSON schema
	// derived from out and unmarshals the response into out.
	GenerateCompletionWithFormat(
		ctx context.Context,
		name string,
		description string,
		prompt string,
		out any,
		opts ...GenerateOption,
	) error

	ResetMetrics()
	GetMetrics() ModelMetrics
}
