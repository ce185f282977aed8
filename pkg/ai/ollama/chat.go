package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/ollama/ollama/api"

	"github.com/MamuzaD/cal-hacks/pkg/ai"
)

// GenerateCompletion sends a single-turn prompt and returns assistant text.
func (c *CompletionOllamaClient) GenerateCompletion(
	ctx context.Context,
	prompt string,
	opts ...ai.GenerateOption,
) (string, error) {
	options := ai.GenerateOptions{
		Model:       c.chatModel,
		Temperature: 0.3,
	}
	for _, o := range opts {
		o(&options)
	}

	return c.chat(ctx, options, prompt, nil)
}

// GenerateCompletionWithFormat enforces a JSON schema derived from out
// and unmarshals the response into out.
func (c *CompletionOllamaClient) GenerateCompletionWithFormat(
	ctx context.Context,
	name string,
	description string,
	prompt string,
	out any,
	opts ...ai.GenerateOption,
) error {
	if out == nil {
		return errors.New("out must be a non-nil pointer")
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("out must be a non-nil pointer")
	}

	schemaObj := ai.GenerateSchema(out)
	formatBytes, err := json.Marshal(schemaObj)
	if err != nil {
		return err
	}
	var format json.RawMessage = formatBytes

	options := ai.GenerateOptions{
		Model:       c.chatModel,
		Temperature: 0.1,
	}
	for _, o := range opts {
		o(&options)
	}

	message, err := c.chat(ctx, options, prompt, format)
	if err != nil {
		return err
	}
	return ai.UnmarshalFlexible(message, out)
}

func (c *CompletionOllamaClient) chat(
	ctx context.Context,
	options ai.GenerateOptions,
	prompt string,
	format json.RawMessage,
) (string, error) {
	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.reqLock.Release(1)

	msgs := []api.Message{}
	for _, sp := range options.SystemPrompts {
		msgs = append(msgs, api.Message{Role: "system", Content: sp})
	}
	msgs = append(msgs, api.Message{Role: "user", Content: prompt})

	stream := false
	req := &api.ChatRequest{
		Model:    options.Model,
		Messages: msgs,
		Stream:   &stream,
		Format:   format,
		Options:  map[string]any{"temperature": options.Temperature},
	}
	if options.MaxTokens > 0 {
		req.Options["num_predict"] = options.MaxTokens
	}

	var final api.ChatResponse
	if err := c.Client.Chat(ctx, req, func(cr api.ChatResponse) error {
		final.Message.Content += cr.Message.Content
		if cr.Done {
			final.Done = true
			final.Metrics = cr.Metrics
		}
		return nil
	}); err != nil {
		return "", err
	}

	c.modifyMetrics(ai.ModelMetrics{
		InputTokens:  final.Metrics.PromptEvalCount,
		OutputTokens: final.Metrics.EvalCount,
		TotalTokens:  final.Metrics.PromptEvalCount + final.Metrics.EvalCount,
		DurationMs:   final.Metrics.TotalDuration.Milliseconds(),
	})

	return final.Message.Content, nil
}
