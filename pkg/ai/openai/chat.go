package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"

	"github.com/MamuzaD/cal-hacks/pkg/ai"
)

// GenerateCompletion sends a single-turn prompt to the chat model and
// returns the generated completion as plain text.
func (c *CompletionOpenAIClient) GenerateCompletion(
	ctx context.Context,
	prompt string,
	opts ...ai.GenerateOption,
) (string, error) {
	if c.ChatClient == nil {
		return "", fmt.Errorf("openai client is not configured")
	}

	options := ai.GenerateOptions{
		Model:       c.chatModel,
		Temperature: 0.3,
	}
	for _, o := range opts {
		o(&options)
	}

	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.reqLock.Release(1)

	body := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(options.Model),
		Messages:    buildMessages(options, prompt),
		Temperature: openai.Float(options.Temperature),
	}
	if options.MaxTokens > 0 {
		body.MaxTokens = openai.Int(int64(options.MaxTokens))
	}

	start := time.Now()
	response, err := c.ChatClient.Chat.Completions.New(ctx, body)
	if err != nil {
		return "", err
	}

	c.modifyMetrics(ai.ModelMetrics{
		InputTokens:  int(response.Usage.PromptTokens),
		OutputTokens: int(response.Usage.CompletionTokens),
		TotalTokens:  int(response.Usage.TotalTokens),
		DurationMs:   time.Since(start).Milliseconds(),
	})

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in response from model")
	}
	return response.Choices[0].Message.Content, nil
}

// GenerateCompletionWithFormat sends a prompt to the chat model and
// unmarshals the response into out, using a JSON schema derived from out
// to enforce structure.
func (c *CompletionOpenAIClient) GenerateCompletionWithFormat(
	ctx context.Context,
	name string,
	description string,
	prompt string,
	out any,
	opts ...ai.GenerateOption,
) error {
	if c.ChatClient == nil {
		return fmt.Errorf("openai client is not configured")
	}

	schema := ai.GenerateSchema(out)
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        name,
		Description: openai.String(description),
		Schema:      schema,
		Strict:      openai.Bool(true),
	}

	options := ai.GenerateOptions{
		Model:       c.chatModel,
		Temperature: 0.1,
	}
	for _, o := range opts {
		o(&options)
	}

	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.reqLock.Release(1)

	body := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(options.Model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
		Messages:    buildMessages(options, prompt),
		Temperature: openai.Float(options.Temperature),
	}
	if options.MaxTokens > 0 {
		body.MaxTokens = openai.Int(int64(options.MaxTokens))
	}

	start := time.Now()
	response, err := c.ChatClient.Chat.Completions.New(ctx, body)
	if err != nil {
		return err
	}

	c.modifyMetrics(ai.ModelMetrics{
		InputTokens:  int(response.Usage.PromptTokens),
		OutputTokens: int(response.Usage.CompletionTokens),
		TotalTokens:  int(response.Usage.TotalTokens),
		DurationMs:   time.Since(start).Milliseconds(),
	})

	if len(response.Choices) == 0 {
		return fmt.Errorf("no choices in response from model")
	}
	message := response.Choices[0].Message.Content
	if message == "" {
		return fmt.Errorf("empty response from model (finish_reason: %s)", response.Choices[0].FinishReason)
	}
	return ai.UnmarshalFlexible(message, out)
}

func buildMessages(options ai.GenerateOptions, prompt string) []openai.ChatCompletionMessageParamUnion {
	msgs := []openai.ChatCompletionMessageParamUnion{}
	for _, sp := range options.SystemPrompts {
		msgs = append(msgs, openai.SystemMessage(sp))
	}
	msgs = append(msgs, openai.UserMessage(prompt))
	return msgs
}
