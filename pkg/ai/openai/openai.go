package openai

import (
	"sync"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/sync/semaphore"

	"github.com/MamuzaD/cal-hacks/pkg/ai"
)

// CompletionOpenAIClient implements ai.CompletionClient against the
// OpenAI chat completions API or any OpenAI-compatible endpoint.
type CompletionOpenAIClient struct {
	chatModel string
	chatURL   string
	chatKey   string

	reqLock *semaphore.Weighted

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewCompletionOpenAIClientParams configures a new client.
//
// ChatURL may be empty for the default OpenAI endpoint or point at any
// OpenAI-compatible server. MaxConcurrentRequests bounds in-flight calls.
type NewCompletionOpenAIClientParams struct {
	ChatModel string

	ChatURL string
	ChatKey string

	MaxConcurrentRequests int64
}

// NewCompletionOpenAIClient creates a new OpenAI-backed completion client.
func NewCompletionOpenAIClient(
	params NewCompletionOpenAIClientParams,
) *CompletionOpenAIClient {
	maxConcurrent := params.MaxConcurrentRequests
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &CompletionOpenAIClient{
		chatModel: params.ChatModel,
		chatURL:   params.ChatURL,
		chatKey:   params.ChatKey,

		reqLock: semaphore.NewWeighted(maxConcurrent),

		metricsLock: sync.Mutex{},
		metrics:     ai.ModelMetrics{},

		ChatClient: newOpenaiClient(params.ChatURL, params.ChatKey),
	}
}

func newOpenaiClient(baseURL string, apiKey string) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(options...)
	return &client
}

func (c *CompletionOpenAIClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs
}

// ResetMetrics clears the accumulated usage metrics.
func (c *CompletionOpenAIClient) ResetMetrics() {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	c.metrics = ai.ModelMetrics{}
}

// GetMetrics returns a snapshot of the accumulated usage metrics.
func (c *CompletionOpenAIClient) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}
