package ollama

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/ollama/ollama/api"
	"golang.org/x/sync/semaphore"

	"github.com/MamuzaD/cal-hacks/pkg/ai"
)

// CompletionOllamaClient implements ai.CompletionClient using a
// locally-hosted Ollama server.
type CompletionOllamaClient struct {
	chatModel string

	reqLock *semaphore.Weighted

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client

	Client *api.Client
}

// NewCompletionOllamaClientParams contains configuration options for
// creating a new CompletionOllamaClient.
type NewCompletionOllamaClientParams struct {
	ChatModel string

	BaseURL string
	ApiKey  string

	MaxConcurrentRequests int64
}

type headerTransport struct {
	headers map[string]string
	rt      http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so original request isn't modified
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return t.rt.RoundTrip(r)
}

// NewCompletionOllamaClient creates a new Ollama-backed completion client
// connecting to the server at BaseURL (or the default if empty).
func NewCompletionOllamaClient(
	params NewCompletionOllamaClientParams,
) (*CompletionOllamaClient, error) {
	var (
		u   *url.URL
		err error
	)

	if params.BaseURL != "" {
		u, err = url.Parse(params.BaseURL)
		if err != nil {
			return nil, err
		}
	}

	httpClient := &http.Client{
		Transport: &headerTransport{
			headers: map[string]string{
				"Authorization": "Bearer " + params.ApiKey,
			},
			rt: http.DefaultTransport,
		},
	}

	maxConcurrent := params.MaxConcurrentRequests
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &CompletionOllamaClient{
		chatModel: params.ChatModel,

		reqLock: semaphore.NewWeighted(maxConcurrent),

		metricsLock: sync.Mutex{},
		metrics:     ai.ModelMetrics{},

		baseURL:    u,
		apiKey:     params.ApiKey,
		httpClient: httpClient,

		Client: api.NewClient(u, httpClient),
	}, nil
}

func (c *CompletionOllamaClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs
}

// ResetMetrics clears the accumulated usage metrics.
func (c *CompletionOllamaClient) ResetMetrics() {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	c.metrics = ai.ModelMetrics{}
}

// GetMetrics returns a snapshot of the accumulated usage metrics.
func (c *CompletionOllamaClient) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}
