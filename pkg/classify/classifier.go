package classify

import (
	"context"
	"fmt"
	"time"

	"github.com/MamuzaD/cal-hacks/pkg/ai"
	"github.com/MamuzaD/cal-hacks/pkg/logger"
)

const classificationPrompt = `Analyze this search term and determine if it refers to a PERSON (politician/individual) or a COMPANY (corporation/organization).

Search term: %q

Consider:
- Person names typically have 2-3 words (first, middle, last name)
- Company names often include words like "Inc", "Corp", "LLC", "Group", "Systems", etc.
- Stock tickers are usually 3-5 uppercase letters
- Political figures often have titles or are known by partial names

Respond with valid JSON only:
{
    "type": "person" or "company",
    "confidence": 0.0-1.0,
    "reasoning": "brief explanation of your decision"
}`

const defaultTimeout = 10 * time.Second

// Classifier resolves a search term to a person/company classification.
// When a model client is configured it is asked first, a single attempt
// with a bounded timeout; on any failure the lexical heuristic answers
// instead. Callers never see a model error.
type Classifier struct {
	client  ai.CompletionClient
	timeout time.Duration
}

// NewClassifierParams configures a Classifier.
//
// Client may be nil when no model credential is configured at startup;
// the classifier then answers from heuristics alone.
type NewClassifierParams struct {
	Client  ai.CompletionClient
	Timeout time.Duration
}

// NewClassifier creates a Classifier.
func NewClassifier(params NewClassifierParams) *Classifier {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Classifier{
		client:  params.Client,
		timeout: timeout,
	}
}

// HasModel reports whether a model client is configured.
func (c *Classifier) HasModel() bool {
	return c.client != nil
}

// Classify returns a classification for term. It never fails.
func (c *Classifier) Classify(ctx context.Context, term string) Result {
	if c.client == nil {
		return Heuristic(term)
	}

	result, err := c.classifyWithModel(ctx, term)
	if err != nil {
		logger.Warn("Model classification failed, falling back to heuristics", "term", term, "err", err)
		return Heuristic(term)
	}
	return result
}

func (c *Classifier) classifyWithModel(ctx context.Context, term string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out Result
	err := c.client.GenerateCompletionWithFormat(
		ctx,
		"classification",
		"Person or company classification of a search term",
		fmt.Sprintf(classificationPrompt, term),
		&out,
		ai.WithMaxTokens(200),
	)
	if err != nil {
		return Result{}, err
	}

	if !out.Type.Valid() {
		return Result{}, fmt.Errorf("invalid type from model: %q", out.Type)
	}
	if out.Confidence < 0 || out.Confidence > 1 {
		return Result{}, fmt.Errorf("confidence out of range: %v", out.Confidence)
	}
	return out, nil
}
