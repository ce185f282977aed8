package search

import (
	"context"

	"github.com/MamuzaD/cal-hacks/pkg/classify"
	"github.com/MamuzaD/cal-hacks/pkg/entity"
	"github.com/MamuzaD/cal-hacks/pkg/logger"
	"github.com/MamuzaD/cal-hacks/pkg/store"
)

// Result is a successful search resolution. Type comes from the resolved
// entity itself, the classification only steered the lookup; confidence
// and reasoning are carried over from the classification for display.
type Result struct {
	ID         string
	Type       entity.Type
	Name       string
	Confidence float64
	Reasoning  string
}

// Pipeline composes classification and resolution into the single search
// operation exposed to the HTTP layer.
type Pipeline struct {
	classifier *classify.Classifier
	resolver   *Resolver
}

// NewPipeline creates a search pipeline.
func NewPipeline(classifier *classify.Classifier, s store.EntityStore) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		resolver:   NewResolver(s),
	}
}

// Search classifies term and resolves it against the store. It returns
// (nil, nil) when no entity matches; errors are store failures only.
func (p *Pipeline) Search(ctx context.Context, term string) (*Result, error) {
	classification := p.classifier.Classify(ctx, term)
	logger.Debug("Classified search term",
		"term", term,
		"type", classification.Type,
		"confidence", classification.Confidence,
	)

	ref, err := p.resolver.Resolve(ctx, term, classification.Type)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		logger.Debug("No entity matched search term", "term", term, "type", classification.Type)
		return nil, nil
	}

	return &Result{
		ID:         ref.ID,
		Type:       ref.Type,
		Name:       ref.Name,
		Confidence: classification.Confidence,
		Reasoning:  classification.Reasoning,
	}, nil
}
