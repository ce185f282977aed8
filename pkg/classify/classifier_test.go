package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/MamuzaD/cal-hacks/pkg/ai"
	"github.com/MamuzaD/cal-hacks/pkg/entity"
)

type fakeCompletionClient struct {
	result Result
	err    error
	calls  int
}

func (f *fakeCompletionClient) GenerateCompletion(ctx context.Context, prompt string, opts ...ai.GenerateOption) (string, error) {
	return "", f.err
}

func (f *fakeCompletionClient) GenerateCompletionWithFormat(ctx context.Context, name, description, prompt string, out any, opts ...ai.GenerateOption) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	*(out.(*Result)) = f.result
	return nil
}

func (f *fakeCompletionClient) ResetMetrics() {}

func (f *fakeCompletionClient) GetMetrics() ai.ModelMetrics { return ai.ModelMetrics{} }

func TestClassify_NoModelUsesHeuristic(t *testing.T) {
	c := NewClassifier(NewClassifierParams{})
	if c.HasModel() {
		t.Fatal("expected no model capability")
	}

	result := c.Classify(context.Background(), "AAPL")
	if result.Type != entity.TypeCompany || result.Confidence != 0.7 {
		t.Fatalf("expected heuristic ticker result, got %+v", result)
	}
}

func TestClassify_ModelResultUsed(t *testing.T) {
	client := &fakeCompletionClient{result: Result{
		Type:       entity.TypePerson,
		Confidence: 0.95,
		Reasoning:  "known politician",
	}}
	c := NewClassifier(NewClassifierParams{Client: client})

	result := c.Classify(context.Background(), "AAPL")
	if result.Type != entity.TypePerson || result.Confidence != 0.95 {
		t.Fatalf("expected model result, got %+v", result)
	}
	if client.calls != 1 {
		t.Fatalf("expected a single model call, got %d", client.calls)
	}
}

func TestClassify_ModelErrorFallsBack(t *testing.T) {
	client := &fakeCompletionClient{err: errors.New("connection refused")}
	c := NewClassifier(NewClassifierParams{Client: client})

	result := c.Classify(context.Background(), "Jane Q. Public")
	if result.Type != entity.TypePerson || result.Confidence != 0.8 {
		t.Fatalf("expected heuristic fallback, got %+v", result)
	}
	if client.calls != 1 {
		t.Fatalf("expected a single attempt before fallback, got %d", client.calls)
	}
}

func TestClassify_InvalidModelTypeFallsBack(t *testing.T) {
	client := &fakeCompletionClient{result: Result{
		Type:       "organization",
		Confidence: 0.9,
	}}
	c := NewClassifier(NewClassifierParams{Client: client})

	result := c.Classify(context.Background(), "AAPL")
	if !result.Type.Valid() {
		t.Fatalf("fallback produced invalid type %q", result.Type)
	}
	if result.Type != entity.TypeCompany || result.Confidence != 0.7 {
		t.Fatalf("expected heuristic result, got %+v", result)
	}
}

func TestClassify_ConfidenceOutOfRangeFallsBack(t *testing.T) {
	client := &fakeCompletionClient{result: Result{
		Type:       entity.TypePerson,
		Confidence: 7.5,
	}}
	c := NewClassifier(NewClassifierParams{Client: client})

	result := c.Classify(context.Background(), "John Smith")
	if result.Confidence < 0 || result.Confidence > 1 {
		t.Fatalf("fallback confidence %v out of range", result.Confidence)
	}
}
