package ai

import "testing"

type sample struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

func TestUnmarshalFlexible_StandardJSON(t *testing.T) {
	var out sample
	if err := UnmarshalFlexible(`{"type": "person", "confidence": 0.8}`, &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.Type != "person" || out.Confidence != 0.8 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestUnmarshalFlexible_DoubleEncoded(t *testing.T) {
	var out sample
	input := `"{\"type\": \"company\", \"confidence\": 0.7}"`
	if err := UnmarshalFlexible(input, &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.Type != "company" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestUnmarshalFlexible_Malformed(t *testing.T) {
	var out sample
	if err := UnmarshalFlexible(`{type: "person", confidence: 0.9,}`, &out); err != nil {
		t.Fatalf("expected repaired parse, got %v", err)
	}
	if out.Type != "person" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestUnmarshalFlexible_DuplicateLeadingBrace(t *testing.T) {
	var out sample
	if err := UnmarshalFlexible(`{ {"type": "person", "confidence": 1}`, &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.Type != "person" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestGenerateSchema_PointerAndValue(t *testing.T) {
	s1 := GenerateSchema(sample{})
	s2 := GenerateSchema(&sample{})
	if s1 == nil || s2 == nil {
		t.Fatal("expected non-nil schemas")
	}
}
