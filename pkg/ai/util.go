package ai

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/kaptinlin/jsonrepair"
)

// GenerateSchema creates a JSON Schema from the given Go type, suitable
// for structured model output.
func GenerateSchema(value any) any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	v := reflect.New(t).Interface()
	return reflector.Reflect(v)
}

func stripDuplicateLeadingBrace(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		rest := strings.TrimSpace(s[1:])
		if strings.HasPrefix(rest, "{") {
			return rest
		}
	}
	return s
}

// UnmarshalFlexible attempts to unmarshal JSON into the target with
// multiple fallback strategies: standard unmarshaling first, then
// double-encoded strings, then a repair pass over malformed JSON.
//
// Model-generated JSON routinely fails strict parsing, so every consumer
// of structured output goes through this.
func UnmarshalFlexible(input string, out any) error {
	input = strings.TrimSpace(input)

	if err := json.Unmarshal([]byte(input), out); err == nil {
		return nil
	}

	var asString string
	if err := json.Unmarshal([]byte(input), &asString); err == nil {
		asString = strings.TrimSpace(asString)
		if err := json.Unmarshal([]byte(asString), out); err == nil {
			return nil
		}
		input = asString
	}

	input = stripDuplicateLeadingBrace(input)
	repaired, err := jsonrepair.JSONRepair(input)
	if err != nil {
		return fmt.Errorf("json repair failed: %w (input: %s)", err, input)
	}

	if err := json.Unmarshal([]byte(repaired), out); err == nil {
		return nil
	}

	return fmt.Errorf(
		"unmarshal failed after repair: input=%s repaired=%s",
		input, repaired,
	)
}
