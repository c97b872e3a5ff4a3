package datastore

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"unicode/utf8"
)

// decodeObject parses raw as a single JSON object. Empty input, invalid
// UTF-8, trailing data and any non-object top level value are errors.
func decodeObject(raw []byte) (map[string]any, error) {
	// json.Unmarshal would replace invalid bytes with U+FFFD and the next
	// save would write the lossy text back
	if !utf8.Valid(raw) {
		return nil, stderrors.New("content is not valid UTF-8")
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, want object", kindOf(v))
	}
	return m, nil
}

// normalize converts value into the form json.Unmarshal would produce for it
func normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// deepCopy copies the containers of a decoded JSON value.
// Scalars are immutable and returned as is.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
