// Package yamlparse turns raw YAML text into the document value model.
package yamlparse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"github.com/jacoelho/vy/internal/document"
)

// ErrParse is the sentinel error for all parse failures.
// It allows consistent error checks using errors.Is().
var ErrParse = errors.New("yaml parse error")

// Parse decodes the first YAML document in text into a document value.
// Mappings keep their key order. The error message carries the parser's
// line/column annotated text and is intended for display as-is.
func Parse(text string) (any, error) {
	decoder := yaml.NewDecoder(strings.NewReader(text), yaml.UseOrderedMap())

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrParse)
		}
		return nil, fmt.Errorf("%w: %s", ErrParse, yaml.FormatError(err, false, true))
	}

	return normalize(raw), nil
}

// normalize converts goccy decode output into the document value model.
// Non-string mapping keys are stringified; scalars pass through untouched.
func normalize(v any) any {
	switch current := v.(type) {
	case yaml.MapSlice:
		out := make(document.Map, 0, len(current))
		for _, item := range current {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			out = append(out, document.Entry{Key: key, Value: normalize(item.Value)})
		}
		return out
	case []any:
		out := make([]any, len(current))
		for i, item := range current {
			out[i] = normalize(item)
		}
		return out
	default:
		return current
	}
}
