package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when model output carries no recognizable JSON value.
var ErrNoJSON = fmt.Errorf("no JSON value found in text")

// ExtractObject scans free-form model output for an embedded JSON object by
// bracket-matching the first '{' against the last '}' and unmarshals the
// slice into out. This is a best-effort fallback for providers that wrap
// structured output in prose; callers must treat a failure as "display the
// raw text instead", never as a fatal error.
func ExtractObject(text string, out any) error {
	return extract(text, '{', '}', out)
}

// ExtractArray is the array counterpart of ExtractObject ('[' .. ']').
func ExtractArray(text string, out any) error {
	return extract(text, '[', ']', out)
}

func extract(text string, open, close byte, out any) error {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end == -1 || end < start {
		return ErrNoJSON
	}

	raw := text[start : end+1]
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("malformed JSON in text: %w", err)
	}
	return nil
}
