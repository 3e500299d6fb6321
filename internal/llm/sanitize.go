package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fenceTags are the language tags models attach to code fences even when the
// prompt asks for raw JSON.
var fenceTags = []string{"json", "javascript", "python"}

// CleanJSON strips triple-backtick fences (with an optional language tag)
// wherever they appear in model output, then trims surrounding whitespace.
// Input that is already fence-free comes back unchanged apart from the
// trim, so the function is idempotent.
func CleanJSON(raw string) string {
	clean := raw
	for _, tag := range fenceTags {
		clean = strings.ReplaceAll(clean, "```"+tag, "")
	}
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}

// ParseJSON cleans model output and parses it as a single JSON value.
// There is no partial recovery: either the whole payload parses or the call
// fails with *ErrInvalidResponse carrying the cleaned text for diagnostics.
func ParseJSON(raw string) (json.RawMessage, error) {
	clean := CleanJSON(raw)

	if !json.Valid([]byte(clean)) {
		return nil, &ErrInvalidResponse{
			Content: json.RawMessage(clean),
			Err:     fmt.Errorf("payload is not valid JSON"),
		}
	}

	return json.RawMessage(clean), nil
}
