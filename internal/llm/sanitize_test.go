package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"javascript tag", "```javascript\n{\"a\":1}\n```", `{"a":1}`},
		{"python tag", "```python\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```  \n", `{"a":1}`},
		{"no closing fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"embedded fence", "```json\n{\"a\":1}\n```\nnote", "{\"a\":1}\n\nnote"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanJSON(tt.in); got != tt.want {
				t.Errorf("CleanJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanJSON_Idempotent(t *testing.T) {
	inputs := []string{
		`{"a":1}`,
		"```json\n{\"a\":1}\n```",
		"  plain text  ",
	}
	for _, in := range inputs {
		once := CleanJSON(in)
		twice := CleanJSON(once)
		if once != twice {
			t.Errorf("CleanJSON not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestParseJSON_Fenced(t *testing.T) {
	raw, err := ParseJSON("```json\n{\"a\":1}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]int
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed["a"] != 1 {
		t.Errorf("expected a=1, got %v", parsed)
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON("```json\nSure! Here is your quiz:\n```")
	if err == nil {
		t.Fatal("expected error for non-JSON payload")
	}

	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if string(invResp.Content) != "Sure! Here is your quiz:" {
		t.Errorf("expected cleaned text in error content, got %q", invResp.Content)
	}
}
