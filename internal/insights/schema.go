package insights

import "github.com/prepdeck/prepdeck/internal/llm"

// InsightSchema defines the JSON schema for LLM insight responses.
var InsightSchema = &llm.Schema{
	Name:        "industry-insight",
	Description: "Market analysis for one industry",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"salaryRanges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"role":     map[string]any{"type": "string"},
						"min":      map[string]any{"type": "number"},
						"max":      map[string]any{"type": "number"},
						"median":   map[string]any{"type": "number"},
						"location": map[string]any{"type": "string"},
					},
					"required":             []any{"role", "min", "max", "median", "location"},
					"additionalProperties": false,
				},
			},
			"growthRate": map[string]any{
				"type":        "number",
				"description": "Projected annual growth rate as a percentage",
			},
			"demandLevel": map[string]any{
				"type": "string",
				"enum": []any{"High", "Medium", "Low"},
			},
			"topSkills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"marketOutlook": map[string]any{
				"type": "string",
				"enum": []any{"Positive", "Neutral", "Negative"},
			},
			"keyTrends": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"recommendedSkills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"salaryRanges", "growthRate", "demandLevel", "topSkills",
			"marketOutlook", "keyTrends", "recommendedSkills"},
		"additionalProperties": false,
	},
}
