package insights

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a labor market analyst producing structured industry reports for job seekers. You return only valid raw JSON, with no additional text, notes, or markdown formatting.`

func buildUserMessage(industry string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the current state of the %s industry and provide insights in ONLY the following JSON format:\n", industry)
	b.WriteString(`{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.`)

	return b.String()
}
