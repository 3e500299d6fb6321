package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a technical interviewer preparing candidates for real job interviews.

Rules:
- Generate multiple-choice technical interview questions for the given industry and skills.
- Each question has exactly 4 answer options with exactly one correct answer.
- The correctAnswer field must match one of the options verbatim.
- Include a short explanation for why the correct answer is right.
- Keep all questions, options, and explanations plain text. No markdown, no code fences.
- Questions should test practical knowledge a working professional needs, not trivia.
- Do not repeat questions within a set.
- Return only valid raw JSON matching the requested structure, with no text before or after it.`

// buildUserMessage constructs the user message from GenerateInput.
func buildUserMessage(input GenerateInput, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d technical interview questions for a %s professional",
		count, input.Industry)
	if len(input.Skills) > 0 {
		fmt.Fprintf(&b, " with expertise in %s", strings.Join(input.Skills, ", "))
	}
	b.WriteString(".\n")

	b.WriteString(`
The JSON must be structured exactly like this:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string"
    }
  ]
}`)

	return b.String()
}
