package provider

import (
	"fmt"
	"strings"
)

// ExercisePrompt builds the LLM prompt for an exercise batch.
func ExercisePrompt(req ExerciseRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You write short translation exercises for a language learner.\n\n")
	fmt.Fprintf(&b, "Generate %d different natural sentences in %s, each about %d words long", req.Count, req.ToLanguage, req.SentenceLength)
	if theme := strings.TrimSpace(req.Theme); theme != "" {
		fmt.Fprintf(&b, ", about the theme %q", theme)
	}
	fmt.Fprintf(&b, ", and translate each one into %s.\n", req.FromLanguage)

	if len(req.Avoid) > 0 {
		b.WriteString("\nDo not reuse any of these sentences:\n")
		for _, s := range req.Avoid {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	fmt.Fprintf(&b, `
Output ONLY a valid JSON object matching this exact schema:
{"exercises": [{"from": "<%s sentence>", "to": "<%s sentence>"}]}

Rules:
- Use everyday vocabulary and correct punctuation
- Separate words with single spaces where the language uses spaces
- Output ONLY the JSON, no markdown, no explanations`, req.FromLanguage, req.ToLanguage)

	return b.String()
}

// ExplainPrompt builds the LLM prompt for a sentence explanation.
func ExplainPrompt(req ExplainRequest) string {
	return fmt.Sprintf(`A learner whose native language is %s is studying %s.

Explain the grammar and word choice of this %s sentence in %s, briefly and clearly:

%s

Answer in plain text, at most 150 words.`,
		req.FromLanguage, req.ToLanguage, req.ToLanguage, req.FromLanguage, req.Sentence)
}
