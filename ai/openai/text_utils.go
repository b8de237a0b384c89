package openai

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// answerLabels are prefixes the model sometimes echoes back from the prompt.
var answerLabels = []string{"답변:", "답변 :", "Answer:"}

// cleanAnswer trims whitespace and a leading echoed answer label.
func cleanAnswer(s string) string {
	s = strings.TrimSpace(s)
	for _, label := range answerLabels {
		if rest, ok := strings.CutPrefix(s, label); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s
}

// prepareText composes Hangul to NFC and collapses whitespace so the same
// sentence always yields the same embedding input.
func prepareText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
