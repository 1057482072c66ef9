package summary

import (
	"strings"
	"unicode"

	"study-assistant/internal/models"
)

// Title picks the most frequent noun chunk as a topic phrase. It is a plurality
// vote, not topic modelling. A document with no sentences has no title, and the
// caller is left to show its own placeholder.
func Title(doc *models.AnalyzedDocument, isStop func(string) bool) string {
	if len(doc.Sentences) == 0 {
		return ""
	}

	counts := make(map[string]int)
	var order []string
	for _, chunk := range doc.NounChunks {
		phrase := strings.ToLower(chunk.Text)
		if isStop(phrase) {
			continue
		}
		if _, seen := counts[phrase]; !seen {
			order = append(order, phrase)
		}
		counts[phrase]++
	}
	if len(order) == 0 {
		return models.DefaultTitle
	}

	best := order[0]
	for _, phrase := range order[1:] {
		if counts[phrase] > counts[best] {
			best = phrase
		}
	}
	return titleCase(best)
}

// titleCase upper-cases the first letter of every run of letters and lower-cases
// the rest
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
