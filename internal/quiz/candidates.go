package quiz

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"study-assistant/internal/models"
)

const (
	minEntityLength = 3
	minChunkLength  = 4
	maxChunkWords   = 4
)

// ExtractCandidates collects answer candidates: named entities first, then short
// noun chunks. Each text appears once. The pool is shuffled and cut to limit.
func ExtractCandidates(doc *models.AnalyzedDocument, limit int, rng *rand.Rand) []string {
	seen := make(map[string]struct{})
	var pool []string
	add := func(text string) {
		if _, ok := seen[text]; ok {
			return
		}
		seen[text] = struct{}{}
		pool = append(pool, text)
	}

	for _, ent := range doc.Entities {
		if utf8.RuneCountInString(ent.Text) > minEntityLength {
			add(ent.Text)
		}
	}
	for _, chunk := range doc.NounChunks {
		if len(strings.Fields(chunk.Text)) <= maxChunkWords && utf8.RuneCountInString(chunk.Text) > minChunkLength {
			add(chunk.Text)
		}
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if limit >= 0 && len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}
