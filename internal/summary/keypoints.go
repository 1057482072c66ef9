package summary

import (
	"sort"
	"strings"

	"study-assistant/internal/models"
)

// FrequencyTable maps raw token text to its frequency
type FrequencyTable map[string]float64

// BuildFrequencyTable counts tokens that are neither stop words nor punctuation.
// Keys are case-sensitive.
func BuildFrequencyTable(tokens []models.Token) FrequencyTable {
	table := make(FrequencyTable)
	for _, tok := range tokens {
		if tok.IsStop || tok.IsPunct {
			continue
		}
		table[tok.Text]++
	}
	return table
}

// Normalize divides every count by the table maximum
func (f FrequencyTable) Normalize() {
	maxFreq := 0.0
	for _, v := range f {
		if v > maxFreq {
			maxFreq = v
		}
	}
	if maxFreq == 0 {
		return
	}
	for k, v := range f {
		f[k] = v / maxFreq
	}
}

type sentenceScore struct {
	index int
	score float64
}

// scoreSentences sums the normalized frequency of each sentence's tokens.
// Sentences without a scored token are left out. Result is in sentence order.
func scoreSentences(sentences []models.Sentence, table FrequencyTable) []sentenceScore {
	var scores []sentenceScore
	for _, sent := range sentences {
		var score float64
		found := false
		for _, tok := range sent.Tokens {
			if v, ok := table[tok.Text]; ok {
				score += v
				found = true
			}
		}
		if found {
			scores = append(scores, sentenceScore{index: sent.Index, score: score})
		}
	}
	return scores
}

// KeyPoints returns up to limit sentences with the highest frequency score, in
// score order. Ties keep document order.
func KeyPoints(doc *models.AnalyzedDocument, limit int) []string {
	table := BuildFrequencyTable(doc.Tokens)
	if len(table) == 0 || limit <= 0 {
		return nil
	}
	table.Normalize()

	scores := scoreSentences(doc.Sentences, table)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if len(scores) > limit {
		scores = scores[:limit]
	}

	byIndex := make(map[int]string, len(doc.Sentences))
	for _, s := range doc.Sentences {
		byIndex[s.Index] = s.Text
	}
	points := make([]string, 0, len(scores))
	for _, s := range scores {
		points = append(points, strings.TrimSpace(byIndex[s.index]))
	}
	return points
}
