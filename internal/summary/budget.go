package summary

import (
	"math"
	"strings"
)

const (
	maxLengthRatio = 0.7
	minLengthRatio = 0.3
	maxLengthFloor = 60
	maxLengthCeil  = 400
	minLengthFloor = 30
	minLengthCeil  = 150
)

// Budget bounds the length of an abstractive summary
type Budget struct {
	MaxLength int
	MinLength int
}

// LengthBudget computes the summary bounds from the word count of text
func LengthBudget(text string) Budget {
	n := float64(len(strings.Fields(text)))
	return Budget{
		MaxLength: clamp(int(math.Round(n*maxLengthRatio)), maxLengthFloor, maxLengthCeil),
		MinLength: clamp(int(math.Round(n*minLengthRatio)), minLengthFloor, minLengthCeil),
	}
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}

// TrimIncomplete drops a trailing unfinished sentence. Text without any sentence
// terminator is returned unchanged.
func TrimIncomplete(s string) string {
	if s == "" || isTerminal(s[len(s)-1]) {
		return s
	}
	last := strings.LastIndexAny(s, ".!?")
	if last < 0 {
		return s
	}
	return s[:last+1]
}

func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
