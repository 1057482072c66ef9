package analyzer

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var embeddedStopWords string

var stopWords = loadStopWords(embeddedStopWords)

func loadStopWords(data string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(data, "\n") {
		w := strings.TrimSpace(line)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// IsStopWord reports whether word is an English stop word. Matching ignores case.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}
