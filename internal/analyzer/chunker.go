package analyzer

import (
	"strings"

	"study-assistant/internal/models"
)

type taggedToken struct {
	text string
	tag  string
}

// nounChunks groups Penn Treebank tagged tokens into base noun phrases: an
// optional determiner or possessive, any adjectives and numbers, then one or more
// nouns. A personal pronoun on its own is also a chunk. Punctuation ends a
// chunk whatever its tag, since quotes and brackets are often tagged NN or JJ.
func nounChunks(tokens []taggedToken) []models.Span {
	var chunks []models.Span
	i := 0
	for i < len(tokens) {
		if isPronoun(tokens[i].chunkTag()) {
			chunks = append(chunks, models.Span{Text: tokens[i].text, Label: "NP"})
			i++
			continue
		}
		if !startsChunk(tokens[i].chunkTag()) {
			i++
			continue
		}

		j := i
		if isDeterminer(tokens[j].chunkTag()) {
			j++
		}
		lastNoun := -1
		for j < len(tokens) && (isModifier(tokens[j].chunkTag()) || isNoun(tokens[j].chunkTag())) {
			if isNoun(tokens[j].chunkTag()) {
				lastNoun = j
			}
			j++
		}
		if lastNoun < 0 {
			i = max(j, i+1)
			continue
		}
		chunks = append(chunks, models.Span{Text: joinTokens(tokens[i : lastNoun+1]), Label: "NP"})
		i = lastNoun + 1
	}
	return chunks
}

// chunkTag is the token's tag, or "" for punctuation.
func (t taggedToken) chunkTag() string {
	if isPunct(t.text) {
		return ""
	}
	return t.tag
}

func joinTokens(tokens []taggedToken) string {
	var b strings.Builder
	for k, t := range tokens {
		if k > 0 && !strings.HasPrefix(t.text, "'") {
			b.WriteString(" ")
		}
		b.WriteString(t.text)
	}
	return b.String()
}

func startsChunk(tag string) bool {
	return isDeterminer(tag) || isModifier(tag) || isNoun(tag)
}

func isDeterminer(tag string) bool {
	switch tag {
	case "DT", "PDT", "PRP$", "WP$":
		return true
	}
	return false
}

func isModifier(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS", "CD", "POS":
		return true
	}
	return false
}

func isNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func isPronoun(tag string) bool {
	return tag == "PRP"
}
