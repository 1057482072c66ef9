package analyzer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"

	"study-assistant/internal/models"
)

// ProseAnalyzer analyzes English text with the prose tokenizer, sentence
// segmenter, tagger and entity extractor. Noun chunks are built from the tags.
type ProseAnalyzer struct{}

func NewProseAnalyzer() *ProseAnalyzer {
	return &ProseAnalyzer{}
}

func (a *ProseAnalyzer) IsStopWord(word string) bool {
	return IsStopWord(word)
}

func (a *ProseAnalyzer) Analyze(text string) (*models.AnalyzedDocument, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}

	proseSents := doc.Sentences()
	proseTokens := doc.Tokens()

	sentTexts := make([]string, len(proseSents))
	for i, s := range proseSents {
		sentTexts[i] = s.Text
	}
	tokTexts := make([]string, len(proseTokens))
	for i, t := range proseTokens {
		tokTexts[i] = t.Text
	}
	owners := alignTokens(text, sentTexts, tokTexts)

	result := &models.AnalyzedDocument{
		Sentences: make([]models.Sentence, len(proseSents)),
		Tokens:    make([]models.Token, 0, len(proseTokens)),
	}
	for i, s := range proseSents {
		result.Sentences[i] = models.Sentence{Index: i, Text: s.Text}
	}

	// tags are grouped per sentence so chunks never cross a sentence boundary
	tagged := make([][]taggedToken, len(proseSents))
	for i, t := range proseTokens {
		tok := models.Token{
			Text:    t.Text,
			IsStop:  IsStopWord(t.Text),
			IsPunct: isPunct(t.Text),
		}
		result.Tokens = append(result.Tokens, tok)
		if owner := owners[i]; owner >= 0 {
			result.Sentences[owner].Tokens = append(result.Sentences[owner].Tokens, tok)
			tagged[owner] = append(tagged[owner], taggedToken{text: t.Text, tag: t.Tag})
		}
	}

	for _, e := range doc.Entities() {
		result.Entities = append(result.Entities, models.Span{Text: e.Text, Label: e.Label})
	}
	for _, sent := range tagged {
		result.NounChunks = append(result.NounChunks, nounChunks(sent)...)
	}
	return result, nil
}

// alignTokens maps every token to the index of the sentence containing it, by
// locating sentences and tokens in text from a moving cursor. A token that cannot
// be located is given to the sentence of the previous token (-1 if none).
func alignTokens(text string, sentences, tokens []string) []int {
	type bounds struct{ start, end int }
	spans := make([]bounds, len(sentences))
	cursor := 0
	for i, s := range sentences {
		idx := strings.Index(text[cursor:], s)
		if idx < 0 {
			spans[i] = bounds{cursor, cursor}
			continue
		}
		spans[i] = bounds{cursor + idx, cursor + idx + len(s)}
		cursor += idx + len(s)
	}

	owners := make([]int, len(tokens))
	cursor = 0
	sent, last := 0, -1
	for i, tok := range tokens {
		idx := strings.Index(text[cursor:], tok)
		if idx < 0 || tok == "" {
			owners[i] = last
			continue
		}
		pos := cursor + idx
		cursor = pos + len(tok)
		for sent < len(spans)-1 && pos >= spans[sent].end {
			sent++
		}
		if len(spans) == 0 {
			owners[i] = -1
			continue
		}
		owners[i] = sent
		last = sent
	}
	return owners
}

func isPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
