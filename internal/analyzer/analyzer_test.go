package analyzer

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"study-assistant/internal/models"
)

func TestIsStopWord(t *testing.T) {
	assert.Equal(t, true, IsStopWord("the"))
	assert.Equal(t, true, IsStopWord("The"))
	assert.Equal(t, true, IsStopWord("is"))
	assert.Equal(t, false, IsStopWord("photosynthesis"))
	assert.Equal(t, false, IsStopWord(""))
}

func TestIsPunct(t *testing.T) {
	assert.Equal(t, true, isPunct("."))
	assert.Equal(t, true, isPunct("--"))
	assert.Equal(t, true, isPunct("$"))
	assert.Equal(t, false, isPunct("U.S."))
	assert.Equal(t, false, isPunct(""))
}

func TestAlignTokens(t *testing.T) {
	text := "Go is fast. It compiles quickly!"
	sentences := []string{"Go is fast.", "It compiles quickly!"}
	tokens := []string{"Go", "is", "fast", ".", "It", "compiles", "quickly", "!"}

	owners := alignTokens(text, sentences, tokens)

	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, owners)
}

func TestAlignTokens_UnknownTokenFollowsPrevious(t *testing.T) {
	text := "He said “hi”. Bye."
	sentences := []string{"He said “hi”.", "Bye."}
	tokens := []string{"He", "said", "``", "hi", "''", ".", "Bye", "."}

	owners := alignTokens(text, sentences, tokens)

	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 1, 1}, owners)
}

func TestNounChunks(t *testing.T) {
	tokens := []taggedToken{
		{"The", "DT"}, {"green", "JJ"}, {"plant", "NN"}, {"cell", "NN"},
		{"uses", "VBZ"}, {"it", "PRP"}, {"for", "IN"},
		{"the", "DT"}, {"big", "JJ"}, {"and", "CC"},
		{"photosynthesis", "NN"}, {".", "."},
	}

	chunks := nounChunks(tokens)

	assert.Equal(t, []models.Span{
		{Text: "The green plant cell", Label: "NP"},
		{Text: "it", Label: "NP"},
		{Text: "photosynthesis", Label: "NP"},
	}, chunks)
}

func TestNounChunks_PunctuationBoundary(t *testing.T) {
	tests := []struct {
		name   string
		tokens []taggedToken
		want   []models.Span
	}{
		{
			name: "quoted word tagged as nouns",
			tokens: []taggedToken{
				{"He", "PRP"}, {"said", "VBD"}, {"\"", "NN"}, {"hi", "NN"}, {"\"", "NNP"},
				{"to", "TO"}, {"the", "DT"}, {"team", "NN"}, {".", "."},
			},
			want: []models.Span{
				{Text: "He", Label: "NP"},
				{Text: "hi", Label: "NP"},
				{Text: "the team", Label: "NP"},
			},
		},
		{
			name: "quoted adjective inside a phrase",
			tokens: []taggedToken{
				{"The", "DT"}, {"\"", "JJ"}, {"green", "JJ"}, {"\"", "NN"}, {"cell", "NN"},
				{"is", "VBZ"}, {"alive", "JJ"}, {".", "."},
			},
			want: []models.Span{{Text: "cell", Label: "NP"}},
		},
		{
			name:   "bracket tagged as noun",
			tokens: []taggedToken{{"(", "NN"}, {"DNA", "NNP"}, {")", "NN"}},
			want:   []models.Span{{Text: "DNA", Label: "NP"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nounChunks(tt.tokens))
		})
	}
}

func TestNounChunks_Possessive(t *testing.T) {
	tokens := []taggedToken{{"Newton", "NNP"}, {"'s", "POS"}, {"first", "JJ"}, {"law", "NN"}}

	chunks := nounChunks(tokens)

	assert.Equal(t, 1, len(chunks))
	assert.Equal(t, "Newton's first law", chunks[0].Text)
}

func TestProseAnalyzer_Analyze(t *testing.T) {
	a := NewProseAnalyzer()

	doc, err := a.Analyze("The mitochondria produces energy. The cell needs energy to live.")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(doc.Sentences))
	assert.Equal(t, 0, doc.Sentences[0].Index)
	assert.Equal(t, 1, doc.Sentences[1].Index)
	assert.NotEqual(t, 0, len(doc.Tokens))
	assert.NotEqual(t, 0, len(doc.NounChunks))

	total := 0
	for _, s := range doc.Sentences {
		total += len(s.Tokens)
	}
	assert.Equal(t, len(doc.Tokens), total)

	for _, tok := range doc.Tokens {
		if tok.Text == "." {
			assert.Equal(t, true, tok.IsPunct)
		}
		if tok.Text == "The" {
			assert.Equal(t, true, tok.IsStop)
		}
	}
}

func TestProseAnalyzer_EmptyText(t *testing.T) {
	doc, err := NewProseAnalyzer().Analyze("")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(doc.Sentences))
	assert.Equal(t, 0, len(doc.Tokens))
}
