package summary

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-playground/assert/v2"

	"study-assistant/internal/analyzer"
	"study-assistant/internal/models"
)

// buildDoc splits each sentence on spaces; a trailing "." becomes its own token
func buildDoc(sentences []string, chunks ...string) *models.AnalyzedDocument {
	doc := &models.AnalyzedDocument{}
	for i, text := range sentences {
		sent := models.Sentence{Index: i, Text: text}
		for _, w := range strings.Fields(text) {
			var punct bool
			if strings.HasSuffix(w, ".") {
				w = strings.TrimSuffix(w, ".")
				punct = true
			}
			tok := models.Token{Text: w, IsStop: analyzer.IsStopWord(w)}
			sent.Tokens = append(sent.Tokens, tok)
			doc.Tokens = append(doc.Tokens, tok)
			if punct {
				p := models.Token{Text: ".", IsPunct: true}
				sent.Tokens = append(sent.Tokens, p)
				doc.Tokens = append(doc.Tokens, p)
			}
		}
		doc.Sentences = append(doc.Sentences, sent)
	}
	for _, c := range chunks {
		doc.NounChunks = append(doc.NounChunks, models.Span{Text: c})
	}
	return doc
}

type fakeAnalyzer struct {
	doc   *models.AnalyzedDocument
	err   error
	calls atomic.Int32
}

func (f *fakeAnalyzer) Analyze(text string) (*models.AnalyzedDocument, error) {
	f.calls.Add(1)
	return f.doc, f.err
}

func (f *fakeAnalyzer) IsStopWord(word string) bool { return analyzer.IsStopWord(word) }

type fakeSummarizer struct {
	out      string
	err      error
	calls    atomic.Int32
	max, min int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	f.calls.Add(1)
	f.max, f.min = maxLength, minLength
	return f.out, f.err
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		doc  *models.AnalyzedDocument
		want string
	}{
		{
			name: "no sentences",
			doc:  &models.AnalyzedDocument{NounChunks: []models.Span{{Text: "cells"}}},
			want: "",
		},
		{
			name: "most frequent chunk",
			doc:  buildDoc([]string{"x"}, "the cell", "Energy", "The Cell", "energy", "the cell"),
			want: "The Cell",
		},
		{
			name: "tie keeps first seen",
			doc:  buildDoc([]string{"x"}, "energy", "the cell", "the cell", "energy"),
			want: "Energy",
		},
		{
			name: "only stop words",
			doc:  buildDoc([]string{"It is what it is."}, "It", "it", "what"),
			want: "Study Note",
		},
		{
			name: "no chunks",
			doc:  buildDoc([]string{"Run."}),
			want: "Study Note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.doc, analyzer.IsStopWord))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Newton'S First Law", titleCase("newton's first law"))
	assert.Equal(t, "Dna Replication", titleCase("DNA replication"))
	assert.Equal(t, "3D Printing", titleCase("3d printing"))
}

func TestKeyPoints(t *testing.T) {
	doc := buildDoc([]string{
		"Cells need energy.",
		"The weather was nice.",
		"Cells make energy from glucose and oxygen.",
		"It is.",
	})

	points := KeyPoints(doc, 5)

	// "It is." has only stop words and punctuation and is never ranked
	assert.Equal(t, []string{
		"Cells make energy from glucose and oxygen.",
		"Cells need energy.",
		"The weather was nice.",
	}, points)
}

func TestKeyPoints_Limit(t *testing.T) {
	var sentences []string
	for i := 0; i < 8; i++ {
		sentences = append(sentences, "Mitochondria produce energy.")
	}
	doc := buildDoc(sentences)

	points := KeyPoints(doc, 5)

	assert.Equal(t, 5, len(points))
}

func TestKeyPoints_CaseSensitive(t *testing.T) {
	doc := buildDoc([]string{"Energy matters.", "energy energy flows."})
	table := BuildFrequencyTable(doc.Tokens)

	assert.Equal(t, 1.0, table["Energy"])
	assert.Equal(t, 2.0, table["energy"])
}

func TestKeyPoints_NoQualifyingTokens(t *testing.T) {
	doc := buildDoc([]string{"It is.", "We were."})
	assert.Equal(t, 0, len(KeyPoints(doc, 5)))
}

func TestLengthBudget(t *testing.T) {
	tests := []struct {
		words    int
		max, min int
	}{
		{words: 0, max: 60, min: 30},
		{words: 100, max: 70, min: 30},
		{words: 200, max: 140, min: 60},
		{words: 1000, max: 400, min: 150},
	}

	for _, tt := range tests {
		text := strings.TrimSpace(strings.Repeat("word ", tt.words))
		b := LengthBudget(text)
		assert.Equal(t, tt.max, b.MaxLength)
		assert.Equal(t, tt.min, b.MinLength)
	}
}

func TestTrimIncomplete(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Complete sentence.", "Complete sentence."},
		{"Is it done?", "Is it done?"},
		{"First one. Second one! And a third", "First one. Second one!"},
		{"no terminator at all", "no terminator at all"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TrimIncomplete(tt.in))
	}
}

func TestFormat(t *testing.T) {
	got := Format("Short abstract.", []string{"One.", "Two."})
	want := "### Executive Summary\nShort abstract.\n\n### Key Concepts\n- One.\n- Two.\n"
	assert.Equal(t, want, got)
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(Format("Abstract.", []string{"Point."}))

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(html, "<h3>Executive Summary</h3>"))
	assert.Equal(t, true, strings.Contains(html, "<li>Point.</li>"))
}

func TestService_Summarize(t *testing.T) {
	doc := buildDoc([]string{"Cells need energy.", "Cells make energy."}, "cells", "energy", "cells")
	sum := &fakeSummarizer{out: "Cells use energy. They also"}
	svc := NewService(&fakeAnalyzer{doc: doc}, sum, 5)

	res, err := svc.Summarize(context.Background(), "Cells need energy. Cells make energy.")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Cells", res.Title)
	assert.Equal(t, true, strings.HasPrefix(res.Summary, "### Executive Summary\nCells use energy.\n\n### Key Concepts\n"))
	assert.Equal(t, true, strings.Contains(res.Summary, "- Cells need energy.\n"))
	assert.Equal(t, 60, sum.max)
	assert.Equal(t, 30, sum.min)
}

func TestService_NoSentencesLeavesTitleEmpty(t *testing.T) {
	svc := NewService(&fakeAnalyzer{doc: buildDoc(nil, "cells")}, nil, 5)

	res, err := svc.Summarize(context.Background(), "   ...   ")

	assert.Equal(t, nil, err)
	assert.Equal(t, "", res.Title)
	assert.Equal(t, "### Executive Summary\n\n\n### Key Concepts\n", res.Summary)
}

func TestService_SummarizerUnavailable(t *testing.T) {
	svc := NewService(&fakeAnalyzer{doc: buildDoc([]string{"Plants grow."})}, nil, 5)

	res, err := svc.Summarize(context.Background(), "Plants grow.")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.HasPrefix(res.Summary, "### Executive Summary\n\n\n### Key Concepts\n"))
	assert.Equal(t, false, svc.SummarizerAvailable())
}

func TestService_SummarizerError(t *testing.T) {
	sum := &fakeSummarizer{err: errors.New("model crashed")}
	svc := NewService(&fakeAnalyzer{doc: buildDoc([]string{"Plants grow."})}, sum, 5)

	res, err := svc.Summarize(context.Background(), "Plants grow.")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(res.Summary, "Error generating main summary."))
	assert.Equal(t, true, strings.Contains(res.Summary, "### Key Concepts\n- Plants grow.\n"))
}

func TestService_StripsThinkBlock(t *testing.T) {
	sum := &fakeSummarizer{out: "<think>plan the answer</think>\nPlants grow."}
	svc := NewService(&fakeAnalyzer{doc: buildDoc([]string{"Plants grow."})}, sum, 5)

	res, err := svc.Summarize(context.Background(), "Plants grow.")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.HasPrefix(res.Summary, "### Executive Summary\nPlants grow.\n"))
}

func TestService_EmptyText(t *testing.T) {
	a := &fakeAnalyzer{doc: buildDoc(nil)}
	sum := &fakeSummarizer{}
	svc := NewService(a, sum, 5)

	_, err := svc.Summarize(context.Background(), "")

	assert.Equal(t, true, errors.Is(err, ErrEmptyText))
	assert.Equal(t, int32(0), a.calls.Load())
	assert.Equal(t, int32(0), sum.calls.Load())
}

func TestService_AnalyzerError(t *testing.T) {
	svc := NewService(&fakeAnalyzer{err: errors.New("boom")}, nil, 5)

	_, err := svc.Summarize(context.Background(), "text")

	assert.NotEqual(t, nil, err)
}
