package models

// Token is a single analyzed token of the input text
type Token struct {
	Text    string `json:"text"`
	IsStop  bool   `json:"is_stop"`
	IsPunct bool   `json:"is_punct"`
}

// Sentence is a sentence of the input text. Index is its position in the document
// and is used as the key when sentences are scored.
type Sentence struct {
	Index  int     `json:"index"`
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Span is a labelled text span, either a named entity or a noun chunk
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

// AnalyzedDocument is the read-only result of linguistic analysis of one request's text
type AnalyzedDocument struct {
	Sentences  []Sentence `json:"sentences"`
	Tokens     []Token    `json:"tokens"`
	Entities   []Span     `json:"entities"`
	NounChunks []Span     `json:"noun_chunks"`
}
