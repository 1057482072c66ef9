package models

// QuestionItem is a multiple-choice question. CorrectAnswer is always one of Options.
type QuestionItem struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// SummaryResult is the structured summary of a text
type SummaryResult struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	SummaryHTML string `json:"summaryHtml,omitempty"`
}
