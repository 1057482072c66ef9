package analyzer

import "study-assistant/internal/models"

// Analyzer turns raw text into an AnalyzedDocument. Implementations must not keep
// state between calls.
type Analyzer interface {
	Analyze(text string) (*models.AnalyzedDocument, error)
	IsStopWord(word string) bool
}
