package quiz

import (
	"fmt"
	"strings"

	"study-assistant/internal/models"
)

const (
	copula          = " is "
	maxDefSentWords = 20
	maxTermWords    = 3
)

// Definitions builds up to need "X is Y" concept-check questions from short
// definitional sentences, in document order
func Definitions(doc *models.AnalyzedDocument, need int) []models.QuestionItem {
	var items []models.QuestionItem
	for _, sent := range doc.Sentences {
		if len(items) >= need {
			break
		}
		if !strings.Contains(sent.Text, copula) || len(strings.Fields(sent.Text)) >= maxDefSentWords {
			continue
		}
		parts := strings.SplitN(sent.Text, copula, 2)
		term := strings.TrimSpace(parts[0])
		definition := strings.Trim(strings.TrimSpace(parts[1]), ".")
		words := len(strings.Fields(term))
		if words == 0 || words > maxTermWords {
			continue
		}
		items = append(items, models.QuestionItem{
			QuestionText:  fmt.Sprintf(models.FallbackQuestionFmt, definition),
			Options:       []string{term, models.FallbackOption},
			CorrectAnswer: term,
		})
	}
	return items
}
