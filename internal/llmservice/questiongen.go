package llmservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"study-assistant/internal/models"
)

// QuestionGenerator asks an LLM for an answer-aware question
type QuestionGenerator struct {
	llm         llms.Model
	temperature float64
}

func NewQuestionGenerator(llm llms.Model, temperature float64) *QuestionGenerator {
	return &QuestionGenerator{llm: llm, temperature: temperature}
}

// Generate returns the raw model output; cleanup is left to the caller
func (g *QuestionGenerator) Generate(ctx context.Context, answer, passage string, maxLength int) (string, error) {
	prompt := fmt.Sprintf(models.QuestionPromptTemplate, answer, passage)
	out, err := generate(ctx, g.llm, prompt,
		llms.WithTemperature(g.temperature),
		llms.WithMaxTokens(maxLength),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate question: %w", err)
	}
	// only the first line is the question
	out = strings.TrimSpace(out)
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i]
	}
	return out, nil
}
