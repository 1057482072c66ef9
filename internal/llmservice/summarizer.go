package llmservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"study-assistant/internal/models"
)

// tokens per word, used to turn a word budget into a max_tokens limit
const tokensPerWord = 2

// Summarizer writes abstractive summaries with an LLM
type Summarizer struct {
	llm         llms.Model
	temperature float64
}

func NewSummarizer(llm llms.Model, temperature float64) *Summarizer {
	return &Summarizer{llm: llm, temperature: temperature}
}

func (s *Summarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	prompt := fmt.Sprintf(models.SummaryPromptTemplate, minLength, maxLength, text)
	out, err := generate(ctx, s.llm, prompt,
		llms.WithTemperature(s.temperature),
		llms.WithMaxTokens(maxLength*tokensPerWord),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	return strings.TrimSpace(out), nil
}
