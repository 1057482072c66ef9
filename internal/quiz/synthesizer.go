package quiz

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"study-assistant/internal/models"
)

const maxDistractors = 3

var thinkRe = regexp.MustCompile(models.ThinkTag)

// QuestionGenerator writes a question about passage whose answer is answer
type QuestionGenerator interface {
	Generate(ctx context.Context, answer, passage string, maxLength int) (string, error)
}

type Synthesizer struct {
	generator      QuestionGenerator
	maxLength      int
	minQuestionLen int
}

// NewSynthesizer returns a synthesizer around generator. A nil generator
// produces no questions.
func NewSynthesizer(generator QuestionGenerator, maxLength, minQuestionLen int) *Synthesizer {
	return &Synthesizer{generator: generator, maxLength: maxLength, minQuestionLen: minQuestionLen}
}

// Synthesize generates up to want questions, one per candidate, in candidate order
func (s *Synthesizer) Synthesize(ctx context.Context, candidates []string, text string, want int, rng *rand.Rand) []models.QuestionItem {
	if s.generator == nil {
		return nil
	}

	var items []models.QuestionItem
	for _, answer := range candidates {
		if len(items) >= want {
			break
		}
		raw, err := s.generator.Generate(ctx, answer, text, s.maxLength)
		if err != nil {
			log.Warn().Err(err).Str("answer", answer).Msg("Question generation failed")
			continue
		}
		question := cleanQuestion(raw)
		if utf8.RuneCountInString(question) < s.minQuestionLen {
			log.Debug().Str("answer", answer).Str("question", question).Msg("Discarding short question")
			continue
		}
		items = append(items, models.QuestionItem{
			QuestionText:  question,
			Options:       buildOptions(answer, candidates, rng),
			CorrectAnswer: answer,
		})
	}
	return items
}

func cleanQuestion(raw string) string {
	q := thinkRe.ReplaceAllString(raw, "")
	q = strings.ReplaceAll(q, models.QuestionLabel, "")
	return strings.TrimSpace(q)
}

// buildOptions returns the answer plus up to three distractors from pool, shuffled
func buildOptions(answer string, pool []string, rng *rand.Rand) []string {
	var distractors []string
	for _, c := range pool {
		if c != answer {
			distractors = append(distractors, c)
		}
	}
	rng.Shuffle(len(distractors), func(i, j int) { distractors[i], distractors[j] = distractors[j], distractors[i] })
	if len(distractors) > maxDistractors {
		distractors = distractors[:maxDistractors]
	}

	options := append([]string{answer}, distractors...)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}
