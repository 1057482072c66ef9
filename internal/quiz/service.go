package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"study-assistant/internal/analyzer"
	"study-assistant/internal/models"
)

// RandFactory returns a fresh random source for one request
type RandFactory func() *rand.Rand

// NewRand seeds a PCG source from the clock
func NewRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>1|1))
}

type Service struct {
	analyzer    analyzer.Analyzer
	synthesizer *Synthesizer
	newRand     RandFactory
}

func NewService(a analyzer.Analyzer, synthesizer *Synthesizer, newRand RandFactory) *Service {
	if newRand == nil {
		newRand = NewRand
	}
	return &Service{analyzer: a, synthesizer: synthesizer, newRand: newRand}
}

func (s *Service) GeneratorAvailable() bool {
	return s.synthesizer != nil && s.synthesizer.generator != nil
}

// Generate returns at most num multiple-choice questions about text. Generated
// questions come first; definition questions fill any shortfall.
func (s *Service) Generate(ctx context.Context, text string, num int) ([]models.QuestionItem, error) {
	if num <= 0 {
		return []models.QuestionItem{}, nil
	}

	doc, err := s.analyzer.Analyze(text)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}

	rng := s.newRand()
	candidates := ExtractCandidates(doc, 2*num, rng)

	questions := make([]models.QuestionItem, 0, num)
	if s.synthesizer != nil && len(candidates) > 0 {
		questions = append(questions, s.synthesizer.Synthesize(ctx, candidates, text, num, rng)...)
	}

	if len(questions) < num {
		fallback := Definitions(doc, num-len(questions))
		log.Debug().
			Int("generated", len(questions)).
			Int("fallback", len(fallback)).
			Msg("Filling questions from definitions")
		questions = append(questions, fallback...)
	}

	if len(questions) > num {
		questions = questions[:num]
	}
	return questions, nil
}
