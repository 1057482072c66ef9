package summary

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"study-assistant/internal/analyzer"
	"study-assistant/internal/models"
)

var ErrEmptyText = errors.New("text is empty")

var thinkRe = regexp.MustCompile(models.ThinkTag)

// AbstractiveSummarizer produces a fluent paragraph summary of text
type AbstractiveSummarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

type Service struct {
	analyzer   analyzer.Analyzer
	summarizer AbstractiveSummarizer
	keyPoints  int
}

// NewService builds the summary pipeline. summarizer may be nil when the model
// could not be loaded; the executive summary is then left empty.
func NewService(a analyzer.Analyzer, summarizer AbstractiveSummarizer, keyPoints int) *Service {
	return &Service{analyzer: a, summarizer: summarizer, keyPoints: keyPoints}
}

func (s *Service) SummarizerAvailable() bool {
	return s.summarizer != nil
}

// Summarize builds the title and markdown summary of text
func (s *Service) Summarize(ctx context.Context, text string) (*models.SummaryResult, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	var (
		doc      *models.AnalyzedDocument
		abstract string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = s.analyzer.Analyze(text)
		return err
	})
	g.Go(func() error {
		abstract = s.abstract(gctx, text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to summarize: %w", err)
	}

	title := Title(doc, s.analyzer.IsStopWord)
	points := KeyPoints(doc, s.keyPoints)

	return &models.SummaryResult{
		Title:   title,
		Summary: Format(abstract, points),
	}, nil
}

func (s *Service) abstract(ctx context.Context, text string) string {
	if s.summarizer == nil {
		return ""
	}
	budget := LengthBudget(text)
	out, err := s.summarizer.Summarize(ctx, text, budget.MaxLength, budget.MinLength)
	if err != nil {
		log.Error().Err(err).Msg("Summarizer failed")
		return models.SummaryErrorText
	}
	out = strings.TrimSpace(thinkRe.ReplaceAllString(out, ""))
	return TrimIncomplete(out)
}
