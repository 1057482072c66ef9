package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"study-assistant/internal/analyzer"
	"study-assistant/internal/api"
	"study-assistant/internal/config"
	"study-assistant/internal/helper"
	"study-assistant/internal/llmservice"
	"study-assistant/internal/parser"
	"study-assistant/internal/quiz"
	"study-assistant/internal/summary"
)

const (
	configFilePath = "./configs/config.yaml"
)

func main() {
	configPath := flag.String("config", configFilePath, "Path to the config file")
	filePath := flag.String("file", "", "Summarize a document and print the result instead of serving HTTP")
	numQuestions := flag.Int("questions", 0, "Number of questions to generate with -file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	summaries, questions := buildServices(cfg)

	if *filePath != "" {
		if *numQuestions <= 0 {
			*numQuestions = cfg.Quiz.DefaultQuestions
		}
		summarizeFile(context.Background(), *filePath, *numQuestions, summaries, questions)
		return
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	handler := api.NewHandler(summaries, questions, cfg)
	router := api.NewRouter(handler, cfg.Server.AllowedOrigins)
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	log.Info().Str("addr", cfg.Server.Addr).Msg("Starting study notes service")
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("Error starting server")
	}
}

func setupLogger(cfg config.LogConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()
	} else {
		log.Logger = log.With().Caller().Logger()
	}
}

// buildServices loads every collaborator once. A model that cannot be loaded is
// left out and the matching pipeline step degrades.
func buildServices(cfg *config.Config) (*summary.Service, *quiz.Service) {
	textAnalyzer := analyzer.NewProseAnalyzer()

	var abstractive summary.AbstractiveSummarizer
	if llm, err := llmservice.NewModel(&cfg.Summarizer); err != nil {
		log.Warn().Err(err).Msg("Summarizer unavailable, executive summary will be empty")
	} else {
		abstractive = llmservice.NewSummarizer(llm, cfg.Summarizer.Temperature)
		log.Info().Str("model", cfg.Summarizer.Model).Msg("Summarizer loaded")
	}

	var generator quiz.QuestionGenerator
	if llm, err := llmservice.NewModel(&cfg.QuestionGenerator); err != nil {
		log.Warn().Err(err).Msg("Question generator unavailable, using definition fallback only")
	} else {
		generator = llmservice.NewQuestionGenerator(llm, cfg.QuestionGenerator.Temperature)
		log.Info().Str("model", cfg.QuestionGenerator.Model).Msg("Question generator loaded")
	}

	summaries := summary.NewService(textAnalyzer, abstractive, cfg.Summary.KeyPoints)
	synthesizer := quiz.NewSynthesizer(generator, cfg.Quiz.QuestionMaxLength, cfg.Quiz.MinQuestionLength)
	questions := quiz.NewService(textAnalyzer, synthesizer, quiz.NewRand)
	return summaries, questions
}

type fileResult struct {
	File      string `json:"file"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Questions any    `json:"questions"`
}

func summarizeFile(ctx context.Context, filePath string, numQuestions int, summaries *summary.Service, questions *quiz.Service) {
	text, err := parser.ExtractText(filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error parsing document")
	}

	res, err := summaries.Summarize(ctx, text)
	if err != nil {
		log.Fatal().Err(err).Msg("Error summarizing document")
	}

	items, err := questions.Generate(ctx, text, numQuestions)
	if err != nil {
		log.Fatal().Err(err).Msg("Error generating questions")
	}

	helper.PrettyPrint(os.Stdout, fileResult{
		File:      filePath,
		Title:     res.Title,
		Summary:   res.Summary,
		Questions: items,
	})
}
