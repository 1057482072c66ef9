package llmservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"study-assistant/internal/config"
)

var ErrDisabled = errors.New("model disabled in config")

// NewModel creates the langchaingo model for the configured provider
func NewModel(llmConfig *config.LLMConfig) (llms.Model, error) {
	if !llmConfig.Enabled {
		return nil, ErrDisabled
	}
	log.Debug().
		Str("provider", llmConfig.Provider).
		Str("base_url", llmConfig.BaseURL).
		Str("model", llmConfig.Model).
		Msg("Creating LLM client")

	switch llmConfig.Provider {
	case config.ProviderOllama:
		opts := []ollama.Option{ollama.WithModel(llmConfig.Model)}
		if llmConfig.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(llmConfig.BaseURL))
		}
		return ollama.New(opts...)
	case config.ProviderOpenAI:
		opts := []openai.Option{
			openai.WithToken(strings.TrimPrefix(llmConfig.Key, "Bearer ")),
			openai.WithModel(llmConfig.Model),
		}
		if llmConfig.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(llmConfig.BaseURL))
		}
		return openai.New(opts...)
	case config.ProviderAnthropic:
		opts := []anthropic.Option{
			anthropic.WithToken(llmConfig.Key),
			anthropic.WithModel(llmConfig.Model),
		}
		if llmConfig.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(llmConfig.BaseURL))
		}
		return anthropic.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", llmConfig.Provider)
	}
}

// generate sends a single human prompt and returns the first choice
func generate(ctx context.Context, llm llms.Model, prompt string, options ...llms.CallOption) (string, error) {
	msgContent := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	res, err := llm.GenerateContent(ctx, msgContent, options...)
	if err != nil {
		return "", err
	}
	if len(res.Choices) == 0 {
		return "", errors.New("no choices in model response")
	}
	return res.Choices[0].Content, nil
}
