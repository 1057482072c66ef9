package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	defaultAddr              = ":8000"
	defaultMaxUploadMB       = 20
	defaultKeyPoints         = 5
	defaultQuestions         = 5
	defaultQuestionMaxLength = 64
	defaultMinQuestionLength = 10
)

type Config struct {
	Server            ServerConfig  `yaml:"server"`
	Log               LogConfig     `yaml:"log"`
	Summary           SummaryConfig `yaml:"summary"`
	Quiz              QuizConfig    `yaml:"quiz"`
	Summarizer        LLMConfig     `yaml:"summarizer"`
	QuestionGenerator LLMConfig     `yaml:"question_generator"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxUploadMB    int64    `yaml:"max_upload_mb"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type SummaryConfig struct {
	KeyPoints int `yaml:"key_points"`
}

type QuizConfig struct {
	DefaultQuestions  int `yaml:"default_questions"`
	QuestionMaxLength int `yaml:"question_max_length"`
	MinQuestionLength int `yaml:"min_question_length"`
}

type LLMConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Provider    string  `yaml:"provider"`
	BaseURL     string  `yaml:"base_url"`
	Key         string  `yaml:"key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

// LoadConfig reads the yaml file at path, fills defaults and applies
// environment overrides (a .env file is loaded first when present)
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// .env is optional
	_ = godotenv.Load()

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Server.MaxUploadMB <= 0 {
		c.Server.MaxUploadMB = defaultMaxUploadMB
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Summary.KeyPoints <= 0 {
		c.Summary.KeyPoints = defaultKeyPoints
	}
	if c.Quiz.DefaultQuestions <= 0 {
		c.Quiz.DefaultQuestions = defaultQuestions
	}
	if c.Quiz.QuestionMaxLength <= 0 {
		c.Quiz.QuestionMaxLength = defaultQuestionMaxLength
	}
	if c.Quiz.MinQuestionLength <= 0 {
		c.Quiz.MinQuestionLength = defaultMinQuestionLength
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderOllama
	}
	if c.QuestionGenerator.Provider == "" {
		c.QuestionGenerator.Provider = ProviderOllama
	}
}

func (c *Config) applyEnv() {
	setString(&c.Server.Addr, "SERVER_ADDR")
	setString(&c.Server.Mode, "GIN_MODE")
	setString(&c.Log.Level, "LOG_LEVEL")
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	setString(&c.Summarizer.BaseURL, "SUMMARIZER_BASE_URL")
	setString(&c.Summarizer.Key, "SUMMARIZER_API_KEY")
	setString(&c.Summarizer.Model, "SUMMARIZER_MODEL")
	setBool(&c.Summarizer.Enabled, "SUMMARIZER_ENABLED")

	setString(&c.QuestionGenerator.BaseURL, "QUESTION_GEN_BASE_URL")
	setString(&c.QuestionGenerator.Key, "QUESTION_GEN_API_KEY")
	setString(&c.QuestionGenerator.Model, "QUESTION_GEN_MODEL")
	setBool(&c.QuestionGenerator.Enabled, "QUESTION_GEN_ENABLED")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Validate checks the settings the service cannot start without. Model settings
// are only checked for enabled models.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	for name, llm := range map[string]LLMConfig{
		"summarizer":         c.Summarizer,
		"question_generator": c.QuestionGenerator,
	} {
		if !llm.Enabled {
			continue
		}
		if err := llm.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (l LLMConfig) validate() error {
	switch l.Provider {
	case ProviderOllama, ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unsupported provider %q", l.Provider)
	}
	if l.Model == "" {
		return errors.New("model is required")
	}
	if l.Provider != ProviderOllama && l.Key == "" {
		return errors.New("key is required")
	}
	return nil
}
