package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/jexer122625/regassist/internal/adapter"
)

// Config holds all application configuration.
type Config struct {
	Port          int    `yaml:"port" env:"PORT"`
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat     string `yaml:"log_format" env:"LOG_FORMAT"`
	DefaultModel  string `yaml:"default_model" env:"DEFAULT_MODEL"`
	MaxBodyBytes  int64  `yaml:"max_body_bytes" env:"MAX_BODY_BYTES"`
	PDFExtraction bool   `yaml:"pdf_extraction" env:"PDF_EXTRACTION"`

	OpenAI OpenAIConfig `yaml:"openai" envPrefix:"OPENAI_"`
	Gemini GeminiConfig `yaml:"gemini" envPrefix:"GEMINI_"`

	Models []adapter.ModelInfo `yaml:"models"`
}

// OpenAIConfig selects the OpenAI-compatible endpoint and which call shapes
// the deployed client supports.
type OpenAIConfig struct {
	Enabled   bool     `yaml:"enabled" env:"ENABLED"`
	BaseURL   string   `yaml:"base_url" env:"BASE_URL"`
	APIShapes []string `yaml:"api_shapes" env:"API_SHAPES" envSeparator:","`
}

type GeminiConfig struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED"`
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

const envPrefix = "REGASSIST_"

func defaults() Config {
	return Config{
		Port:          5000,
		LogLevel:      "info",
		LogFormat:     "json",
		DefaultModel:  "gpt-4o-mini",
		MaxBodyBytes:  32 << 20,
		PDFExtraction: true,
		OpenAI: OpenAIConfig{
			Enabled:   true,
			APIShapes: []string{string(adapter.ShapeChat), string(adapter.ShapeResponses), string(adapter.ShapeLegacy)},
		},
		Gemini: GeminiConfig{
			Enabled: true,
		},
		Models: adapter.DefaultModels(),
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies REGASSIST_* environment overrides. An empty path returns defaults
// plus env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Shapes converts the configured api_shapes into adapter shapes.
func (c OpenAIConfig) Shapes() []adapter.Shape {
	shapes := make([]adapter.Shape, 0, len(c.APIShapes))
	for _, s := range c.APIShapes {
		shapes = append(shapes, adapter.Shape(s))
	}
	return shapes
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.DefaultModel == "" {
		return fmt.Errorf("config: default_model is required")
	}
	for _, s := range c.OpenAI.Shapes() {
		if !s.Valid() {
			return fmt.Errorf("config: unknown openai api shape %q", s)
		}
	}
	return nil
}
