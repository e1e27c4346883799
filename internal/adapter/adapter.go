package adapter

import (
	"context"
	"strings"
)

// Generation defaults applied by NewRequest.
const (
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.2
)

// Provider identifies an LLM vendor family.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// ProviderFor picks a provider from the model identifier prefix. Unknown
// prefixes are treated as OpenAI-compatible.
func ProviderFor(model string) Provider {
	switch {
	case strings.HasPrefix(model, "gpt"):
		return ProviderOpenAI
	case strings.HasPrefix(model, "gemini"):
		return ProviderGemini
	default:
		return ProviderOpenAI
	}
}

// Request is a provider-agnostic generation request.
type Request struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// NewRequest returns a Request with the default token budget and temperature.
func NewRequest(model, prompt string) Request {
	return Request{
		Model:       model,
		Prompt:      prompt,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// LLMAdapter defines the contract for a provider backend. Generate is only
// called once the router has resolved a credential.
type LLMAdapter interface {
	Name() string
	Generate(ctx context.Context, apiKey string, req Request) (string, error)
	Available() bool
}

// ModelInfo is exposed via GET /api/models.
type ModelInfo struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Provider string `json:"provider" yaml:"provider"`
}

// DefaultModels is the model list offered to clients when none is configured.
func DefaultModels() []ModelInfo {
	return []ModelInfo{
		{ID: "gpt-4o-mini", Name: "GPT-4o mini", Provider: string(ProviderOpenAI)},
		{ID: "gpt-4o", Name: "GPT-4o", Provider: string(ProviderOpenAI)},
		{ID: "gpt-4.1-mini", Name: "GPT-4.1 mini", Provider: string(ProviderOpenAI)},
		{ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash", Provider: string(ProviderGemini)},
		{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", Provider: string(ProviderGemini)},
		{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", Provider: string(ProviderGemini)},
	}
}
