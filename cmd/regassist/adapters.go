package main

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jexer122625/regassist/internal/adapter"
	"github.com/jexer122625/regassist/internal/config"
	"github.com/jexer122625/regassist/internal/keystore"
)

func buildRouter(cfg config.Config, keys *keystore.Memory, useMock bool) *adapter.Router {
	if useMock {
		keys.Set(keystore.OpenAI, "mock")
		keys.Set(keystore.Gemini, "mock")
		log.Info().Msg("mode: mock adapters enabled")
		mock := &adapter.MockAdapter{Delay: 500 * time.Millisecond}
		return adapter.NewRouter(keys, map[adapter.Provider]adapter.LLMAdapter{
			adapter.ProviderOpenAI: mock,
			adapter.ProviderGemini: mock,
		})
	}
	return adapter.NewRouter(keys, providerAdapters(cfg))
}

// providerAdapters builds the vendor adapters. Calls are bounded only by the
// inbound request context; no client-side timeout is set.
func providerAdapters(cfg config.Config) map[adapter.Provider]adapter.LLMAdapter {
	return map[adapter.Provider]adapter.LLMAdapter{
		adapter.ProviderOpenAI: &adapter.OpenAIAdapter{
			BaseURL: cfg.OpenAI.BaseURL,
			Shapes:  cfg.OpenAI.Shapes(),
			Enabled: cfg.OpenAI.Enabled,
		},
		adapter.ProviderGemini: &adapter.GeminiAdapter{
			BaseURL: cfg.Gemini.BaseURL,
			Enabled: cfg.Gemini.Enabled,
		},
	}
}
