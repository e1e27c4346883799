package adapter

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/jexer122625/regassist/internal/metrics"
)

// KeyReader resolves the credential for a provider name.
type KeyReader interface {
	Get(provider string) (string, bool)
}

// Router is the single generation entry point. It dispatches on the model
// prefix, resolves credentials and normalizes every failure into *Error.
type Router struct {
	keys     KeyReader
	adapters map[Provider]LLMAdapter
}

func NewRouter(keys KeyReader, adapters map[Provider]LLMAdapter) *Router {
	return &Router{keys: keys, adapters: adapters}
}

// ProviderStatus is the health view of one provider. It never carries the
// credential itself.
type ProviderStatus struct {
	Name       string `json:"name"`
	Available  bool   `json:"available"`
	Configured bool   `json:"configured"`
}

// Generate performs at most one vendor round trip. On success err is nil;
// on failure err is an *Error and the text is empty.
func (r *Router) Generate(ctx context.Context, req Request) (string, error) {
	provider := ProviderFor(req.Model)

	a, ok := r.adapters[provider]
	if !ok || a == nil {
		return "", newError(ErrUnsupportedProvider, "Unsupported model/provider.")
	}
	if !a.Available() {
		return "", newError(ErrProviderUnavailable, unavailableMessage(provider))
	}
	key, ok := r.keys.Get(string(provider))
	if !ok {
		return "", newError(ErrMissingCredential, missingCredentialMessage(provider))
	}

	metrics.PromptChars.Observe(float64(utf8.RuneCountInString(req.Prompt)))
	start := time.Now()
	text, err := a.Generate(ctx, key, req)
	elapsed := time.Since(start)
	metrics.GenerateDuration.WithLabelValues(string(provider)).Observe(elapsed.Seconds())

	if err != nil {
		var ae *Error
		if !errors.As(err, &ae) {
			ae = newError(ErrProviderCallFailed, err.Error())
		}
		log.Warn().
			Str("provider", string(provider)).
			Str("model", req.Model).
			Dur("elapsed", elapsed).
			Str("error", ae.Message).
			Msg("generate failed")
		return "", ae
	}

	log.Debug().
		Str("provider", string(provider)).
		Str("model", req.Model).
		Dur("elapsed", elapsed).
		Int("chars", len(text)).
		Msg("generate ok")
	return text, nil
}

// Status reports availability and credential presence per provider.
func (r *Router) Status() map[Provider]ProviderStatus {
	out := make(map[Provider]ProviderStatus, len(r.adapters))
	for p, a := range r.adapters {
		_, configured := r.keys.Get(string(p))
		metrics.CredentialConfigured.WithLabelValues(string(p)).Set(boolGauge(configured))
		out[p] = ProviderStatus{
			Name:       a.Name(),
			Available:  a.Available(),
			Configured: configured,
		}
	}
	return out
}

func unavailableMessage(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI client not enabled on server. Enable it with openai.enabled in config or REGASSIST_OPENAI_ENABLED=true"
	case ProviderGemini:
		return "Gemini client not enabled on server. Enable it with gemini.enabled in config or REGASSIST_GEMINI_ENABLED=true"
	default:
		return "Unsupported model/provider."
	}
}

func missingCredentialMessage(p Provider) string {
	if p == ProviderGemini {
		return "Gemini API key not set. Provide GEMINI_API_KEY or GOOGLE_API_KEY."
	}
	return "OpenAI API key not set."
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
