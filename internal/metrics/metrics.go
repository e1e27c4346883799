package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "regassist_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerateDuration tracks vendor round-trip latency per provider.
	GenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "regassist_generate_duration_seconds",
		Help:    "Time spent waiting on the LLM provider.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"provider"})

	// PromptChars tracks the distribution of prompt lengths sent to providers.
	PromptChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "regassist_prompt_chars",
		Help:    "Number of characters in prompts sent to providers.",
		Buckets: []float64{250, 500, 1000, 2500, 5000, 7500, 10000, 15000},
	})

	// StrategyCalls counts calls per OpenAI shape or Gemini path and outcome.
	StrategyCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "regassist_strategy_calls_total",
		Help: "Provider calls by strategy and outcome.",
	}, []string{"provider", "strategy", "outcome"})

	// CredentialConfigured is 1 when a credential is available for the provider.
	CredentialConfigured = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "regassist_credential_configured",
		Help: "Whether a provider credential is configured (1) or not (0).",
	}, []string{"provider"})
)
