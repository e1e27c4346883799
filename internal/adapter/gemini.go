package adapter

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/jexer122625/regassist/internal/metrics"
)

// GeminiAdapter calls the Gemini generateContent API through the genai SDK.
// A client is configured per call so credential updates take effect
// immediately. The model string is forwarded verbatim.
type GeminiAdapter struct {
	BaseURL string
	Enabled bool
	Client  *http.Client
}

func (g *GeminiAdapter) Name() string { return "Gemini" }

func (g *GeminiAdapter) Available() bool { return g.Enabled }

func (g *GeminiAdapter) Generate(ctx context.Context, apiKey string, req Request) (string, error) {
	text, err := g.generate(ctx, apiKey, req)
	if err != nil {
		metrics.StrategyCalls.WithLabelValues(string(ProviderGemini), "generate_content", "error").Inc()
		return "", newError(ErrProviderCallFailed, fmt.Sprintf("Gemini error: %v", err))
	}
	metrics.StrategyCalls.WithLabelValues(string(ProviderGemini), "generate_content", "ok").Inc()
	return text, nil
}

func (g *GeminiAdapter) generate(ctx context.Context, apiKey string, req Request) (string, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.Client,
	}
	if g.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	})
	if err != nil {
		return "", err
	}
	return geminiText(resp), nil
}
