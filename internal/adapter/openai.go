package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	openai "github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"

	"github.com/jexer122625/regassist/internal/metrics"
)

const openAIDefaultBaseURL = "https://api.openai.com/v1"

// Shape names a call surface an OpenAI-compatible endpoint can expose.
type Shape string

const (
	ShapeChat      Shape = "chat"
	ShapeResponses Shape = "responses"
	ShapeLegacy    Shape = "legacy"
)

func (s Shape) Valid() bool {
	switch s {
	case ShapeChat, ShapeResponses, ShapeLegacy:
		return true
	}
	return false
}

const (
	unsupportedShapeMessage = "Configured OpenAI client does not expose a supported API (chat, responses or legacy). Try: openai migrate, or adjust openai.api_shapes."
	migrationHint           = " (if you recently upgraded the OpenAI client or endpoint, try: openai migrate)"
)

// OpenAIAdapter talks to an OpenAI-compatible endpoint. Shapes are the call
// surfaces known to work against BaseURL; they are tried in the fixed order
// chat, responses, legacy and the first enabled one is used.
type OpenAIAdapter struct {
	BaseURL string
	Shapes  []Shape
	Enabled bool
	Client  *http.Client
}

type strategy struct {
	shape Shape
	call  func(ctx context.Context, apiKey string, req Request) (string, error)
}

func (o *OpenAIAdapter) Name() string {
	return fmt.Sprintf("OpenAI (%s)", o.baseURL())
}

func (o *OpenAIAdapter) Available() bool {
	return o.Enabled
}

func (o *OpenAIAdapter) Generate(ctx context.Context, apiKey string, req Request) (string, error) {
	s, ok := o.pick()
	if !ok {
		return "", newError(ErrUnsupportedClientShape, unsupportedShapeMessage)
	}

	text, err := s.call(ctx, apiKey, req)
	if err != nil {
		metrics.StrategyCalls.WithLabelValues(string(ProviderOpenAI), string(s.shape), "error").Inc()
		return "", newError(ErrProviderCallFailed, withMigrationHint(err.Error()))
	}
	metrics.StrategyCalls.WithLabelValues(string(ProviderOpenAI), string(s.shape), "ok").Inc()
	return text, nil
}

func (o *OpenAIAdapter) strategies() []strategy {
	return []strategy{
		{shape: ShapeChat, call: o.chat},
		{shape: ShapeResponses, call: o.responses},
		{shape: ShapeLegacy, call: o.legacy},
	}
}

func (o *OpenAIAdapter) pick() (strategy, bool) {
	for _, s := range o.strategies() {
		if o.supports(s.shape) {
			return s, true
		}
	}
	return strategy{}, false
}

func (o *OpenAIAdapter) supports(shape Shape) bool {
	for _, s := range o.Shapes {
		if s == shape {
			return true
		}
	}
	return false
}

func (o *OpenAIAdapter) baseURL() string {
	if o.BaseURL == "" {
		return openAIDefaultBaseURL
	}
	return strings.TrimRight(o.BaseURL, "/")
}

func (o *OpenAIAdapter) chat(ctx context.Context, apiKey string, req Request) (string, error) {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = o.baseURL()
	if o.Client != nil {
		cfg.HTTPClient = o.Client
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return "", err
	}
	return chatText(resp), nil
}

func (o *OpenAIAdapter) responses(ctx context.Context, apiKey string, req Request) (string, error) {
	resp, err := o.rest(apiKey).R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":             req.Model,
			"input":             req.Prompt,
			"max_output_tokens": req.MaxTokens,
		}).
		Post("/responses")
	if err != nil {
		return "", fmt.Errorf("responses: request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("responses: %w", statusError(resp))
	}
	return responsesText(resp.Body()), nil
}

func (o *OpenAIAdapter) legacy(ctx context.Context, apiKey string, req Request) (string, error) {
	resp, err := o.rest(apiKey).R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": req.Model,
			"messages": []map[string]string{
				{"role": "user", "content": req.Prompt},
			},
			"max_tokens":  req.MaxTokens,
			"temperature": req.Temperature,
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("legacy completion: request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("legacy completion: %w", statusError(resp))
	}
	text, err := legacyText(resp.Body())
	if err != nil {
		return "", fmt.Errorf("legacy completion: %w", err)
	}
	return text, nil
}

func (o *OpenAIAdapter) rest(apiKey string) *resty.Client {
	var c *resty.Client
	if o.Client != nil {
		c = resty.NewWithClient(o.Client)
	} else {
		c = resty.New()
	}
	return c.
		SetBaseURL(o.baseURL()).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
}

func statusError(resp *resty.Response) error {
	if msg := gjson.GetBytes(resp.Body(), "error.message").String(); msg != "" {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode(), msg)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode())
}

func withMigrationHint(msg string) string {
	if strings.Contains(msg, "ChatCompletion") || strings.Contains(strings.ToLower(msg), "chat") {
		return msg + migrationHint
	}
	return msg
}
