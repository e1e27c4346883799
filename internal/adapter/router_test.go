package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	name      string
	available bool
	text      string
	err       error

	calls  int
	gotKey string
	gotReq Request
}

func (f *fakeAdapter) Name() string    { return f.name }
func (f *fakeAdapter) Available() bool { return f.available }
func (f *fakeAdapter) Generate(ctx context.Context, apiKey string, req Request) (string, error) {
	f.calls++
	f.gotKey = apiKey
	f.gotReq = req
	return f.text, f.err
}

type mapKeys map[string]string

func (m mapKeys) Get(provider string) (string, bool) {
	v, ok := m[provider]
	return v, ok && v != ""
}

func TestProviderFor(t *testing.T) {
	tests := []struct {
		model string
		want  Provider
	}{
		{"gpt-4o-mini", ProviderOpenAI},
		{"gpt-x", ProviderOpenAI},
		{"gemini-1.5-flash", ProviderGemini},
		{"gemini", ProviderGemini},
		{"claude-3", ProviderOpenAI},
		{"", ProviderOpenAI},
		{"Gemini-1.5", ProviderOpenAI},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, ProviderFor(tt.model))
		})
	}
}

func TestNewRequestDefaults(t *testing.T) {
	req := NewRequest("gpt-4o-mini", "hi")
	assert.Equal(t, 1024, req.MaxTokens)
	assert.InDelta(t, 0.2, req.Temperature, 1e-9)
}

func TestRouterDispatch(t *testing.T) {
	oa := &fakeAdapter{name: "openai", available: true, text: "from openai"}
	gm := &fakeAdapter{name: "gemini", available: true, text: "from gemini"}
	r := NewRouter(mapKeys{"openai": "sk-1", "gemini": "g-1"}, map[Provider]LLMAdapter{
		ProviderOpenAI: oa,
		ProviderGemini: gm,
	})

	got, err := r.Generate(context.Background(), NewRequest("gemini-x", "hi"))
	require.NoError(t, err)
	assert.Equal(t, "from gemini", got)
	assert.Equal(t, "g-1", gm.gotKey)

	got, err = r.Generate(context.Background(), NewRequest("mistral-large", "hi"))
	require.NoError(t, err)
	assert.Equal(t, "from openai", got)
	assert.Equal(t, "sk-1", oa.gotKey)
	assert.Equal(t, "mistral-large", oa.gotReq.Model)
}

func TestRouterMissingCredentialSkipsVendor(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"gpt-4o-mini", "OpenAI API key not set."},
		{"gemini-1.5-pro", "Gemini API key not set. Provide GEMINI_API_KEY or GOOGLE_API_KEY."},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			oa := &fakeAdapter{available: true}
			gm := &fakeAdapter{available: true}
			r := NewRouter(mapKeys{}, map[Provider]LLMAdapter{ProviderOpenAI: oa, ProviderGemini: gm})

			got, err := r.Generate(context.Background(), NewRequest(tt.model, "hi"))
			assert.Empty(t, got)
			require.ErrorIs(t, err, ErrMissingCredential)
			assert.Equal(t, tt.want, err.Error())
			assert.Zero(t, oa.calls+gm.calls)
		})
	}
}

func TestRouterProviderUnavailable(t *testing.T) {
	oa := &fakeAdapter{available: false}
	r := NewRouter(mapKeys{"openai": "sk"}, map[Provider]LLMAdapter{ProviderOpenAI: oa})

	_, err := r.Generate(context.Background(), NewRequest("gpt-4o", "hi"))
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Zero(t, oa.calls)
}

func TestRouterUnsupportedProvider(t *testing.T) {
	r := NewRouter(mapKeys{"gemini": "g"}, map[Provider]LLMAdapter{})

	_, err := r.Generate(context.Background(), NewRequest("gemini-x", "hi"))
	require.ErrorIs(t, err, ErrUnsupportedProvider)
	assert.Equal(t, "Unsupported model/provider.", err.Error())
}

func TestRouterWrapsPlainErrors(t *testing.T) {
	oa := &fakeAdapter{available: true, err: errors.New("boom")}
	r := NewRouter(mapKeys{"openai": "sk"}, map[Provider]LLMAdapter{ProviderOpenAI: oa})

	_, err := r.Generate(context.Background(), NewRequest("gpt-4o", "hi"))
	require.ErrorIs(t, err, ErrProviderCallFailed)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "boom", ae.Message)
}

func TestRouterKeepsAdapterErrors(t *testing.T) {
	oa := &fakeAdapter{available: true, err: newError(ErrUnsupportedClientShape, "no shape")}
	r := NewRouter(mapKeys{"openai": "sk"}, map[Provider]LLMAdapter{ProviderOpenAI: oa})

	_, err := r.Generate(context.Background(), NewRequest("gpt-4o", "hi"))
	require.ErrorIs(t, err, ErrUnsupportedClientShape)
	assert.Equal(t, "no shape", err.Error())
}

func TestRouterStatusHidesKeys(t *testing.T) {
	r := NewRouter(mapKeys{"openai": "sk-secret"}, map[Provider]LLMAdapter{
		ProviderOpenAI: &fakeAdapter{name: "OpenAI", available: true},
		ProviderGemini: &fakeAdapter{name: "Gemini", available: false},
	})

	st := r.Status()
	require.Len(t, st, 2)
	assert.Equal(t, ProviderStatus{Name: "OpenAI", Available: true, Configured: true}, st[ProviderOpenAI])
	assert.Equal(t, ProviderStatus{Name: "Gemini", Available: false, Configured: false}, st[ProviderGemini])
}
