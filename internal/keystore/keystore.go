package keystore

import (
	"os"
	"sync"
)

// Provider names understood by the store.
const (
	OpenAI = "openai"
	Gemini = "gemini"
)

// envVars lists the environment variables consulted per provider, in lookup order.
var envVars = map[string][]string{
	OpenAI: {"OPENAI_API_KEY"},
	Gemini: {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
}

// Store holds provider credentials for the lifetime of the process.
type Store interface {
	Get(provider string) (string, bool)
	Set(provider, secret string)
}

// Memory is an in-memory Store seeded from the environment.
// Values are never persisted and never logged.
type Memory struct {
	mu     sync.RWMutex
	keys   map[string]string
	getenv func(string) string
}

// NewMemory seeds a store from getenv. A nil getenv uses os.Getenv.
func NewMemory(getenv func(string) string) *Memory {
	if getenv == nil {
		getenv = os.Getenv
	}
	m := &Memory{
		keys:   make(map[string]string, len(envVars)),
		getenv: getenv,
	}
	for provider := range envVars {
		if v := m.fromEnv(provider); v != "" {
			m.keys[provider] = v
		}
	}
	return m
}

// Get returns the stored credential, falling back to the environment when
// nothing has been stored for the provider.
func (m *Memory) Get(provider string) (string, bool) {
	m.mu.RLock()
	v := m.keys[provider]
	m.mu.RUnlock()
	if v != "" {
		return v, true
	}
	if v := m.fromEnv(provider); v != "" {
		return v, true
	}
	return "", false
}

// Set overwrites the credential for provider. Empty secrets are ignored.
func (m *Memory) Set(provider, secret string) {
	if secret == "" {
		return
	}
	m.mu.Lock()
	m.keys[provider] = secret
	m.mu.Unlock()
}

func (m *Memory) fromEnv(provider string) string {
	for _, name := range envVars[provider] {
		if v := m.getenv(name); v != "" {
			return v
		}
	}
	return ""
}
