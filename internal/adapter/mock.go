package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockAdapter returns a canned markdown answer with a configurable delay.
// Used for development and testing without a real LLM backend.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Generate(ctx context.Context, apiKey string, req Request) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	first, _, _ := strings.Cut(strings.TrimSpace(req.Prompt), "\n")
	return fmt.Sprintf("## Mock response (%s)\n\n%s", req.Model, first), nil
}

func (m *MockAdapter) Available() bool { return true }
