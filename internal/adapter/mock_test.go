package adapter

import (
	"context"
	"testing"
	"time"
)

func TestMockAdapterGenerate(t *testing.T) {
	m := &MockAdapter{}

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"first line only", "Organize this\n\nSource:\nbody", "## Mock response (mock)\n\nOrganize this"},
		{"trims whitespace", "  hello  ", "## Mock response (mock)\n\nhello"},
		{"empty prompt", "", "## Mock response (mock)\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Generate(context.Background(), "", NewRequest("mock", tt.prompt))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockAdapterContextCancel(t *testing.T) {
	m := &MockAdapter{Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, "", NewRequest("mock", "hello"))
	if err == nil {
		t.Error("expected error on cancelled context, got nil")
	}
}

func TestMockAdapterAvailable(t *testing.T) {
	m := &MockAdapter{}
	if !m.Available() {
		t.Error("mock adapter should always be available")
	}
	if m.Name() != "Mock" {
		t.Errorf("got %q, want %q", m.Name(), "Mock")
	}
}
