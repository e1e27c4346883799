package handler

import (
	"net/http"

	"github.com/jexer122625/regassist/internal/adapter"
)

// StatusReporter exposes per-provider availability without credentials.
type StatusReporter interface {
	Status() map[adapter.Provider]adapter.ProviderStatus
}

type healthResponse struct {
	Status    string                            `json:"status"`
	Version   string                            `json:"version"`
	Providers map[string]adapter.ProviderStatus `json:"providers"`
}

func Health(sr StatusReporter, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := sr.Status()
		providers := make(map[string]adapter.ProviderStatus, len(st))
		for p, s := range st {
			providers[string(p)] = s
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Version:   version,
			Providers: providers,
		})
	}
}
