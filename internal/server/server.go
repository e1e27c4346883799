package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jexer122625/regassist/internal/adapter"
	"github.com/jexer122625/regassist/internal/extract"
	"github.com/jexer122625/regassist/internal/handler"
	"github.com/jexer122625/regassist/internal/keystore"
	"github.com/jexer122625/regassist/internal/middleware"
)

// Deps are the collaborators shared by every handler.
type Deps struct {
	Router       *adapter.Router
	Keys         keystore.Store
	Extractor    extract.TextExtractor
	Models       []adapter.ModelInfo
	DefaultModel string
	MaxBodyBytes int64
	Version      string
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(d Deps) http.Handler {
	ex := d.Extractor
	if ex == nil {
		ex = extract.Nop{}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /set_api_keys", handler.SetAPIKeys(d.Keys))
	mux.HandleFunc("POST /transform_submission", handler.TransformSubmission(d.Router, ex, d.DefaultModel))
	mux.HandleFunc("POST /transform_checklist", handler.TransformChecklist(d.Router, ex, d.DefaultModel))
	mux.HandleFunc("POST /run_review", handler.RunReview(d.Router, d.DefaultModel))
	mux.HandleFunc("GET /api/health", handler.Health(d.Router, d.Version))
	mux.HandleFunc("GET /api/models", handler.Models(d.Models))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /{$}", handler.Index())

	return middleware.Chain(mux, d.MaxBodyBytes)
}
