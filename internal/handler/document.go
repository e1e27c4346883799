package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jexer122625/regassist/internal/adapter"
	"github.com/jexer122625/regassist/internal/extract"
	"github.com/jexer122625/regassist/internal/prompt"
)

const maxFormMemory = 8 << 20

// Generator is the provider adapter as seen by the handlers.
type Generator interface {
	Generate(ctx context.Context, req adapter.Request) (string, error)
}

type documentResponse struct {
	Result    string `json:"result"`
	Model     string `json:"model"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// TransformSubmission organizes a pasted or uploaded submission.
func TransformSubmission(gen Generator, ex extract.TextExtractor, defaultModel string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}
		text, err := documentText(r, ex)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("could not read uploaded file: %v", err))
			return
		}
		generate(w, r, gen, modelFrom(r, defaultModel), prompt.OrganizeSubmission(text))
	}
}

// TransformChecklist organizes a pasted or uploaded checklist.
func TransformChecklist(gen Generator, ex extract.TextExtractor, defaultModel string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}
		text, err := documentText(r, ex)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("could not read uploaded file: %v", err))
			return
		}
		generate(w, r, gen, modelFrom(r, defaultModel), prompt.OrganizeChecklist(text))
	}
}

// RunReview evaluates a submission against a checklist.
func RunReview(gen Generator, defaultModel string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}
		p := prompt.Review(r.FormValue("checklist"), r.FormValue("submission"))
		generate(w, r, gen, modelFrom(r, defaultModel), p)
	}
}

func generate(w http.ResponseWriter, r *http.Request, gen Generator, model, p string) {
	start := time.Now()
	text, err := gen.Generate(r.Context(), adapter.NewRequest(model, p))
	elapsed := time.Since(start)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, documentResponse{
		Result:    text,
		Model:     model,
		ElapsedMs: elapsed.Milliseconds(),
	})
}

// parseForm accepts multipart and urlencoded bodies alike. ParseForm runs
// first because ParseMultipartForm drops urlencoded read errors.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	err := r.ParseForm()
	if err == nil {
		err = r.ParseMultipartForm(maxFormMemory)
	}
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return true
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	writeError(w, http.StatusBadRequest, "invalid form body")
	return false
}

func modelFrom(r *http.Request, defaultModel string) string {
	if m := strings.TrimSpace(r.FormValue("model")); m != "" {
		return m
	}
	return defaultModel
}

// documentText returns the uploaded file's text when a file is present and
// the pasted text otherwise. PDFs go through the extractor; anything else is
// read as UTF-8 and yields "" when it is not valid UTF-8.
func documentText(r *http.Request, ex extract.TextExtractor) (string, error) {
	pasted := r.FormValue("pasted")

	f, hdr, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return pasted, nil
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(hdr.Filename), ".pdf") {
		return ex.ExtractText(f)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", nil
	}
	return string(data), nil
}
