package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jexer122625/regassist/internal/keystore"
)

type apiKeysRequest struct {
	OpenAI string `json:"openai"`
	Gemini string `json:"gemini"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// SetAPIKeys stores the supplied credentials. Absent or empty values leave
// the current credential in place; values are never echoed back.
func SetAPIKeys(keys keystore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req apiKeysRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		keys.Set(keystore.OpenAI, req.OpenAI)
		keys.Set(keystore.Gemini, req.Gemini)

		log.Info().
			Bool("openai", req.OpenAI != "").
			Bool("gemini", req.Gemini != "").
			Msg("api keys updated")

		writeJSON(w, http.StatusOK, statusResponse{Status: "saved"})
	}
}
