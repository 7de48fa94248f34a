package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/briefing/config"
	"github.com/adrianliechti/briefing/pkg/broker"
	"github.com/adrianliechti/briefing/pkg/pipeline"

	"github.com/go-chi/chi/v5"
)

// DefaultMaxBodySize bounds request bodies. Audio clips arrive inline as
// base64, so it is generous.
const DefaultMaxBodySize = 64 << 20

type Handler struct {
	pipeline *pipeline.Pipeline
	broker   broker.Provider

	logger *slog.Logger

	maxBodySize int64
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		pipeline: cfg.Pipeline,
		broker:   cfg.Broker,

		logger: slog.Default(),

		maxBodySize: DefaultMaxBodySize,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/healthz", h.handleHealth)

	r.Post("/summarize", h.handleSummarize)

	r.Get("/credentials", h.handleCredentials)
	r.Post("/credentials", h.handleCredentials)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func writeHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")
}

func writeJson(w http.ResponseWriter, code int, v any) {
	writeHeaders(w)
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string, err error) {
	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	writeJson(w, code, &pipeline.ErrorResponse{
		Message: message,
		Error:   text,
	})
}
