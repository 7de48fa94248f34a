package api

import (
	"io"
	"net/http"

	"github.com/adrianliechti/briefing/pkg/fault"
)

func (h *Handler) handleSummarize(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))

	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", fault.Validation("read request", err.Error()))
		return
	}

	result := h.pipeline.Handle(r.Context(), data)

	writeJson(w, result.Status, result.Body())
}
