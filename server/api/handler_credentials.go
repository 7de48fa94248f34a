package api

import (
	"errors"
	"net/http"
	"time"
)

type Credentials struct {
	AccessKeyId     string `json:"AccessKeyId"`
	SecretAccessKey string `json:"SecretAccessKey"`
	SessionToken    string `json:"SessionToken"`

	Expiration string `json:"Expiration"`
	Region     string `json:"Region"`
}

func (h *Handler) handleCredentials(w http.ResponseWriter, r *http.Request) {
	if h.broker == nil {
		writeError(w, http.StatusInternalServerError, "Error assuming role", errors.New("credential broker is not configured"))
		return
	}

	creds, err := h.broker.Credentials(r.Context())

	if err != nil {
		h.logger.ErrorContext(r.Context(), "error assuming role", "error", err)

		writeError(w, http.StatusInternalServerError, "Error assuming role", err)
		return
	}

	writeJson(w, http.StatusOK, &Credentials{
		AccessKeyId:     creds.AccessKeyID,
		SecretAccessKey: creds.SecretAccessKey,
		SessionToken:    creds.SessionToken,

		Expiration: creds.Expiration.UTC().Format(time.RFC3339),
		Region:     creds.Region,
	})
}
