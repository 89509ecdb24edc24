package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/utils"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// maxEnvelopeBody bounds PUT bodies. An envelope is a few hundred bytes.
const maxEnvelopeBody = 64 << 10

func (h *Handler) getEnvelope(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	env, err := h.services.EnvelopeDocumentService.GetEnvelope(r.Context(), accountID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, env, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing envelope response")
	}
}

func (h *Handler) putEnvelope(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var env models.Envelope
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEnvelopeBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		h.writeServiceError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
		return
	}

	if env.AccountID == "" {
		env.AccountID = accountID
	}
	if env.AccountID != accountID {
		h.writeServiceError(w, r, ErrAccountMismatch)
		return
	}

	if err := h.services.EnvelopeDocumentService.PutEnvelope(r.Context(), env); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteEnvelope(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	if err := h.services.EnvelopeDocumentService.DeleteEnvelope(r.Context(), accountID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, publicMessage(err, status), status)
}
