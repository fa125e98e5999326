package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/backlog/internal/core/service"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

var successResponse = SuccessResponse{Success: true}

const maxRequestBodySize = 1 << 20

// decodeBody parses and validates the JSON body of the request.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(service.ErrInvalidRequest, err.Error())
	}

	return h.validateRequest(r, v)
}

func (h *Handler) validateRequest(r *http.Request, v any) error {
	if err := h.validate.StructCtx(r.Context(), v); err != nil {
		slog.DebugContext(r.Context(), "invalid request", slog.String("error", err.Error()))
		return errors.Wrap(service.ErrInvalidRequest, err.Error())
	}

	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := encoder.Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}
