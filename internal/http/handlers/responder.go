package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/football-career-sim/internal/app/careers"
	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/http/middleware"
	"github.com/preston-bernstein/football-career-sim/internal/http/requestutil"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
	"github.com/preston-bernstein/football-career-sim/internal/transfers"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps career errors onto status codes. Anything
// unrecognised is logged and reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(loggerFromContext(r, logger), "request failed", err)
		writeError(w, r, status, "internal error", logger)
		return
	}
	writeError(w, r, status, err.Error(), logger)
}

func statusFor(err error) int {
	if _, ok := domain.AsPreconditionError(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, careers.ErrNotFound), errors.Is(err, careers.ErrOfferNotFound):
		return http.StatusNotFound
	case errors.Is(err, careers.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, careers.ErrRetired),
		errors.Is(err, careers.ErrSeasonInProgress),
		errors.Is(err, careers.ErrNoSeasonInProgress),
		errors.Is(err, careers.ErrContractExpired),
		errors.Is(err, careers.ErrMustRetire),
		errors.Is(err, transfers.ErrLoanNotAllowed),
		errors.Is(err, transfers.ErrRenewalRefused):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a single JSON object, rejecting unknown fields.
func decodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
