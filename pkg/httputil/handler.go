package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// HandlerFunc is a custom handler that can return errors
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handler wraps an error-returning handler into a standard http.HandlerFunc
func Handler(h HandlerFunc, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			RespondError(w, r, err, log)
		}
	}
}

// Centralized error responder
func RespondError(w http.ResponseWriter, r *http.Request, err error, log *slog.Logger) {
	reqID := getReqID(r.Context())

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = &HTTPError{
			Status:  http.StatusInternalServerError,
			Message: "Internal Server Error",
			Cause:   err,
		}
	}

	// Logging based on severity
	if httpErr.Status >= 500 {
		log.Error("request failed",
			"error", err,
			"status", httpErr.Status,
			"path", r.URL.Path,
			"request_id", reqID,
		)
	} else {
		log.Warn("client error",
			"error", err,
			"status", httpErr.Status,
			"path", r.URL.Path,
			"request_id", reqID,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Status)

	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":      httpErr.Message,
		"request_id": reqID,
	})
}

// RespondJSON sends a successful JSON response
func RespondJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// getReqID safely extracts request ID from context
func getReqID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "unknown"
}
