// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chainsafe/kyc-middleware/internal/metrics"
	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// errorResponse is the envelope every failed request gets. The code field
// mirrors the HTTP status so clients parsing only the body still see it.
type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
// This allows using clean error-returning handlers with any router (chi, http.ServeMux, etc.)
//
// Usage with chi:
//
//	r.Post("/deploy", http.HandleError(handler.deploy))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// DefaultErrorHandler maps errors returned from HTTP handlers onto the error
// envelope. Anything that is not already a ServiceError is normalized through
// GeneralError first, so raw internal error text never reaches a client.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		errors.As(apperrors.GeneralError(err), &svcErr)
	}
	metrics.ErrorsTotal.WithLabelValues(svcErr.Category.String()).Inc()

	status := svcErr.StatusCode()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&errorResponse{
		ErrMsg:     svcErr.Message,
		ErrMsgCode: status,
	})
}
