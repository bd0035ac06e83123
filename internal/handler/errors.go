package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/travel-booking/internal/domain"
	"github.com/pkordes/travel-booking/internal/handler/gen"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message (e.g. "booking not found") because the
// handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err))
}

// requestBody returns an ErrorResponse for a request rejected before
// reaching the service layer (e.g. missing body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

func invalidStateBody(err error) gen.ErrorResponse {
	return errorBody("invalid_state", unwrapMessage(err))
}

func conflictBody(message string) gen.ErrorResponse {
	return errorBody("conflict", message)
}

func unauthorizedBody(message string) gen.UnauthorizedJSONResponse {
	return gen.UnauthorizedJSONResponse(errorBody("unauthorized", message))
}

// sentinelPrefixes are the texts of the domain sentinels as they appear in a
// wrapped error chain ("<sentinel>: <reason>").
var sentinelPrefixes = []string{
	domain.ErrValidation.Error() + ": ",
	domain.ErrInvalidState.Error() + ": ",
	domain.ErrUnauthorized.Error() + ": ",
	domain.ErrConflict.Error() + ": ",
	domain.ErrNotFound.Error() + ": ",
}

// unwrapMessage extracts the human-readable reason from a wrapped sentinel error.
// e.g. "service.BookingService.Reserve: validation error: only 3 seats available for this package"
// → "only 3 seats available for this package"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	cut := -1
	for _, prefix := range sentinelPrefixes {
		if i := strings.LastIndex(msg, prefix); i >= 0 && i+len(prefix) > cut {
			cut = i + len(prefix)
		}
	}
	if cut < 0 || cut >= len(msg) {
		return msg
	}
	return msg[cut:]
}

// StrictOptions returns the error handlers for the strict server wrapper.
// Undecodable request bodies become 400 (or 413 once the body limit is
// crossed); errors returned by a handler are logged and become a 500 whose
// body does not echo the error.
func StrictOptions(log *slog.Logger) gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("payload_too_large", "request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", chimw.GetReqID(r.Context()),
				"error", err,
			)
			writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
		},
	}
}

// ParamErrorHandler reports path and query parameters that fail to bind.
// Use it as gen.ChiServerOptions.ErrorHandlerFunc.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
}

func writeJSON(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
