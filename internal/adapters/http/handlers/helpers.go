package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MB.
const maxJSONBodyBytes = 1 << 20

// pathID returns the named chi URL parameter, trimmed. A blank value is a
// validation error.
func pathID(r *http.Request, param string) (string, error) {
	if id := strings.TrimSpace(chi.URLParam(r, param)); id != "" {
		return id, nil
	}
	return "", &domain.ValidationError{Fields: map[string]string{param: "is required"}}
}

// writeJSON encodes v with status. An encoding failure can only be logged;
// the status line is already out.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// validatable is implemented by request DTOs.
type validatable interface {
	Validate() error
}

// decodeAndValidate reads exactly one JSON object from the body into dst,
// rejecting unknown fields and trailing data, then validates it. On failure
// it writes a 400 problem document and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil && !errors.Is(dec.Decode(&struct{}{}), io.EOF) {
		err = errors.New("trailing data after JSON object")
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": bodyProblem(err)},
		})
		return false
	}

	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return "exceeds 1 MB"
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		return strings.TrimPrefix(err.Error(), "json: ")
	default:
		return "invalid JSON"
	}
}
