// Package respond writes the JSON bodies every API route uses.
//
// Success bodies are caller-defined; failures always have the shape
// {"message": "...", "error": "..."} with error optional. Internal detail
// (store errors, stack traces) is logged server-side by the handlers and
// never placed in a response.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorBody is the uniform failure payload.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSON writes v with the given status. Encoding failures are logged via
// the global zap logger; there is nothing useful to send the client at
// that point.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("response encode failed", zap.Error(err))
	}
}

// Error writes the uniform failure payload with only a message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Message: message})
}

// ErrorDetail writes the failure payload with a caller-safe detail string,
// used for validation failures where the detail helps the client fix the
// request.
func ErrorDetail(w http.ResponseWriter, status int, message, detail string) {
	JSON(w, status, ErrorBody{Message: message, Error: detail})
}
