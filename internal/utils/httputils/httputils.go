package httputils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shivanshkc/oidconnect/internal/utils/errutils"
)

// Write writes the given headers and body to the response writer along with
// the given status code. A nil body writes no body at all.
func Write(w http.ResponseWriter, status int, headers map[string]string, body any) {
	for key, value := range headers {
		w.Header().Set(key, value)
	}

	if body == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response body", "err", err)
	}
}

// WriteErr writes the given error to the response writer. Errors that are not
// HTTPErrors are served as a generic internal server error.
func WriteErr(w http.ResponseWriter, err error) {
	httpErr := errutils.ToHTTPError(err)
	Write(w, httpErr.Status, nil, httpErr)
}
