package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// writeError answers with the same error body the API handlers use.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct { //nolint:errcheck
		Errors gqlerror.List `json:"errors"`
	}{
		Errors: gqlerror.List{{
			Message:    message,
			Extensions: map[string]any{"code": code},
		}},
	})
}
