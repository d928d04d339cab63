package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code.
// It handles encoding errors safely by marshaling first, preventing
// partial responses if encoding fails after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "Internal server error", "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondNoContent writes an empty 204 response
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ErrorResponse is the JSON body of every error response:
// {"error": <category>, "details": <message>, ...extra}
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details string                 `json:"details,omitempty"`
	Extra   map[string]interface{} `json:"-"`
}

// MarshalJSON flattens Extra into the top level of the body
func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(e.Extra)+2)
	for k, v := range e.Extra {
		m[k] = v
	}

	m["error"] = e.Error
	if e.Details != "" {
		m["details"] = e.Details
	}

	return json.Marshal(m)
}

// RespondError writes an error response with a category and details
func RespondError(w http.ResponseWriter, status int, category, details string) {
	writeError(w, status, ErrorResponse{Error: category, Details: details})
}

// RespondErrorWithExtras writes an error response with additional top-level fields
func RespondErrorWithExtras(w http.ResponseWriter, status int, category, details string, extras map[string]interface{}) {
	writeError(w, status, ErrorResponse{Error: category, Details: details, Extra: extras})
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	payload, err := json.Marshal(body)
	if err != nil {
		// Fallback to a fixed body if JSON encoding fails
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
