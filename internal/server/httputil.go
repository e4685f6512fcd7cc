package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/uaetax/tax-calculator/internal/calculation"
)

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON encode error: %v", err)
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// validationErrorToHTTP maps engine validation failures to HTTP responses.
// Missing fields and de-minimis gating are client conditions, never 500s.
func validationErrorToHTTP(w http.ResponseWriter, err error) {
	if fields, ok := calculation.IsMissingFields(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"code":           "MISSING_REQUIRED_FIELDS",
			"error":          err.Error(),
			"missing_fields": fields,
		})
		return
	}
	if errors.Is(err, calculation.ErrDeMinimisNotTested) {
		writeError(w, http.StatusUnprocessableEntity, "DE_MINIMIS_NOT_TESTED", err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}
