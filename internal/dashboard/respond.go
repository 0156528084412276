package dashboard

import (
	"Steelcheck/internal/calc/calcerr"
	"Steelcheck/internal/validate"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps calculation errors to 400 and keeps their field and reason.
// Anything else is a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ce *calcerr.Error
	if errors.As(err, &ce) {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:  err.Error(),
			Field:  ce.Field,
			Kind:   ce.Kind.String(),
			Reason: ce.Reason,
		})
		return
	}
	if h.Log != nil {
		h.Log.Error("calculation failed", zap.Error(err))
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Calculation error: " + err.Error()})
}

// readRaw decodes a JSON object body or a url-encoded/multipart form. For
// forms only the first value of each field is kept.
func readRaw(w http.ResponseWriter, r *http.Request) (validate.Raw, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	raw := validate.Raw{}
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/json"):
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			return nil, err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}
	for k, v := range r.Form {
		if len(v) > 0 {
			raw[k] = v[0]
		}
	}
	return raw, nil
}
