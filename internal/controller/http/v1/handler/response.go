package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/The-Gleb/product_banner/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch errors.Code(err) {
	case errors.ErrBadRequest:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.ErrNoDataFound, errors.ErrSessionNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.ErrUnavailable:
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		slog.Error("unexpected error", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
