package settings

import (
	"encoding/json"
	"net/http"

	"github.com/HungBoGo/hubogo-note/internal/priority"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /api/settings/weights
func (h *Handler) GetWeights(w http.ResponseWriter, r *http.Request) {
	weights, err := h.store.Weights()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, weights)
}

// PUT /api/settings/weights
func (h *Handler) SetWeights(w http.ResponseWriter, r *http.Request) {
	var in priority.Weights
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json: " + err.Error()})
		return
	}
	if err := h.store.SetWeights(in); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	stored, err := h.store.Weights()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stored)
}
