package transactions

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/pager"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/sandbox"
)

const maxLimit = 100

type Handler struct {
	store *sandbox.Store
}

func NewHandler(store *sandbox.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type listResponse struct {
	Data       []record.Wire `json:"data"`
	Pagination pager.State   `json:"pagination"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil || page < 1 {
		writeError(w, http.StatusBadRequest, "page must be positive")
		return
	}

	limit, err := queryInt(r, "limit", pager.DefaultPageSize)
	if err != nil || limit < 1 || limit > maxLimit {
		writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	data, pagination := h.store.Page(page, limit)

	writeJSON(w, listResponse{Data: data, Pagination: pagination})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}

	writeJSON(w, rec)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback, nil
	}

	return strconv.Atoi(s)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(errorResponse{Message: msg}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
