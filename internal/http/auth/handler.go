package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Handler mints and verifies the bearer tokens the sandbox API accepts.
// Tokens are HMAC-signed JWTs; this is a dev convenience, not a production
// auth system.
type Handler struct {
	secret []byte
	ttl    time.Duration
}

func NewHandler(secret string, ttl time.Duration) *Handler {
	return &Handler{secret: []byte(secret), ttl: ttl}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/token", h.mint)
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) mint(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	expiresAt := now.Add(h.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "sandbox-dev",
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	})

	signed, err := token.SignedString(h.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to mint token")
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed, ExpiresAt: expiresAt}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Verify is the middleware protecting /api/v1. It requires a valid bearer
// token minted by this handler.
func (h *Handler) Verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		_, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return h.secret, nil
		})
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(errorResponse{Message: msg}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
