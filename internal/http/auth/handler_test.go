package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/http/auth"
)

func newServer(t *testing.T, handler *auth.Handler) *httptest.Server {
	t.Helper()

	router := chi.NewRouter()
	router.Route("/auth", handler.Routes)
	router.Group(func(r chi.Router) {
		r.Use(handler.Verify)
		r.Get("/protected", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func mintToken(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp, err := http.Post(server.URL+"/auth/token", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

func TestHandler_MintAndVerify(t *testing.T) {
	server := newServer(t, auth.NewHandler("test-secret", time.Hour))

	token := mintToken(t, server)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/protected", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_VerifyRejections(t *testing.T) {
	server := newServer(t, auth.NewHandler("test-secret", time.Hour))

	other := newServer(t, auth.NewHandler("other-secret", time.Hour))
	foreignToken := mintToken(t, other)

	expired := newServer(t, auth.NewHandler("test-secret", -time.Minute))
	expiredServerToken := mintToken(t, expired)

	type testCase struct {
		name   string
		header string
	}

	tests := []testCase{
		{name: "MissingHeader", header: ""},
		{name: "NotBearer", header: "Basic abc"},
		{name: "Garbage", header: "Bearer not-a-jwt"},
		{name: "WrongSecret", header: "Bearer " + foreignToken},
		{name: "Expired", header: "Bearer " + expiredServerToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, server.URL+"/protected", nil)
			require.NoError(t, err)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Message)
		})
	}
}
