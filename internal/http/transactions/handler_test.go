package transactions_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/http/transactions"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/pager"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/record"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/sandbox"
)

func newServer(t *testing.T, store *sandbox.Store) *httptest.Server {
	t.Helper()

	router := chi.NewRouter()
	router.Route("/transactions", transactions.NewHandler(store).Routes)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func TestHandler_List(t *testing.T) {
	store := sandbox.NewStore(45, 3)
	server := newServer(t, store)

	type listResponse struct {
		Data       []record.Wire `json:"data"`
		Pagination pager.State   `json:"pagination"`
	}

	resp, err := http.Get(server.URL + "/transactions?page=2&limit=20")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Len(t, body.Data, 20)
	assert.Equal(t, 2, body.Pagination.CurrentPage)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.Equal(t, 45, body.Pagination.TotalItems)
	assert.True(t, body.Pagination.HasNextPage)
	assert.True(t, body.Pagination.HasPrevPage)
}

func TestHandler_ListDefaults(t *testing.T) {
	store := sandbox.NewStore(45, 3)
	server := newServer(t, store)

	resp, err := http.Get(server.URL + "/transactions")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Pagination pager.State `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 1, body.Pagination.CurrentPage)
	assert.Equal(t, pager.DefaultPageSize, body.Pagination.ItemsPerPage)
}

func TestHandler_ListBadParams(t *testing.T) {
	store := sandbox.NewStore(10, 3)
	server := newServer(t, store)

	type testCase struct {
		name  string
		query string
	}

	tests := []testCase{
		{name: "ZeroPage", query: "?page=0"},
		{name: "NonNumericPage", query: "?page=abc"},
		{name: "ZeroLimit", query: "?limit=0"},
		{name: "OversizedLimit", query: "?limit=500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/transactions" + tc.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandler_Get(t *testing.T) {
	store := sandbox.NewStore(10, 3)
	server := newServer(t, store)

	page, _ := store.Page(1, 1)
	require.NotEmpty(t, page)

	resp, err := http.Get(server.URL + "/transactions/" + page[0].TransactionID)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got record.Wire
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, page[0].TransactionID, got.TransactionID)
}

func TestHandler_GetNotFound(t *testing.T) {
	store := sandbox.NewStore(10, 3)
	server := newServer(t, store)

	resp, err := http.Get(server.URL + "/transactions/txn_missing")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
