package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockwise/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Method string `json:"method"`
	Query  string `json:"query"`
	Header string `json:"header"`
}

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echoPayload{
			Method: r.Method,
			Query:  r.URL.Query().Get("symbols"),
			Header: r.Header.Get("X-Test"),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRestyClient_Get(t *testing.T) {
	srv := newEchoServer(t)
	client := New(logger.NewNop(), srv.URL, time.Second)

	var out echoPayload
	resp, err := client.Get(context.Background(), "/v7/finance/quote",
		map[string]string{"symbols": "AAPL"},
		map[string]string{"X-Test": "yes"},
		&out)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.MethodGet, out.Method)
	assert.Equal(t, "AAPL", out.Query)
	assert.Equal(t, "yes", out.Header)
}

func TestRestyClient_Unreachable(t *testing.T) {
	client := New(logger.NewNop(), "http://127.0.0.1:1", 200*time.Millisecond)

	resp, err := client.Get(context.Background(), "/", nil, nil, nil)
	assert.Error(t, err)
	assert.Nil(t, resp)
}
