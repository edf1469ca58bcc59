package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{baseURL: srv.URL, httpClient: srv.Client()}
}

func TestNewToken(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/new", r.URL.Path)
		fmt.Fprint(w, "https://discovery.etcd.io/3e86b59982e49066c5d813af1c2e2579\n")
	})

	token, err := client.NewToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3e86b59982e49066c5d813af1c2e2579", token)
}

func TestNewToken_HTTPError(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.NewToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestNewToken_EmptyBody(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {})

	_, err := client.NewToken(context.Background())
	require.Error(t, err)
}
