package httpcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum-optimism/optimism/op-service/testlog"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, timeout time.Duration) *Client {
	return NewClient(timeout, testlog.Logger(t, log.LevelInfo))
}

func TestClientSetsUserAgentAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "https://example.com", r.Header.Get("Origin"))
		w.Header().Set("Access-Control-Allow-Origin", "*")
		_, _ = w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := newTestClient(t, time.Second)
	resp, err := client.Do(context.Background(), Request{
		URL:    server.URL,
		Header: http.Header{"Origin": []string{"https://example.com"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(resp.Body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestClientRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/from", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/to", http.StatusFound)
	})
	mux.HandleFunc("/to", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("arrived"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, time.Second)

	t.Run("follows by default", func(t *testing.T) {
		resp, err := client.Get(context.Background(), server.URL+"/from")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "arrived", string(resp.Body))
	})

	t.Run("no redirect", func(t *testing.T) {
		resp, err := client.Do(context.Background(), Request{URL: server.URL + "/from", NoRedirect: true})
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.True(t, resp.IsRedirect())
		assert.Equal(t, "/to", resp.Location())
		require.NoError(t, ExpectRedirect(resp, "/to"))
	})
}

func TestClientHeadHasNoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.Header().Set("Content-Type", "application/x-msdownload")
	}))
	defer server.Close()

	resp, err := newTestClient(t, time.Second).Head(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, resp.Body)
	assert.Equal(t, "application/x-msdownload", resp.Header.Get("Content-Type"))
}

func TestClientPreservesEncodedPath(t *testing.T) {
	paths := make(chan string, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.EscapedPath()
	}))
	defer server.Close()

	client := newTestClient(t, time.Second)
	_, err := client.Get(context.Background(), server.URL+"/crates/foo/foo-0.1.0%2B1.crate")
	require.NoError(t, err)
	_, err = client.Get(context.Background(), server.URL+"/crates/foo/foo-0.1.0 1.crate")
	require.NoError(t, err)

	assert.Equal(t, "/crates/foo/foo-0.1.0%2B1.crate", <-paths)
	assert.Equal(t, "/crates/foo/foo-0.1.0%201.crate", <-paths)
}

func TestClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestClient(t, time.Second).Get(context.Background(), url)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "connection refused") || strings.Contains(err.Error(), "connect"),
		"unexpected error: %v", err)
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestClient(t, 50*time.Millisecond).Get(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Client.Timeout")
}

func TestClientLimitsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", maxBodyRead+10)))
	}))
	defer server.Close()

	resp, err := newTestClient(t, time.Second).Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, resp.Body, maxBodyRead)
}
