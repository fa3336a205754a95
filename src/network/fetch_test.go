package network

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byoa-assistant/src/logutil"
)

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	f := New(Options{Timeout: 5 * time.Second, Workers: 2, Proxy: &ProxySettings{}, Logger: logutil.Discard()})
	t.Cleanup(f.Close)
	return f
}

func TestFetchGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("X-Reply", "yes")
		_, _ = io.WriteString(w, "hello")
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	got := decode(t, f.Fetch(context.Background(), srv.URL, ""))

	assert.Equal(t, float64(200), got["status"])
	assert.Equal(t, "OK", got["statusText"])
	assert.Equal(t, "hello", got["body"])
	assert.Equal(t, true, got["ok"])
	assert.Equal(t, "yes", got["headers"].(map[string]any)["X-Reply"])
}

func TestFetchPostSendsHeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, `{"q":"hi"}`, string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	opts, _ := json.Marshal(map[string]any{
		"method":  "POST",
		"headers": map[string]string{"Content-Type": "application/json"},
		"body":    `{"q":"hi"}`,
	})
	f := newTestFetcher(t)
	got := decode(t, f.Fetch(context.Background(), srv.URL, string(opts)))
	assert.Equal(t, float64(201), got["status"])
	assert.Equal(t, true, got["ok"])
}

func TestFetchNon2xxIsNotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	got := decode(t, newTestFetcher(t).Fetch(context.Background(), srv.URL, `{"method":"GET"}`))
	assert.Equal(t, float64(404), got["status"])
	assert.Equal(t, false, got["ok"])
}

func TestFetchUnsupportedMethodMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	got := decode(t, newTestFetcher(t).Fetch(context.Background(), srv.URL, `{"method":"TRACE"}`))
	assert.Equal(t, float64(400), got["status"])
	assert.Equal(t, "Bad Request", got["statusText"])
	assert.Equal(t, "Unsupported HTTP method: TRACE", got["body"])
	assert.Equal(t, false, got["ok"])
	assert.Equal(t, int32(0), hits.Load())
}

func TestFetchMethodIsCaseSensitive(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	got := decode(t, newTestFetcher(t).Fetch(context.Background(), srv.URL, `{"method":"post"}`))
	assert.Equal(t, float64(400), got["status"])
	assert.Equal(t, "Unsupported HTTP method: post", got["body"])
	assert.Equal(t, int32(0), hits.Load())
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	got := decode(t, newTestFetcher(t).Fetch(context.Background(), url, ""))
	assert.Equal(t, float64(0), got["status"])
	assert.Equal(t, "Network Error", got["statusText"])
	assert.Contains(t, got["body"], "Network error: ")
	assert.Equal(t, false, got["ok"])
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	f := New(Options{Timeout: 50 * time.Millisecond, Workers: 1, Proxy: &ProxySettings{}, Logger: logutil.Discard()})
	defer f.Close()

	got := decode(t, f.Fetch(context.Background(), srv.URL, ""))
	assert.Equal(t, float64(0), got["status"])
}

func TestFetchAsync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "async")
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	select {
	case out := <-f.FetchAsync(context.Background(), srv.URL, ""):
		got := decode(t, out)
		require.Equal(t, "async", got["body"])
	case <-time.After(5 * time.Second):
		t.Fatal("FetchAsync did not deliver")
	}
}

func TestCloseAbortsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	f := New(Options{Timeout: time.Minute, Workers: 1, Proxy: &ProxySettings{}, Logger: logutil.Discard()})
	out := f.FetchAsync(context.Background(), srv.URL, "")
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the server")
	}

	closed := make(chan struct{})
	go func() {
		f.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close waited for the in-flight fetch")
	}

	got := decode(t, <-out)
	assert.Equal(t, float64(0), got["status"])
	assert.Equal(t, "Network Error", got["statusText"])

	f.Close()
}
