package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBreakerFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("index content"))
	}))
	defer server.Close()

	bf := NewBreakerFetcher(NewFetcher())

	snapshot, err := bf.Fetch(context.Background(), server.URL+"/APKINDEX", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = snapshot.Body.Close() }()

	body, _ := io.ReadAll(snapshot.Body)
	if string(body) != "index content" {
		t.Errorf("expected 'index content', got %q", string(body))
	}
}

func TestBreakerFetchNotModifiedPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer server.Close()

	bf := NewBreakerFetcher(NewFetcher())

	// Repeated not-modified responses are healthy and must never trip the
	// breaker.
	for i := 0; i < 10; i++ {
		_, err := bf.Fetch(context.Background(), server.URL+"/APKINDEX", `"tag"`)
		if !errors.Is(err, ErrNotModified) {
			t.Fatalf("attempt %d: expected ErrNotModified, got %v", i, err)
		}
	}
}

func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	bf := NewBreakerFetcher(NewFetcher(WithBaseDelay(time.Millisecond)))

	for i := 0; i < 5; i++ {
		_, err := bf.Fetch(context.Background(), server.URL+"/missing", "")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("attempt %d: expected ErrNotFound, got %v", i, err)
		}
	}

	_, err := bf.Fetch(context.Background(), server.URL+"/missing", "")
	if !errors.Is(err, ErrUpstreamDown) {
		t.Errorf("expected the open breaker to report ErrUpstreamDown, got %v", err)
	}
}

func TestBreakerIsolatesHosts(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer broken.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer healthy.Close()

	bf := NewBreakerFetcher(NewFetcher(WithBaseDelay(time.Millisecond)))

	for i := 0; i < 6; i++ {
		_, _ = bf.Fetch(context.Background(), broken.URL+"/missing", "")
	}

	snapshot, err := bf.Fetch(context.Background(), healthy.URL+"/index", "")
	if err != nil {
		t.Fatalf("healthy host must not be affected by the broken one: %v", err)
	}
	_ = snapshot.Body.Close()
}

func TestBreakerHead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD request, got %s", r.Method)
		}
		w.Header().Set("Content-Length", "1234")
		w.Header().Set("ETag", `"h1"`)
	}))
	defer server.Close()

	bf := NewBreakerFetcher(NewFetcher())

	size, etag, err := bf.Head(context.Background(), server.URL+"/APKINDEX")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if size != 1234 {
		t.Errorf("expected size 1234, got %d", size)
	}
	if etag != `"h1"` {
		t.Errorf("expected etag \"h1\", got %s", etag)
	}
}

func TestUpstreamHost(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "alpine mirror",
			url:      "https://dl-cdn.alpinelinux.org/alpine/v3.20/main/x86_64/APKINDEX.tar.gz",
			expected: "dl-cdn.alpinelinux.org",
		},
		{
			name:     "freebsd pkg",
			url:      "https://pkg.freebsd.org/FreeBSD:14:amd64/latest/packagesite.pkg",
			expected: "pkg.freebsd.org",
		},
		{
			name:     "invalid URL",
			url:      "not-a-valid-url",
			expected: "not-a-valid-url",
		},
		{
			name:     "long invalid URL",
			url:      "x" + string(make([]byte, 100)),
			expected: ("x" + string(make([]byte, 100)))[:50],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := upstreamHost(tt.url); got != tt.expected {
				t.Errorf("upstreamHost(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}
