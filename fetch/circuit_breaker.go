package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// BreakerFetcher wraps a Fetcher with per-upstream-host circuit breakers.
// A repository whose mirror keeps failing stops being polled for a while
// without affecting ingestion of the other repositories.
type BreakerFetcher struct {
	fetcher  FetcherInterface
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

// NewBreakerFetcher creates a circuit breaker wrapper around f.
func NewBreakerFetcher(f FetcherInterface) *BreakerFetcher {
	return &BreakerFetcher{
		fetcher:  f,
		breakers: make(map[string]*circuit.Breaker),
	}
}

// getBreaker returns or creates a circuit breaker for the given upstream host.
func (bf *BreakerFetcher) getBreaker(host string) *circuit.Breaker {
	bf.mu.RLock()
	breaker, exists := bf.breakers[host]
	bf.mu.RUnlock()

	if exists {
		return breaker
	}

	bf.mu.Lock()
	defer bf.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists := bf.breakers[host]; exists {
		return breaker
	}

	// Trips after 5 consecutive failures, backing off from 30s up to 5m
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	opts := &circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	}
	breaker = circuit.NewBreakerWithOptions(opts)

	bf.breakers[host] = breaker
	return breaker
}

// Fetch wraps the underlying fetcher's Fetch with circuit breaker logic.
func (bf *BreakerFetcher) Fetch(ctx context.Context, fetchURL, etag string) (*Snapshot, error) {
	host := upstreamHost(fetchURL)
	breaker := bf.getBreaker(host)

	if !breaker.Ready() {
		return nil, fmt.Errorf("circuit breaker open for %s: %w", host, ErrUpstreamDown)
	}

	var snapshot *Snapshot
	err := breaker.Call(func() error {
		var fetchErr error
		snapshot, fetchErr = bf.fetcher.Fetch(ctx, fetchURL, etag)
		// An unchanged index is a healthy response, not an upstream failure.
		if errors.Is(fetchErr, ErrNotModified) {
			return nil
		}
		return fetchErr
	}, 0)

	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrNotModified
	}

	return snapshot, nil
}

// Head wraps the underlying fetcher's Head with circuit breaker logic.
func (bf *BreakerFetcher) Head(ctx context.Context, headURL string) (size int64, etag string, err error) {
	host := upstreamHost(headURL)
	breaker := bf.getBreaker(host)

	if !breaker.Ready() {
		return 0, "", fmt.Errorf("circuit breaker open for %s: %w", host, ErrUpstreamDown)
	}

	err = breaker.Call(func() error {
		var headErr error
		size, etag, headErr = bf.fetcher.Head(ctx, headURL)
		return headErr
	}, 0)

	return size, etag, err
}

// upstreamHost extracts the host from a URL for circuit breaker grouping.
func upstreamHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		// Fallback to simple truncation
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}
