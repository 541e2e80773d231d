package fetch

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoMirrors is returned when a source has no index URLs configured.
var ErrNoMirrors = errors.New("no index mirrors configured")

// Source describes where one repository's index can be fetched from.
// URLs are tried in order; later entries are mirrors of the first.
type Source struct {
	Repository string
	URLs       []string
	ETag       string // ETag from the previous successful fetch, if any
}

// FetchSource downloads the index for src, falling back through its mirrors.
// ErrNotModified short-circuits: an unchanged primary means the mirrors are
// not worth trying. Other failures move on to the next mirror; the last
// failure is returned when all mirrors are down.
func FetchSource(ctx context.Context, f FetcherInterface, src Source) (*Snapshot, error) {
	if len(src.URLs) == 0 {
		return nil, fmt.Errorf("%s: %w", src.Repository, ErrNoMirrors)
	}

	var lastErr error
	for _, url := range src.URLs {
		snapshot, err := f.Fetch(ctx, url, src.ETag)
		if err == nil {
			return snapshot, nil
		}
		if errors.Is(err, ErrNotModified) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%s: all mirrors failed: %w", src.Repository, lastErr)
}
