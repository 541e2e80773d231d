// Package ingest runs registered repository parsers and collects validated
// canonical records.
package ingest

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/pkgatlas/canonical/internal/core"
)

const defaultConcurrency = 15

// Result holds the outcome of ingesting one repository index.
type Result struct {
	Repository string
	Packages   []*core.Package
	Skipped    []error
}

// Ingest parses the index in r with the parser registered for repository.
// Entries that fail validation are recorded in Result.Skipped as
// *core.ValidationError and do not stop ingestion of the remaining entries.
//
// A parser defect (double identity assignment, builder reuse) panics through:
// it signals a bug, not bad data, and must not be absorbed into the result.
func Ingest(ctx context.Context, repository string, r io.Reader) (*Result, error) {
	parser, err := core.New(repository)
	if err != nil {
		return nil, err
	}

	result := &Result{Repository: repository}
	err = parser.Parse(ctx, r, func(b *core.PackageBuilder) error {
		pkg, err := b.Finalize()
		if err != nil {
			result.Skipped = append(result.Skipped, &core.ValidationError{
				Repository: repository,
				Err:        err,
			})
			return nil
		}
		result.Packages = append(result.Packages, pkg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// IngestAll ingests multiple repository indexes in parallel. Repositories
// whose parse fails outright are omitted from the returned map; validation
// skips are reported per repository inside each Result.
func IngestAll(ctx context.Context, inputs map[string]io.Reader) map[string]*Result {
	return IngestAllWithConcurrency(ctx, inputs, defaultConcurrency)
}

// IngestAllWithConcurrency ingests with a custom concurrency limit.
func IngestAllWithConcurrency(ctx context.Context, inputs map[string]io.Reader, concurrency int) map[string]*Result {
	results := make(map[string]*Result)
	var mu sync.Mutex
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for repository, r := range inputs {
		wg.Add(1)
		go func(repository string, r io.Reader) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			result, err := Ingest(ctx, repository, r)
			if err == nil {
				mu.Lock()
				results[repository] = result
				mu.Unlock()
			}
		}(repository, r)
	}

	wg.Wait()
	return results
}

// CountSkipped returns how many entries across results were discarded for a
// particular validation failure, matched with errors.Is.
func CountSkipped(results map[string]*Result, target error) int {
	count := 0
	for _, result := range results {
		for _, err := range result.Skipped {
			if errors.Is(err, target) {
				count++
			}
		}
	}
	return count
}
