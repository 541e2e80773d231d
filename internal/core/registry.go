package core

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// EmitFunc receives one fully populated builder per package entry. The
// receiver owns the builder from that point on and is expected to finalize it.
type EmitFunc func(*PackageBuilder) error

// Parser is the interface implemented by all repository ingestion packages.
// Parse reads one repository index from r and emits a builder per entry, in
// index order, stopping early if emit or the context reports an error.
type Parser interface {
	// Repository returns the repository identifier (e.g. "alpine", "freebsd").
	Repository() string

	Parse(ctx context.Context, r io.Reader, emit EmitFunc) error
}

// Factory creates a parser instance.
type Factory func() Parser

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a parser factory to the global registry. Repository is the
// repository identifier; registering it twice panics.
func Register(repository string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := factories[repository]; dup {
		panic(fmt.Sprintf("core: parser for %q registered twice", repository))
	}
	factories[repository] = factory
}

// New creates a parser for the given repository.
func New(repository string) (Parser, error) {
	mu.RLock()
	factory, ok := factories[repository]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown repository: %s", repository)
	}
	return factory(), nil
}

// SupportedRepositories returns all registered repository identifiers.
// Parsers must be imported to be registered.
func SupportedRepositories() []string {
	mu.RLock()
	defer mu.RUnlock()

	repositories := make([]string, 0, len(factories))
	for repository := range factories {
		repositories = append(repositories, repository)
	}
	return repositories
}
