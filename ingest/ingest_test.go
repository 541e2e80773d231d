package ingest

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pkgatlas/canonical/internal/core"

	_ "github.com/pkgatlas/canonical/internal/alpine"
	_ "github.com/pkgatlas/canonical/internal/freebsd"
)

const alpineIndex = `P:zlib
V:1.3.1-r2
A:x86_64
T:A compression/decompression Library
U:https://zlib.net/
L:Zlib
o:zlib

P:broken-no-version
A:x86_64
o:broken
`

const freebsdIndex = `{"name":"gmake","origin":"devel/gmake","version":"4.4.1","comment":"GNU make","maintainer":"ports@FreeBSD.org","www":"https://www.gnu.org/software/make/","licenses":["GPLv3+"],"categories":["devel"]}
`

func TestIngest(t *testing.T) {
	result, err := Ingest(context.Background(), "alpine", strings.NewReader(alpineIndex))
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if len(result.Packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(result.Packages))
	}
	if result.Packages[0].Binname != "zlib" {
		t.Errorf("expected 'zlib', got %q", result.Packages[0].Binname)
	}

	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped entry, got %d", len(result.Skipped))
	}
	if !errors.Is(result.Skipped[0], core.ErrEmptyVersion) {
		t.Errorf("expected ErrEmptyVersion, got %v", result.Skipped[0])
	}

	var vErr *core.ValidationError
	if !errors.As(result.Skipped[0], &vErr) || vErr.Repository != "alpine" {
		t.Errorf("skip must carry repository context: %v", result.Skipped[0])
	}
}

func TestIngestUnknownRepository(t *testing.T) {
	_, err := Ingest(context.Background(), "no-such-repo", strings.NewReader(""))
	if err == nil {
		t.Error("expected an error for an unknown repository")
	}
}

func TestIngestParseError(t *testing.T) {
	_, err := Ingest(context.Background(), "alpine", strings.NewReader("malformed index\n"))
	if err == nil {
		t.Error("expected a parse error to propagate")
	}
}

func TestIngestAll(t *testing.T) {
	inputs := map[string]io.Reader{
		"alpine":  strings.NewReader(alpineIndex),
		"freebsd": strings.NewReader(freebsdIndex),
	}

	results := IngestAll(context.Background(), inputs)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if len(results["alpine"].Packages) != 1 {
		t.Errorf("alpine: expected 1 package, got %d", len(results["alpine"].Packages))
	}
	if len(results["freebsd"].Packages) != 1 {
		t.Errorf("freebsd: expected 1 package, got %d", len(results["freebsd"].Packages))
	}

	if got := CountSkipped(results, core.ErrEmptyVersion); got != 1 {
		t.Errorf("expected 1 skipped entry for ErrEmptyVersion, got %d", got)
	}
	if got := CountSkipped(results, core.ErrMissingPackageNames); got != 0 {
		t.Errorf("expected 0 skipped entries for ErrMissingPackageNames, got %d", got)
	}
}

func TestIngestAllOmitsFailedRepositories(t *testing.T) {
	inputs := map[string]io.Reader{
		"alpine":       strings.NewReader("malformed index\n"),
		"no-such-repo": strings.NewReader(""),
		"freebsd":      strings.NewReader(freebsdIndex),
	}

	results := IngestAll(context.Background(), inputs)

	if len(results) != 1 {
		t.Fatalf("expected only the healthy repository, got %d results", len(results))
	}
	if _, ok := results["freebsd"]; !ok {
		t.Error("expected freebsd in results")
	}
}

func TestIngestDefectPanicsThrough(t *testing.T) {
	core.Register("defective", func() core.Parser {
		return defectiveParser{}
	})

	defer func() {
		if _, ok := recover().(*core.DefectError); !ok {
			t.Error("expected the parser defect to panic through Ingest")
		}
	}()
	_, _ = Ingest(context.Background(), "defective", strings.NewReader(""))
}

type defectiveParser struct{}

func (defectiveParser) Repository() string {
	return "defective"
}

func (defectiveParser) Parse(ctx context.Context, r io.Reader, emit core.EmitFunc) error {
	b := core.NewPackageBuilder()
	b.SetNames("foo", core.NameSrc)
	b.SetNames("bar", core.NameSrc) // parser bug
	return emit(b)
}
