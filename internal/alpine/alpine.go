// Package alpine parses Alpine Linux APKINDEX files.
package alpine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkgatlas/canonical/internal/core"
	"github.com/pkgatlas/canonical/internal/version"
)

const repository = "alpine"

func init() {
	core.Register(repository, func() core.Parser {
		return New()
	})
}

// Parser reads APKINDEX stanzas: one tag:value pair per line, entries
// separated by blank lines.
type Parser struct {
	stripper *version.Stripper
}

func New() *Parser {
	return &Parser{
		// Cut the -rN package revision: 1.3.1-r2 compares as 1.3.1.
		stripper: version.NewStripper().StripRight("-"),
	}
}

func (p *Parser) Repository() string {
	return repository
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, emit core.EmitFunc) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fields := make(map[string]string)
	lineno := 0

	flush := func() error {
		if len(fields) == 0 {
			return nil
		}
		defer clear(fields)

		if err := ctx.Err(); err != nil {
			return err
		}
		return emit(p.build(fields))
	}

	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		if line == "" {
			if err := flush(); err != nil {
				return err
			}
			continue
		}

		tag, value, found := strings.Cut(line, ":")
		if !found || len(tag) != 1 {
			return fmt.Errorf("%s: malformed index line %d: %q", repository, lineno, line)
		}
		fields[tag] = value
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: reading index: %w", repository, err)
	}

	// Final stanza when the index does not end with a blank line.
	return flush()
}

func (p *Parser) build(fields map[string]string) *core.PackageBuilder {
	b := core.NewPackageBuilder()

	b.SetNames(fields["P"], core.NameBin|core.NameDisplay|core.NameTrack)
	if origin := fields["o"]; origin != "" {
		b.SetNames(origin, core.NameSrc|core.NameProjectSeed)
		b.SetExtraFieldOne("origin", origin)
	} else {
		b.SetNames(fields["P"], core.NameProjectSeed)
	}

	b.SetVersionStripped(fields["V"], p.stripper)

	if summary := fields["T"]; summary != "" {
		b.SetSummary(summary)
	}
	if homepage := fields["U"]; homepage != "" {
		b.AddLink(core.UpstreamHomepage, homepage)
	}
	if license := fields["L"]; license != "" {
		b.AddLicense(license)
	}
	if maintainer := fields["m"]; maintainer != "" {
		b.AddMaintainer(maintainer)
	}
	if arch := fields["A"]; arch != "" {
		b.SetArch(arch)
	}
	if commit := fields["c"]; commit != "" {
		b.SetExtraFieldOne("commit", commit)
	}
	if depends := fields["D"]; depends != "" {
		b.SetExtraFieldMany("depends", strings.Fields(depends))
	}

	return b
}
