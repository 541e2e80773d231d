// Package freebsd parses FreeBSD pkg packagesite files (one JSON document
// per line).
package freebsd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pkgatlas/canonical/internal/core"
	"github.com/pkgatlas/canonical/internal/version"
)

const repository = "freebsd"

func init() {
	core.Register(repository, func() core.Parser {
		return New()
	})
}

type Parser struct {
	stripper *version.Stripper
}

func New() *Parser {
	return &Parser{
		// 1.3.1_2,1 carries a port revision (_2) and an epoch marker (,1);
		// neither belongs in the comparison form.
		stripper: version.NewStripper().StripRightGreedy(",").StripRight("_"),
	}
}

func (p *Parser) Repository() string {
	return repository
}

type packagesiteEntry struct {
	Name       string   `json:"name"`
	Origin     string   `json:"origin"`
	Version    string   `json:"version"`
	Comment    string   `json:"comment"`
	Maintainer string   `json:"maintainer"`
	WWW        string   `json:"www"`
	Arch       string   `json:"arch"`
	Licenses   []string `json:"licenses"`
	Categories []string `json:"categories"`
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, emit core.EmitFunc) error {
	decoder := json.NewDecoder(r)

	for entryno := 1; ; entryno++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var entry packagesiteEntry
		if err := decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%s: decoding entry %d: %w", repository, entryno, err)
		}

		if err := emit(p.build(&entry)); err != nil {
			return err
		}
	}
}

func (p *Parser) build(entry *packagesiteEntry) *core.PackageBuilder {
	b := core.NewPackageBuilder()

	b.SetNames(entry.Name, core.NameBin|core.NameDisplay|core.NameTrack|core.NameProjectSeed)
	if entry.Origin != "" {
		b.SetNames(entry.Origin, core.NameSrc)
		b.SetExtraFieldOne("origin", entry.Origin)
	}

	b.SetVersionStripped(entry.Version, p.stripper)

	if entry.Comment != "" {
		b.SetSummary(entry.Comment)
	}
	if entry.Maintainer != "" {
		b.AddMaintainer(entry.Maintainer)
	}
	if entry.WWW != "" {
		b.AddLink(core.UpstreamHomepage, entry.WWW)
	}
	if entry.Arch != "" {
		b.SetArch(entry.Arch)
	}
	b.AddLicenses(entry.Licenses...)
	b.AddCategories(entry.Categories...)

	return b
}
