// Package fdroid parses F-Droid repository index XML.
package fdroid

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkgatlas/canonical/internal/core"
)

const repository = "fdroid"

func init() {
	core.Register(repository, func() core.Parser {
		return New()
	})
}

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Repository() string {
	return repository
}

type application struct {
	ID            string   `xml:"id"`
	Name          string   `xml:"name"`
	Summary       string   `xml:"summary"`
	License       string   `xml:"license"`
	Categories    string   `xml:"categories"`
	Web           string   `xml:"web"`
	Source        string   `xml:"source"`
	Tracker       string   `xml:"tracker"`
	Changelog     string   `xml:"changelog"`
	MarketVersion string   `xml:"marketversion"`
	Packages      []appPkg `xml:"package"`
}

type appPkg struct {
	Version     string `xml:"version"`
	VersionCode string `xml:"versioncode"`
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, emit core.EmitFunc) error {
	decoder := xml.NewDecoder(r)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%s: decoding index: %w", repository, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "application" {
			continue
		}

		var app application
		if err := decoder.DecodeElement(&app, &start); err != nil {
			return fmt.Errorf("%s: decoding application: %w", repository, err)
		}

		if err := emit(build(&app)); err != nil {
			return err
		}
	}
}

func build(app *application) *core.PackageBuilder {
	b := core.NewPackageBuilder()

	b.SetNames(app.ID, core.NameBin|core.NameTrack|core.NameProjectSeed)
	b.SetNames(app.Name, core.NameDisplay)

	// marketversion is the current recommended version; fall back to the
	// newest package element when it is absent.
	switch {
	case app.MarketVersion != "":
		b.SetVersion(app.MarketVersion)
	case len(app.Packages) > 0:
		b.SetVersion(app.Packages[0].Version)
		if code := app.Packages[0].VersionCode; code != "" {
			b.SetExtraFieldOne("versioncode", code)
		}
	}

	if app.Summary != "" {
		b.SetSummary(app.Summary)
	}
	if app.License != "" {
		b.AddLicense(app.License)
	}
	for _, category := range strings.Split(app.Categories, ",") {
		if category = strings.TrimSpace(category); category != "" {
			b.AddCategory(category)
		}
	}
	if app.Web != "" {
		b.AddLink(core.UpstreamHomepage, app.Web)
	}
	if app.Source != "" {
		b.AddLink(core.UpstreamRepository, app.Source)
	}
	if app.Tracker != "" {
		b.AddLink(core.UpstreamIssueTracker, app.Tracker)
	}
	if app.Changelog != "" {
		b.AddLink(core.UpstreamChangelog, app.Changelog)
	}

	return b
}
