// Package canonical builds validated canonical package records from
// heterogeneous repository metadata.
//
// Format-specific parsers (one per upstream repository) accumulate whatever
// fields they discover into a PackageBuilder, in any order, and finalize it
// into either a validated Package or a classified error:
//
//	import (
//		"context"
//		"github.com/pkgatlas/canonical"
//		_ "github.com/pkgatlas/canonical/internal/alpine"
//	)
//
//	parser, err := canonical.NewParser("alpine")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = parser.Parse(context.Background(), index, func(b *canonical.PackageBuilder) error {
//		pkg, err := b.Finalize()
//		if err != nil {
//			return nil // malformed entry, skip it
//		}
//		store(pkg)
//		return nil
//	})
//
// To register all supported repositories, blank-import the all subpackage:
//
//	import (
//		"github.com/pkgatlas/canonical"
//		_ "github.com/pkgatlas/canonical/all"
//	)
package canonical

import (
	"github.com/pkgatlas/canonical/internal/core"
	"github.com/pkgatlas/canonical/internal/version"
)

// Re-export types from internal/core
type (
	// Package is the validated canonical record handed to aggregation and
	// storage. Never mutated after Finalize produces it.
	Package = core.Package

	// PackageBuilder accumulates fields for one package entry and is
	// consumed exactly once by Finalize.
	PackageBuilder = core.PackageBuilder

	// NameType is a bitmask of the semantic roles a package name can play.
	NameType = core.NameType

	// LinkType classifies the purpose of an outbound link.
	LinkType = core.LinkType

	// Link is a typed outbound reference split into base URL and fragment.
	Link = core.Link

	// ExtraField is a single- or multi-valued repository-specific field.
	ExtraField = core.ExtraField

	// PackageFlags is a bitmask of behavioral flags.
	PackageFlags = core.PackageFlags

	// CPE holds vulnerability-database sub-identification fields.
	CPE = core.CPE

	// Parser is the interface implemented by repository ingestion packages.
	Parser = core.Parser

	// EmitFunc receives one populated builder per package entry.
	EmitFunc = core.EmitFunc

	// Stripper normalizes raw upstream versions.
	Stripper = core.Stripper

	// StripperFunc adapts a plain function to the Stripper interface.
	StripperFunc = core.StripperFunc

	// VersionStripper is the rule-based Stripper implementation.
	VersionStripper = version.Stripper

	// ValidationError attaches repository context to a finalize failure.
	ValidationError = core.ValidationError

	// DefectError is the panic payload signalling a parser bug.
	DefectError = core.DefectError
)

// Re-export name roles
const (
	NameSrc         = core.NameSrc
	NameBin         = core.NameBin
	NameTrack       = core.NameTrack
	NameDisplay     = core.NameDisplay
	NameProjectSeed = core.NameProjectSeed
	AllNames        = core.AllNames
)

// Re-export link types
const (
	UpstreamHomepage      = core.UpstreamHomepage
	UpstreamDownload      = core.UpstreamDownload
	UpstreamRepository    = core.UpstreamRepository
	UpstreamIssueTracker  = core.UpstreamIssueTracker
	UpstreamDocumentation = core.UpstreamDocumentation
	UpstreamChangelog     = core.UpstreamChangelog
	PackageHomepage       = core.PackageHomepage
	PackageDownload       = core.PackageDownload
	PackageSources        = core.PackageSources
	PackageRecipe         = core.PackageRecipe
	PackagePatch          = core.PackagePatch
	PackageBuildLog       = core.PackageBuildLog
)

// Re-export behavioral flags
const (
	FlagRemove     = core.FlagRemove
	FlagDevel      = core.FlagDevel
	FlagIgnore     = core.FlagIgnore
	FlagUntrusted  = core.FlagUntrusted
	FlagNoScheme   = core.FlagNoScheme
	FlagRolling    = core.FlagRolling
	FlagSink       = core.FlagSink
	FlagLegacy     = core.FlagLegacy
	FlagTrace      = core.FlagTrace
	FlagVulnerable = core.FlagVulnerable
)

// Re-export validation errors
var (
	ErrMissingProjectSeed  = core.ErrMissingProjectSeed
	ErrEmptyProjectSeed    = core.ErrEmptyProjectSeed
	ErrMissingVisibleName  = core.ErrMissingVisibleName
	ErrEmptyVisibleName    = core.ErrEmptyVisibleName
	ErrMissingVersion      = core.ErrMissingVersion
	ErrEmptyVersion        = core.ErrEmptyVersion
	ErrMissingPackageNames = core.ErrMissingPackageNames
	ErrEmptySrcname        = core.ErrEmptySrcname
	ErrEmptyBinname        = core.ErrEmptyBinname
)

// NewPackageBuilder returns an empty builder.
func NewPackageBuilder() *PackageBuilder {
	return core.NewPackageBuilder()
}

// OneValue returns a single-valued extra field.
var OneValue = core.OneValue

// ManyValues returns a multi-valued extra field holding values in order.
var ManyValues = core.ManyValues

// NewParser creates a parser for the given repository.
//
// Supported repositories: "alpine", "freebsd", "fdroid"
func NewParser(repository string) (Parser, error) {
	return core.New(repository)
}

// RegisterParser adds a parser factory to the global registry.
func RegisterParser(repository string, factory func() Parser) {
	core.Register(repository, factory)
}

// SupportedRepositories returns all registered repository identifiers.
// Note: parsers must be imported to be registered.
func SupportedRepositories() []string {
	return core.SupportedRepositories()
}

// NewVersionStripper returns a stripper with no rules.
func NewVersionStripper() *VersionStripper {
	return version.NewStripper()
}

// ParsePURL parses a package URL string into its components.
var ParsePURL = core.ParsePURL
