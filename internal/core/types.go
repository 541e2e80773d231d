// Package core provides the canonical package record, its builder, and the
// parser registry shared by all repository ingestion packages.
package core

// NameType is a bitmask of the semantic roles a package name can play.
// A single textual name is often several things at once: the Alpine "P:"
// field is the binary name, the display name, and the tracking name of the
// same package.
type NameType uint32

const (
	// NameSrc identifies the source package.
	NameSrc NameType = 1 << iota
	// NameBin identifies a binary package.
	NameBin
	// NameTrack is the name used to track the package across versions.
	NameTrack
	// NameDisplay is the human-readable name shown to users.
	NameDisplay
	// NameProjectSeed seeds cross-repository project grouping.
	NameProjectSeed
)

// AllNames covers every name role.
const AllNames = NameSrc | NameBin | NameTrack | NameDisplay | NameProjectSeed

// Has reports whether all roles in mask are present in t.
func (t NameType) Has(mask NameType) bool {
	return t&mask == mask
}

// LinkType classifies the purpose of an outbound link.
type LinkType int

const (
	UpstreamHomepage LinkType = iota
	UpstreamDownload
	UpstreamRepository
	UpstreamIssueTracker
	UpstreamDocumentation
	UpstreamChangelog
	PackageHomepage
	PackageDownload
	PackageSources
	PackageRecipe
	PackagePatch
	PackageBuildLog
)

// PackageFlags is a bitmask of behavioral flags attached to a package.
type PackageFlags uint32

const (
	FlagRemove PackageFlags = 1 << iota
	FlagDevel
	FlagIgnore
	FlagUntrusted
	FlagNoScheme
	FlagRolling
	FlagSink
	FlagLegacy
	FlagTrace
	FlagVulnerable
)

// CPE holds the sub-identification fields used for cross-referencing with
// external vulnerability databases. Empty fields are unset.
type CPE struct {
	Vendor    string
	Product   string
	Edition   string
	Lang      string
	SwEdition string
	TargetSw  string
	TargetHw  string
	Other     string
}

// Package is the validated canonical record produced by PackageBuilder.Finalize.
// It is immutable by contract: consumers read it, never mutate it.
//
// Srcname, Binname, Trackname, Subrepo and Arch are optional; when present
// they are guaranteed non-empty. Visiblename, ProjectnameSeed, Version and
// Rawversion are always non-empty.
type Package struct {
	Subrepo string

	Srcname         string
	Binname         string
	Binnames        []string
	Trackname       string
	Visiblename     string
	ProjectnameSeed string

	Version    string
	Rawversion string

	Arch string

	Maintainers []string
	Category    string
	Summary     string
	Licenses    []string

	ExtraFields map[string]ExtraField

	CPE CPE

	Links []Link

	Flags   PackageFlags
	Flavors []string
}
