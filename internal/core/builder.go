package core

// Stripper normalizes a raw upstream version into a comparison-friendly form,
// typically by cutting repository-specific suffixes. Implementations must be
// pure: same input, same output, no side effects.
type Stripper interface {
	Apply(version string) string
}

// StripperFunc adapts a plain function to the Stripper interface.
type StripperFunc func(string) string

// Apply calls f(version).
func (f StripperFunc) Apply(version string) string {
	return f(version)
}

// PackageBuilder accumulates fields for one package entry of one source
// repository and is consumed exactly once by Finalize. A builder is owned by a
// single ingestion task and must not be shared across goroutines.
//
// Identity roles may each be set at most once; a second assignment panics with
// a DefectError, as does any use after Finalize. Everything else is a plain
// accumulator with the per-field semantics documented on each method.
type PackageBuilder struct {
	subrepo string

	srcname         *string
	binname         *string
	binnames        []string
	trackname       *string
	visiblename     *string
	projectnameSeed *string

	version    *string
	rawversion *string

	arch string

	maintainers []string
	category    *string
	summary     string
	licenses    []string

	extraFields map[string]ExtraField

	cpe CPE

	links []Link

	flags   PackageFlags
	flavors []string

	finalized bool
}

// NewPackageBuilder returns an empty builder.
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{}
}

func (b *PackageBuilder) checkLive(op string) {
	if b.finalized {
		defect(op, "builder used after Finalize")
	}
}

// SetNames assigns name to every role in types. Each role may be assigned only
// once for the lifetime of the builder; assigning an already-set role is a
// parser bug and panics. Returns b for chaining.
func (b *PackageBuilder) SetNames(name string, types NameType) *PackageBuilder {
	b.checkLive("SetNames")
	if types == 0 {
		defect("SetNames", "empty name type mask")
	}
	if types.Has(NameSrc) {
		if b.srcname != nil {
			defect("SetNames", "source name set twice (%q, then %q)", *b.srcname, name)
		}
		b.srcname = cloned(name)
	}
	if types.Has(NameBin) {
		if b.binname != nil {
			defect("SetNames", "binary name set twice (%q, then %q)", *b.binname, name)
		}
		b.binname = cloned(name)
	}
	if types.Has(NameTrack) {
		if b.trackname != nil {
			defect("SetNames", "tracking name set twice (%q, then %q)", *b.trackname, name)
		}
		b.trackname = cloned(name)
	}
	if types.Has(NameDisplay) {
		if b.visiblename != nil {
			defect("SetNames", "visible name set twice (%q, then %q)", *b.visiblename, name)
		}
		b.visiblename = cloned(name)
	}
	if types.Has(NameProjectSeed) {
		if b.projectnameSeed != nil {
			defect("SetNames", "project name seed set twice (%q, then %q)", *b.projectnameSeed, name)
		}
		b.projectnameSeed = cloned(name)
	}
	return b
}

// AddBinnames appends names to the binary name list in order. Duplicates are
// kept; deduplication, if ever wanted, belongs downstream.
func (b *PackageBuilder) AddBinnames(names ...string) *PackageBuilder {
	b.checkLive("AddBinnames")
	b.binnames = append(b.binnames, names...)
	return b
}

// SetVersion stores version as both the raw and the normalized version.
// Unlike identity roles, version is last-write-wins.
func (b *PackageBuilder) SetVersion(version string) *PackageBuilder {
	b.checkLive("SetVersion")
	b.rawversion = cloned(version)
	b.version = cloned(version)
	return b
}

// SetVersionStripped stores version as the raw version and stripper's output
// as the normalized version. Last write wins.
func (b *PackageBuilder) SetVersionStripped(version string, stripper Stripper) *PackageBuilder {
	b.checkLive("SetVersionStripped")
	stripped := stripper.Apply(version)
	b.rawversion = cloned(version)
	b.version = cloned(stripped)
	return b
}

// SetSubrepo records the sub-repository this entry came from.
func (b *PackageBuilder) SetSubrepo(subrepo string) *PackageBuilder {
	b.checkLive("SetSubrepo")
	b.subrepo = subrepo
	return b
}

// SetSummary records the one-line package description.
func (b *PackageBuilder) SetSummary(summary string) *PackageBuilder {
	b.checkLive("SetSummary")
	b.summary = summary
	return b
}

// SetArch records the package architecture.
func (b *PackageBuilder) SetArch(arch string) *PackageBuilder {
	b.checkLive("SetArch")
	b.arch = arch
	return b
}

// AddMaintainer appends maintainer as-is: no trimming, case folding or
// deduplication at this layer.
func (b *PackageBuilder) AddMaintainer(maintainer string) *PackageBuilder {
	b.checkLive("AddMaintainer")
	b.maintainers = append(b.maintainers, maintainer)
	return b
}

// AddMaintainers appends each maintainer in order.
func (b *PackageBuilder) AddMaintainers(maintainers ...string) *PackageBuilder {
	b.checkLive("AddMaintainers")
	b.maintainers = append(b.maintainers, maintainers...)
	return b
}

// AddCategory records category if none is recorded yet. First write wins:
// later calls are silently ignored. This is the one accumulator in the
// builder with first-write-wins semantics.
func (b *PackageBuilder) AddCategory(category string) *PackageBuilder {
	b.checkLive("AddCategory")
	if b.category == nil {
		b.category = cloned(category)
	}
	return b
}

// AddCategories applies AddCategory to each category in order, so only the
// first call across the builder's lifetime ever takes effect.
func (b *PackageBuilder) AddCategories(categories ...string) *PackageBuilder {
	for _, category := range categories {
		b.AddCategory(category)
	}
	return b
}

// AddLicense appends license with no validation.
func (b *PackageBuilder) AddLicense(license string) *PackageBuilder {
	b.checkLive("AddLicense")
	b.licenses = append(b.licenses, license)
	return b
}

// AddLicenses appends each license in order.
func (b *PackageBuilder) AddLicenses(licenses ...string) *PackageBuilder {
	b.checkLive("AddLicenses")
	b.licenses = append(b.licenses, licenses...)
	return b
}

// AddLink splits rawURL at its first '#' and appends the resulting link.
func (b *PackageBuilder) AddLink(linkType LinkType, rawURL string) *PackageBuilder {
	b.checkLive("AddLink")
	b.links = append(b.links, NewLink(linkType, rawURL))
	return b
}

// AddLinks applies AddLink to each URL in order.
func (b *PackageBuilder) AddLinks(linkType LinkType, rawURLs ...string) *PackageBuilder {
	for _, rawURL := range rawURLs {
		b.AddLink(linkType, rawURL)
	}
	return b
}

// SetExtraFieldOne replaces the extra field at key with a single value.
func (b *PackageBuilder) SetExtraFieldOne(key, value string) {
	b.checkLive("SetExtraFieldOne")
	if b.extraFields == nil {
		b.extraFields = make(map[string]ExtraField)
	}
	b.extraFields[key] = OneValue(value)
}

// SetExtraFieldMany replaces the extra field at key with values, keeping
// order and duplicates. An empty values slice is a no-op: whatever the map
// held at key stays untouched.
func (b *PackageBuilder) SetExtraFieldMany(key string, values []string) {
	b.checkLive("SetExtraFieldMany")
	if len(values) == 0 {
		return
	}
	if b.extraFields == nil {
		b.extraFields = make(map[string]ExtraField)
	}
	b.extraFields[key] = ManyValues(append([]string(nil), values...))
}

// SetCPE records the CPE sub-identification fields.
func (b *PackageBuilder) SetCPE(cpe CPE) *PackageBuilder {
	b.checkLive("SetCPE")
	b.cpe = cpe
	return b
}

// SetFlags ORs flags into the builder's flag set.
func (b *PackageBuilder) SetFlags(flags PackageFlags) *PackageBuilder {
	b.checkLive("SetFlags")
	b.flags |= flags
	return b
}

// AddFlavor appends flavor to the flavor tag list.
func (b *PackageBuilder) AddFlavor(flavor string) *PackageBuilder {
	b.checkLive("AddFlavor")
	b.flavors = append(b.flavors, flavor)
	return b
}

// AddFlavors appends each flavor in order.
func (b *PackageBuilder) AddFlavors(flavors ...string) *PackageBuilder {
	b.checkLive("AddFlavors")
	b.flavors = append(b.flavors, flavors...)
	return b
}

// Finalize validates the accumulated fields and consumes the builder. On
// success all storage moves into the returned Package; any further use of the
// builder panics. On failure it returns one of the Err* sentinels and the
// caller should discard this entry and continue with the rest of the batch.
//
// Checks run in a fixed order and stop at the first failure: project name
// seed, visible name, version, then package name presence and emptiness.
func (b *PackageBuilder) Finalize() (*Package, error) {
	b.checkLive("Finalize")
	b.finalized = true

	if b.projectnameSeed == nil {
		return nil, ErrMissingProjectSeed
	}
	if *b.projectnameSeed == "" {
		return nil, ErrEmptyProjectSeed
	}
	if b.visiblename == nil {
		return nil, ErrMissingVisibleName
	}
	if *b.visiblename == "" {
		return nil, ErrEmptyVisibleName
	}
	if b.version == nil {
		return nil, ErrMissingVersion
	}
	if *b.version == "" {
		return nil, ErrEmptyVersion
	}
	if b.srcname == nil && b.binname == nil && len(b.binnames) == 0 {
		return nil, ErrMissingPackageNames
	}
	if b.srcname != nil && *b.srcname == "" {
		return nil, ErrEmptySrcname
	}
	if b.binname != nil && *b.binname == "" {
		return nil, ErrEmptyBinname
	}
	for _, name := range b.binnames {
		if name == "" {
			return nil, ErrEmptyBinname
		}
	}

	if b.rawversion == nil {
		// Invariant of SetVersion/SetVersionStripped, not a data error.
		defect("Finalize", "rawversion unset while version is set")
	}

	pkg := &Package{
		Subrepo: b.subrepo,

		Srcname:         deref(b.srcname),
		Binname:         deref(b.binname),
		Binnames:        b.binnames,
		Trackname:       deref(b.trackname),
		Visiblename:     *b.visiblename,
		ProjectnameSeed: *b.projectnameSeed,

		Version:    *b.version,
		Rawversion: *b.rawversion,

		Arch: b.arch,

		Maintainers: b.maintainers,
		Category:    deref(b.category),
		Summary:     b.summary,
		Licenses:    b.licenses,

		ExtraFields: b.extraFields,

		CPE: b.cpe,

		Links: b.links,

		Flags:   b.flags,
		Flavors: b.flavors,
	}

	*b = PackageBuilder{finalized: true}
	return pkg, nil
}

func cloned(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
