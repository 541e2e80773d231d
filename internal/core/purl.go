package core

import (
	packageurl "github.com/package-url/packageurl-go"
)

// Name returns the package name suitable for external identification:
// the source name when present, otherwise the single binary name, otherwise
// the first entry of the binary name list.
func (p *Package) Name() string {
	switch {
	case p.Srcname != "":
		return p.Srcname
	case p.Binname != "":
		return p.Binname
	case len(p.Binnames) > 0:
		return p.Binnames[0]
	}
	// Unreachable for records produced by Finalize.
	return ""
}

// PURL returns the package URL string identifying p within purlType
// (e.g. "apk", "deb", "rpm"). The normalized version is used.
func (p *Package) PURL(purlType string) string {
	return packageurl.NewPackageURL(purlType, "", p.Name(), p.Version, nil, "").ToString()
}

// ParsePURL parses a package URL string into its components.
func ParsePURL(purl string) (*packageurl.PackageURL, error) {
	parsed, err := packageurl.FromString(purl)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
