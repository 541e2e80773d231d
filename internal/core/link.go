package core

import "strings"

// Link is a typed outbound reference extracted from repository metadata.
// HasFragment distinguishes "no fragment" from an empty one ("url#").
type Link struct {
	Type        LinkType
	URL         string
	Fragment    string
	HasFragment bool
}

// NewLink splits rawURL at its first '#' into base URL and fragment.
func NewLink(linkType LinkType, rawURL string) Link {
	if base, fragment, found := strings.Cut(rawURL, "#"); found {
		return Link{Type: linkType, URL: base, Fragment: fragment, HasFragment: true}
	}
	return Link{Type: linkType, URL: rawURL}
}
