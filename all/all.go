// Package all imports all supported repository parsers.
//
// Import this package for its side effects to register all repositories:
//
//	import (
//		"github.com/pkgatlas/canonical"
//		_ "github.com/pkgatlas/canonical/all"
//	)
//
//	// Now all repositories are available
//	repositories := canonical.SupportedRepositories()
//	// ["alpine", "fdroid", "freebsd"]
package all

import (
	_ "github.com/pkgatlas/canonical/internal/alpine"
	_ "github.com/pkgatlas/canonical/internal/fdroid"
	_ "github.com/pkgatlas/canonical/internal/freebsd"
)
