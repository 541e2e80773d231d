// Package version provides the suffix-stripping rule engine used to derive
// comparison-friendly versions from raw upstream version strings.
package version

import "strings"

type rule func(string) string

// Stripper applies an ordered chain of stripping rules to a version string.
// Rules whose separator does not occur leave the string unchanged. A Stripper
// is pure and safe for concurrent use once built.
type Stripper struct {
	rules []rule
}

// NewStripper returns a stripper with no rules; Apply returns its input
// until rules are added.
func NewStripper() *Stripper {
	return &Stripper{}
}

// StripLeft drops everything up to and including the first occurrence of sep.
func (s *Stripper) StripLeft(sep string) *Stripper {
	s.rules = append(s.rules, func(v string) string {
		if _, rest, found := strings.Cut(v, sep); found {
			return rest
		}
		return v
	})
	return s
}

// StripLeftGreedy drops everything up to and including the last occurrence of sep.
func (s *Stripper) StripLeftGreedy(sep string) *Stripper {
	s.rules = append(s.rules, func(v string) string {
		if i := strings.LastIndex(v, sep); i >= 0 {
			return v[i+len(sep):]
		}
		return v
	})
	return s
}

// StripRight truncates at the last occurrence of sep.
func (s *Stripper) StripRight(sep string) *Stripper {
	s.rules = append(s.rules, func(v string) string {
		if i := strings.LastIndex(v, sep); i >= 0 {
			return v[:i]
		}
		return v
	})
	return s
}

// StripRightGreedy truncates at the first occurrence of sep.
func (s *Stripper) StripRightGreedy(sep string) *Stripper {
	s.rules = append(s.rules, func(v string) string {
		version, _, _ := strings.Cut(v, sep)
		return version
	})
	return s
}

// Apply runs the rule chain on version in order.
func (s *Stripper) Apply(version string) string {
	for _, r := range s.rules {
		version = r(version)
	}
	return version
}
