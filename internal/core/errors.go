package core

import (
	"errors"
	"fmt"
)

// Validation errors returned by PackageBuilder.Finalize. Each failed invariant
// has its own sentinel so callers and tests can tell exactly which one broke;
// they are never folded into a generic "invalid package" error.
var (
	ErrMissingProjectSeed  = errors.New("missing project name seed")
	ErrEmptyProjectSeed    = errors.New("empty project name seed")
	ErrMissingVisibleName  = errors.New("missing visible name")
	ErrEmptyVisibleName    = errors.New("empty visible name")
	ErrMissingVersion      = errors.New("missing version")
	ErrEmptyVersion        = errors.New("empty version")
	ErrMissingPackageNames = errors.New("missing package names")
	ErrEmptySrcname        = errors.New("empty source package name")
	ErrEmptyBinname        = errors.New("empty binary package name")
)

// ValidationError attaches repository context to a finalize failure.
type ValidationError struct {
	Repository string
	Err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Repository, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefectError signals a bug in a calling parser, not malformed upstream data.
// It is delivered via panic and must never be recovered into normal error
// handling: a parser that assigns the same identity role twice cannot be
// trusted to produce an unambiguous record.
type DefectError struct {
	Op     string
	Detail string
}

func (e *DefectError) Error() string {
	return fmt.Sprintf("parser defect in %s: %s", e.Op, e.Detail)
}

func defect(op, format string, args ...any) {
	panic(&DefectError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
