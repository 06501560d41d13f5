package tagscan

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPackages is returned when the package source enumerates an
	// empty package set; a hash universe cannot be built from nothing.
	ErrNoPackages = errors.New("package source has no packages")
)

// ErrContextCreation indicates that the scanner context could not be built
// from the package source. This is fatal for a cache build: without a
// correct hash universe every scan result would be wrong.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrContextCreation struct {
	cause error
}

func (e *ErrContextCreation) Error() string {
	return fmt.Sprintf("create scanner context: %v", e.cause)
}

func (e *ErrContextCreation) Unwrap() error { return e.cause }

// ErrPackageOpen indicates that one package could not be opened during the
// walk. The walk itself continues; the error is reported per package.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrPackageOpen struct {
	Path  string
	cause error
}

func (e *ErrPackageOpen) Error() string {
	return fmt.Sprintf("open package %s: %v", e.Path, e.cause)
}

func (e *ErrPackageOpen) Unwrap() error { return e.cause }
