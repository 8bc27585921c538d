// Package errors provides the error types used across the reconciliation
// core. The error surface is a closed set of sentinel values plus a few
// structured types; callers are expected to branch with errors.Is/errors.As
// rather than by inspecting message text.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
var As = errors.As

// Common sentinel errors for the reconciliation core
var (
	// ErrEmptyVersion indicates an empty or whitespace-only version string
	ErrEmptyVersion = errors.New("empty version string")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCandidates indicates that no catalog entry scored above zero
	// against the requested package name
	ErrNoCandidates = errors.New("no similar package in catalog")

	// ErrNoCloseVersion indicates that a package name matched but no
	// neighboring version could be selected
	ErrNoCloseVersion = errors.New("no close version for matched package")

	// ErrToolMismatch indicates that two scan results were produced by
	// different or unrecognized scanner signatures
	ErrToolMismatch = errors.New("scan tool signature mismatch")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")
)

// VersionError represents a rejected version string.
type VersionError struct {
	Raw     string
	Message string
}

// Error implements the error interface
func (e *VersionError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("version error: %s", e.Message)
	}
	return fmt.Sprintf("version error for %q: %s", e.Raw, e.Message)
}

// Is implements errors.Is support
func (e *VersionError) Is(target error) bool {
	return target == ErrEmptyVersion || target == ErrInvalidInput
}

// NewVersionError creates a new VersionError
func NewVersionError(raw, message string) *VersionError {
	return &VersionError{Raw: raw, Message: message}
}

// NoMatchError reports that candidate selection exhausted the catalog
// without finding a usable match. Kind distinguishes "no name scored
// above zero" from "name matched but no close version exists".
type NoMatchError struct {
	Name    string
	Scored  int
	Kind    error // ErrNoCandidates or ErrNoCloseVersion
	Message string
}

// Error implements the error interface
func (e *NoMatchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("no match for %q: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("no match for %q: %v", e.Name, e.Kind)
}

// Is implements errors.Is support
func (e *NoMatchError) Is(target error) bool {
	return target == e.Kind
}

// NewNoMatchError creates a new NoMatchError
func NewNoMatchError(name string, scored int, kind error, message string) *NoMatchError {
	return &NoMatchError{Name: name, Scored: scored, Kind: kind, Message: message}
}

// ToolMismatchError reports incompatible scan inputs. Comparison of two
// scan results is only meaningful when both were produced by the same
// recognized scanner at the same version.
type ToolMismatchError struct {
	Expected string
	Actual   string
}

// Error implements the error interface
func (e *ToolMismatchError) Error() string {
	return fmt.Sprintf("scan tool signature mismatch: expected %q, got %q", e.Expected, e.Actual)
}

// Is implements errors.Is support
func (e *ToolMismatchError) Is(target error) bool {
	return target == ErrToolMismatch
}

// NewToolMismatchError creates a new ToolMismatchError
func NewToolMismatchError(expected, actual string) *ToolMismatchError {
	return &ToolMismatchError{Expected: expected, Actual: actual}
}

// ParseError represents an error when parsing collaborator-supplied data
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// Helper functions for error checking

// IsEmptyVersion checks if an error reports a rejected version string
func IsEmptyVersion(err error) bool {
	return errors.Is(err, ErrEmptyVersion)
}

// IsNoCandidates checks if an error reports an exhausted candidate search
func IsNoCandidates(err error) bool {
	return errors.Is(err, ErrNoCandidates)
}

// IsNoCloseVersion checks if an error reports a matched name without a
// usable neighboring version
func IsNoCloseVersion(err error) bool {
	return errors.Is(err, ErrNoCloseVersion)
}

// IsToolMismatch checks if an error reports incompatible scan inputs
func IsToolMismatch(err error) bool {
	return errors.Is(err, ErrToolMismatch)
}
