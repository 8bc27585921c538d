// Package versions models free-form package version strings as they appear
// in build recipes and distribution catalogs (Yocto/OE recipes, Debian
// packages, upstream tarballs).
//
// A Version is constructible from any non-empty string: parsing never fails,
// it degrades. Two independent numeric parses are attempted — a package-style
// four-component tuple and a distribution-style form — first against the
// original string and then against a simplified truncation of it. The
// outcome of each attempt is recorded in a flag bitmask, and any computation
// over a version that could not be parsed at all returns the MaxDistance
// sentinel instead of an error, so batch reconciliation keeps progressing.
package versions

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/errors"
)

// Flags records how the two numeric parses of a version string went.
type Flags uint8

const (
	// FlagPkgOrig is set when the package-style parse accepted the
	// original string.
	FlagPkgOrig Flags = 1 << iota
	// FlagPkgSimplified is set when the package-style parse needed the
	// simplified string.
	FlagPkgSimplified
	// FlagPkgError is set when the package-style parse failed on both.
	FlagPkgError
	// FlagDebOrig is set when the distribution-style parse accepted the
	// original string.
	FlagDebOrig
	// FlagDebSimplified is set when the distribution-style parse needed
	// the simplified string.
	FlagDebSimplified
	// FlagDebError is set when the distribution-style parse failed on both.
	FlagDebError
)

// FlagAnyError matches either parse-failure flag.
const FlagAnyError = FlagPkgError | FlagDebError

// epochRe matches a Debian-style epoch prefix (digits followed by a colon).
var epochRe = regexp.MustCompile(`^\d+:`)

// qSchemeRe matches the irregular X.Y.q-Z numbering used by a known
// upstream; it is rewritten to X.YZ before any general parsing.
var qSchemeRe = regexp.MustCompile(`^(\d+)\.(\d+)\.q-(\d+)$`)

// Version is an immutable parsed view of a free-form version string.
type Version struct {
	// Raw is the input string, unmodified.
	Raw string
	// Simplified is the truncated numeric form used as a parse fallback.
	Simplified string

	flags Flags
	pkg   [4]int // major, minor, micro, post
	deb   debVersion
}

// NewVersion parses raw into a Version. It fails only when raw is empty or
// whitespace-only; every other input yields a Version, possibly with
// degraded-parse flags set.
func NewVersion(raw string) (*Version, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewVersionError(raw, "empty or whitespace-only")
	}

	normalized := epochRe.ReplaceAllString(strings.TrimSpace(raw), "")
	normalized = qSchemeRe.ReplaceAllString(normalized, "$1.$2$3")

	v := &Version{
		Raw:        raw,
		Simplified: simplify(normalized),
	}

	// Package-style parse: original first, simplified as fallback.
	if tuple, ok := parseTuple(normalized); ok {
		v.pkg = tuple
		v.flags |= FlagPkgOrig
	} else if tuple, ok := parseTuple(v.Simplified); ok {
		v.pkg = tuple
		v.flags |= FlagPkgSimplified
	} else {
		v.flags |= FlagPkgError
	}

	// Distribution-style parse: same fallback order.
	if deb, ok := parseDeb(normalized); ok {
		v.deb = deb
		v.flags |= FlagDebOrig
	} else if deb, ok := parseDeb(v.Simplified); ok {
		v.deb = deb
		v.flags |= FlagDebSimplified
	} else {
		v.flags |= FlagDebError
	}

	return v, nil
}

// MustVersion parses raw and panics on error. Intended for tests and
// literals known to be non-empty.
func MustVersion(raw string) *Version {
	v, err := NewVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Flags returns the parse-degradation bitmask.
func (v *Version) Flags() Flags {
	return v.flags
}

// HasFlag reports whether any bit of mask is set.
func (v *Version) HasFlag(mask Flags) bool {
	return v.flags&mask != 0
}

// Tuple returns the package-style (major, minor, micro, post) components.
// All zero when the package-style parse failed.
func (v *Version) Tuple() (major, minor, micro, post int) {
	return v.pkg[0], v.pkg[1], v.pkg[2], v.pkg[3]
}

// Compare orders two versions by their distribution-style parsed form.
// It returns a negative number when v sorts before other, zero when the
// forms are indistinguishable, and a positive number otherwise. When either
// side lacks a distribution-style parse the comparison falls back to the
// raw strings.
func (v *Version) Compare(other *Version) int {
	if v.HasFlag(FlagDebError) || other.HasFlag(FlagDebError) {
		return strings.Compare(v.Raw, other.Raw)
	}
	return compareDeb(v.deb, other.deb)
}

// Equal reports raw-string equality.
func (v *Version) Equal(other *Version) bool {
	return other != nil && v.Raw == other.Raw
}

// String returns the raw version string.
func (v *Version) String() string {
	return v.Raw
}

// simplify builds the truncated numeric form of a version string: scan left
// to right, stop at the first alphabetic character or at '+', '-' or '~',
// and keep at most three dot-separated groups' worth of dots.
func simplify(s string) string {
	var b strings.Builder
	dots := 0
	for _, r := range s {
		if unicode.IsLetter(r) || r == '+' || r == '-' || r == '~' {
			break
		}
		if r == '.' {
			dots++
			if dots > 3 {
				break
			}
		}
		b.WriteRune(r)
	}
	return strings.TrimSuffix(b.String(), ".")
}

// parseTuple parses a strict dotted-numeric string into up to four
// components. Anything else (empty groups, non-digits, more than four
// groups) is rejected.
func parseTuple(s string) ([4]int, bool) {
	var tuple [4]int
	if s == "" {
		return tuple, false
	}
	parts := strings.Split(s, ".")
	if len(parts) > 4 {
		return tuple, false
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || part == "" {
			return tuple, false
		}
		tuple[i] = n
	}
	return tuple, true
}
