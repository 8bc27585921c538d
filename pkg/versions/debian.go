package versions

import "strings"

// debVersion is the distribution-style parsed form: an upstream part and an
// optional revision, split at the last hyphen. The epoch is stripped before
// parsing and does not participate in ordering.
type debVersion struct {
	upstream string
	revision string
}

// parseDeb parses s into a distribution-style version. The upstream part
// must start with a digit and both parts are restricted to the
// distribution's version character set.
func parseDeb(s string) (debVersion, bool) {
	if s == "" {
		return debVersion{}, false
	}

	upstream, revision := s, ""
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		upstream, revision = s[:i], s[i+1:]
	}

	if upstream == "" || !isDigit(upstream[0]) {
		return debVersion{}, false
	}
	// Hyphens before the final split point stay in the upstream part.
	for i := 0; i < len(upstream); i++ {
		if !isVersionChar(upstream[i]) && upstream[i] != '-' {
			return debVersion{}, false
		}
	}
	for i := 0; i < len(revision); i++ {
		if !isVersionChar(revision[i]) {
			return debVersion{}, false
		}
	}

	return debVersion{upstream: upstream, revision: revision}, true
}

// compareDeb orders two distribution-style versions: upstream first,
// revision as tie-break.
func compareDeb(a, b debVersion) int {
	if c := verrevcmp(a.upstream, b.upstream); c != 0 {
		return c
	}
	return verrevcmp(a.revision, b.revision)
}

// verrevcmp implements the distribution ordering over a version fragment:
// alternating non-digit and digit spans, with '~' sorting before anything
// including the end of the string, letters before other characters, and
// digit spans compared numerically.
func verrevcmp(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		for (i < len(a) && !isDigit(a[i])) || (j < len(b) && !isDigit(b[j])) {
			ac, bc := 0, 0
			if i < len(a) {
				ac = charOrder(a[i])
			}
			if j < len(b) {
				bc = charOrder(b[j])
			}
			if ac != bc {
				return ac - bc
			}
			i++
			j++
		}

		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}

		firstDiff := 0
		for i < len(a) && j < len(b) && isDigit(a[i]) && isDigit(b[j]) {
			if firstDiff == 0 {
				firstDiff = int(a[i]) - int(b[j])
			}
			i++
			j++
		}
		if i < len(a) && isDigit(a[i]) {
			return 1
		}
		if j < len(b) && isDigit(b[j]) {
			return -1
		}
		if firstDiff != 0 {
			return firstDiff
		}
	}
	return 0
}

// charOrder gives the sort weight of a non-digit version character.
func charOrder(c byte) int {
	switch {
	case c == '~':
		return -1
	case isDigit(c):
		return 0
	case isAlpha(c):
		return int(c)
	default:
		return int(c) + 256
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isVersionChar reports whether c may appear in a version fragment.
// The final hyphen is consumed by the upstream/revision split before
// validation, so it is never legal in a revision.
func isVersionChar(c byte) bool {
	if isDigit(c) || isAlpha(c) {
		return true
	}
	return c == '.' || c == '+' || c == '~'
}
