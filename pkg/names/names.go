// Package names scores how plausibly an internally built package name and
// an externally catalogued package name refer to the same software.
//
// The score is discrete: each value identifies the single normalization
// rule that matched, so a caller can tell *why* two names were considered
// similar. Rules are kept as an explicit ordered list evaluated top to
// bottom; the first match wins and the list order is part of the contract.
package names

import "strings"

// Score values, one per rule. Zero means no rule matched.
const (
	ScoreExact          = 100
	ScoreAlias          = 95
	ScoreDehyphenated   = 92
	ScoreCanonical      = 90
	ScoreISCPrefix      = 80
	ScoreLibStripped    = 70
	ScorePython3        = 70
	ScorePythonStripped = 60
	ScoreFontsStripped  = 60
	ScorePrefix         = 50
	ScoreNone           = 0
)

// Rule is one step of the scoring cascade.
type Rule struct {
	// Name identifies the rule in audit output and tests.
	Name string
	// Score is awarded when Match reports true.
	Score int
	// Match reports whether the rule applies to the given pair.
	Match func(given, candidate string, aliases map[string]string) bool
}

// Cascade is the ordered rule list. Evaluation stops at the first match.
var Cascade = []Rule{
	{
		Name:  "exact",
		Score: ScoreExact,
		Match: func(given, candidate string, _ map[string]string) bool {
			return given == candidate
		},
	},
	{
		Name:  "alias",
		Score: ScoreAlias,
		Match: func(given, candidate string, aliases map[string]string) bool {
			alias, ok := aliases[given]
			return ok && alias == candidate
		},
	},
	{
		// glib-2.0 vs glib2.0
		Name:  "dehyphenated",
		Score: ScoreDehyphenated,
		Match: func(given, candidate string, _ map[string]string) bool {
			return strings.ReplaceAll(given, "-", "") == candidate
		},
	},
	{
		Name:  "canonical",
		Score: ScoreCanonical,
		Match: func(given, candidate string, _ map[string]string) bool {
			return Canonicalize(given) == Canonicalize(candidate)
		},
	},
	{
		// ISC-prefixed upstream naming convention (e.g. dhcp vs isc-dhcp).
		Name:  "isc-prefix",
		Score: ScoreISCPrefix,
		Match: func(given, candidate string, _ map[string]string) bool {
			return strings.HasPrefix(candidate, "isc"+Canonicalize(given))
		},
	},
	{
		Name:  "lib-stripped",
		Score: ScoreLibStripped,
		Match: func(given, candidate string, _ map[string]string) bool {
			if !strings.HasPrefix(given, "lib") && !strings.HasPrefix(candidate, "lib") {
				return false
			}
			return strings.TrimPrefix(given, "lib") == strings.TrimPrefix(candidate, "lib")
		},
	},
	{
		Name:  "python3-normalized",
		Score: ScorePython3,
		Match: func(given, candidate string, _ map[string]string) bool {
			if !hasPython3(given, candidate) {
				return false
			}
			return python3ToPython(given) == python3ToPython(candidate)
		},
	},
	{
		Name:  "python-stripped",
		Score: ScorePythonStripped,
		Match: func(given, candidate string, _ map[string]string) bool {
			if !hasPython3(given, candidate) {
				return false
			}
			return stripPython(given) == stripPython(candidate)
		},
	},
	{
		Name:  "fonts-stripped",
		Score: ScoreFontsStripped,
		Match: func(given, candidate string, _ map[string]string) bool {
			return strings.ReplaceAll(given, "fonts", "") == strings.ReplaceAll(candidate, "fonts", "")
		},
	},
	{
		Name:  "prefix",
		Score: ScorePrefix,
		Match: func(given, candidate string, _ map[string]string) bool {
			return strings.HasPrefix(candidate, Canonicalize(given))
		},
	},
}

// Score evaluates the cascade for the given pair. The aliases table maps a
// package name to its known-correct catalog counterpart and is consulted
// only by the alias rule; a nil map is valid.
func Score(given, candidate string, aliases map[string]string) int {
	for _, rule := range Cascade {
		if rule.Match(given, candidate, aliases) {
			return rule.Score
		}
	}
	return ScoreNone
}

// MatchingRule returns the name and score of the first matching rule, or
// ("", 0) when nothing matches. Useful for audit logging.
func MatchingRule(given, candidate string, aliases map[string]string) (string, int) {
	for _, rule := range Cascade {
		if rule.Match(given, candidate, aliases) {
			return rule.Name, rule.Score
		}
	}
	return "", ScoreNone
}

// Canonicalize reduces a package name to its comparable stem: trailing
// digits, dots, tildes and pluses are stripped, the substring "-v" is
// dropped, and remaining hyphens are removed.
func Canonicalize(name string) string {
	name = strings.TrimRight(name, "0123456789.~+")
	name = strings.ReplaceAll(name, "-v", "")
	return strings.ReplaceAll(name, "-", "")
}

// hasPython3 reports whether either name carries the python3 prefix.
func hasPython3(given, candidate string) bool {
	return strings.HasPrefix(given, "python3") || strings.HasPrefix(candidate, "python3")
}

// python3ToPython rewrites the first python3 occurrence to python.
func python3ToPython(name string) string {
	return strings.Replace(name, "python3", "python", 1)
}

// stripPython removes the python3/python prefix entirely, along with the
// separating hyphen if present.
func stripPython(name string) string {
	name = python3ToPython(name)
	name = strings.Replace(name, "python", "", 1)
	return strings.Trim(name, "-")
}
