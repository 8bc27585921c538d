package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCascade(t *testing.T) {
	aliases := map[string]string{
		"libpcre2": "pcre2",
		"libz":     "zlib",
	}

	tests := []struct {
		name      string
		given     string
		candidate string
		wantRule  string
		wantScore int
	}{
		{"exact match", "busybox", "busybox", "exact", 100},
		{"alias table hit", "libpcre2", "pcre2", "alias", 95},
		{"alias beats canonical", "libz", "zlib", "alias", 95},
		{"dehyphenated", "glib-2.0", "glib2.0", "dehyphenated", 92},
		{"canonical trailing digits", "gtk4", "gtk", "canonical", 90},
		{"canonical -v marker", "zlib-v2", "zlib", "canonical", 90},
		{"isc prefix", "dhcp", "iscdhcp-server", "isc-prefix", 80},
		{"lib prefix on given", "libattr", "attr", "lib-stripped", 70},
		{"lib prefix on candidate", "attr", "libattr", "lib-stripped", 70},
		{"python3 normalized", "python3-iniparse", "python-iniparse", "python3-normalized", 70},
		{"python stripped", "python3-pip", "pip", "python-stripped", 60},
		{"fonts stripped", "liberation-fonts", "liberation-", "fonts-stripped", 60},
		{"canonical prefix", "wpa-supplicant", "wpasupplicant-udeb", "prefix", 50},
		{"no match", "busybox", "coreutils", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, score := MatchingRule(tt.given, tt.candidate, aliases)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantScore, Score(tt.given, tt.candidate, aliases))
		})
	}
}

func TestScoreNilAliases(t *testing.T) {
	assert.Equal(t, 100, Score("zlib", "zlib", nil))
	assert.Equal(t, 0, Score("libpcre2", "pcre2ish-unrelated", nil))
}

func TestScoreRuleOrder(t *testing.T) {
	// The alias rule must win over every later normalization rule: with an
	// alias present the score is pinned at 95 even though the dehyphenated
	// rule would also match.
	aliases := map[string]string{"glib-2.0": "glib2.0"}
	assert.Equal(t, ScoreAlias, Score("glib-2.0", "glib2.0", aliases))

	// Without the alias the cascade falls through to the next rule.
	assert.Equal(t, ScoreDehyphenated, Score("glib-2.0", "glib2.0", nil))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gtk4", "gtk"},
		{"glib-2.0", "glib"},
		{"libxml2", "libxml"},
		{"lz4-v1.9", "lz4"},
		{"pcre~8", "pcre"},
		{"name+2", "name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.in), "in=%q", tt.in)
	}
}

func BenchmarkScore(b *testing.B) {
	aliases := map[string]string{"libpcre2": "pcre2"}
	for i := 0; i < b.N; i++ {
		Score("python3-iniparse", "python-iniparse", aliases)
	}
}
