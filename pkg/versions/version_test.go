package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/noi-techpark/solda-aliens4friends-sub000/pkg/errors"
)

func TestNewVersionRejectsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := NewVersion(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, pkgerrors.IsEmptyVersion(err))
	}
}

func TestNewVersionNeverFailsOnGarbage(t *testing.T) {
	// Parsing degrades into flags, it does not error.
	v, err := NewVersion("not-a-version-at-all")
	require.NoError(t, err)
	assert.True(t, v.HasFlag(FlagPkgError))
	assert.True(t, v.HasFlag(FlagDebError))
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"1.2.3rc1", "1.2.3"},
		{"1.2.3-r0", "1.2.3"},
		{"1.2.3+git0+abcdef", "1.2.3"},
		{"1.2.3~beta", "1.2.3"},
		{"1.2.3.4", "1.2.3.4"},
		{"1.2.3.4.5", "1.2.3.4"},
		{"2020.07", "2020.07"},
		{"v1.2", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := NewVersion(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Simplified)
		})
	}
}

func TestNewVersionFlags(t *testing.T) {
	tests := []struct {
		raw        string
		want       Flags
		wantAbsent Flags
	}{
		{"1.2.3", FlagPkgOrig | FlagDebOrig, FlagAnyError},
		{"1.2.3-r0", FlagPkgSimplified | FlagDebOrig, FlagAnyError},
		{"1.2.3rc1", FlagPkgSimplified | FlagDebOrig, FlagAnyError},
		{"2:1.2.3", FlagPkgOrig | FlagDebOrig, FlagAnyError},
		{"abc", FlagPkgError | FlagDebError, FlagPkgOrig | FlagDebOrig},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := NewVersion(tt.raw)
			require.NoError(t, err)
			assert.True(t, v.HasFlag(tt.want), "flags=%b", v.Flags())
			assert.False(t, v.HasFlag(tt.wantAbsent), "flags=%b", v.Flags())
		})
	}
}

func TestEpochStripped(t *testing.T) {
	v := MustVersion("2:1.2.3")
	major, minor, micro, post := v.Tuple()
	assert.Equal(t, []int{1, 2, 3, 0}, []int{major, minor, micro, post})
}

func TestQSchemeFixup(t *testing.T) {
	v := MustVersion("1.0.q-16")
	require.False(t, v.HasFlag(FlagPkgError))
	major, minor, _, _ := v.Tuple()
	assert.Equal(t, 1, major)
	assert.Equal(t, 16, minor)
}

func TestTuple(t *testing.T) {
	tests := []struct {
		raw  string
		want [4]int
	}{
		{"1", [4]int{1, 0, 0, 0}},
		{"1.2", [4]int{1, 2, 0, 0}},
		{"1.2.3", [4]int{1, 2, 3, 0}},
		{"1.2.3.4", [4]int{1, 2, 3, 4}},
		{"0.33", [4]int{0, 33, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := MustVersion(tt.raw)
			major, minor, micro, post := v.Tuple()
			assert.Equal(t, tt.want, [4]int{major, minor, micro, post})
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign only
	}{
		{"1.0", "1.0", 0},
		{"1.9", "1.10", -1},
		{"1.0~rc1", "1.0", -1},
		{"1.0", "1.0a", -1},
		{"1.0-r1", "1.0-r2", -1},
		{"2:1.0", "1.0", 0}, // epoch does not participate
		{"1.2.3", "1.2.3+git", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, b := MustVersion(tt.a), MustVersion(tt.b)
			got := a.Compare(b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
				assert.Positive(t, b.Compare(a))
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestEqualComparesRawStrings(t *testing.T) {
	assert.True(t, MustVersion("1.0").Equal(MustVersion("1.0")))
	// Ordering-equal but textually different raw strings are not Equal.
	assert.False(t, MustVersion("2:1.0").Equal(MustVersion("1.0")))
	assert.False(t, MustVersion("1.0").Equal(nil))
}
