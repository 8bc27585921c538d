package versions

import "math"

// MaxDistance is the sentinel returned when a distance cannot be computed:
// a nil operand or a side whose numeric parses both failed. It is strictly
// larger than any computable distance.
const MaxDistance = math.MaxInt32

// Hierarchical component weights. A lower-order component only contributes
// when every higher-order component is equal.
const (
	weightMajor = 10000
	weightMinor = 1000
	weightMicro = 100
	weightPost  = 10
)

// Clamps applied in simplified mode, one per considered component.
const (
	clampMajor = 50000
	clampMinor = 5000
	clampMicro = 50
)

// postTermCap keeps the post difference plus simplification penalties from
// bleeding into the micro weight.
const postTermCap = 9

// Distance computes the hierarchical distance between two versions over the
// package-style (major, minor, micro, post) tuples. Higher-order component
// differences dominate: a major difference zeroes out everything below it,
// and so on down the tuple. The post term additionally carries a penalty of
// one per side whose package-style parse needed the simplified string.
//
// The result is MaxDistance when other is nil or when either side carries a
// parse-error flag.
func (v *Version) Distance(other *Version) int {
	if other == nil {
		return MaxDistance
	}
	if v.HasFlag(FlagAnyError) || other.HasFlag(FlagAnyError) {
		return MaxDistance
	}

	dMajor := abs(v.pkg[0] - other.pkg[0])
	dMinor := abs(v.pkg[1] - other.pkg[1])
	dMicro := abs(v.pkg[2] - other.pkg[2])
	dPost := abs(v.pkg[3] - other.pkg[3])

	switch {
	case dMajor > 0:
		return capped(dMajor * weightMajor)
	case dMinor > 0:
		return capped(dMinor * weightMinor)
	case dMicro > 0:
		return capped(dMicro * weightMicro)
	}

	post := dPost + v.simplificationPenalty() + other.simplificationPenalty()
	if post > postTermCap {
		post = postTermCap
	}
	return post * weightPost
}

// DistanceSimplified computes the hierarchical distance considering only
// the major, minor and micro components, with each component's contribution
// clamped into a fixed range. This is the form Similarity is derived from.
func (v *Version) DistanceSimplified(other *Version) int {
	if other == nil {
		return MaxDistance
	}
	if v.HasFlag(FlagAnyError) || other.HasFlag(FlagAnyError) {
		return MaxDistance
	}

	dMajor := abs(v.pkg[0] - other.pkg[0])
	dMinor := abs(v.pkg[1] - other.pkg[1])
	dMicro := abs(v.pkg[2] - other.pkg[2])

	switch {
	case dMajor > 0:
		return clamp(dMajor*weightMajor, clampMajor)
	case dMinor > 0:
		return clamp(dMinor*weightMinor, clampMinor)
	case dMicro > 0:
		return clamp(dMicro*weightPost, clampMicro)
	}
	return 0
}

// Similarity maps the simplified distance onto a bounded score in [0, 100].
// Three regimes, split on the distance magnitude:
//
//   - the major version changed (>= 10000): 20 points per major step,
//     clamped to [0, 80]
//   - only the minor version changed (>= 100): 2 points per minor step,
//     clamped to [82, 99]
//   - micro-only changes: 0.2 points per micro step, clamped to [99, 100]
//
// Exact tuple equality scores 100.
func (v *Version) Similarity(other *Version) float64 {
	d := v.DistanceSimplified(other)
	if d == 0 {
		return 100
	}

	switch {
	case d >= weightMajor:
		return clampF(100-20*float64(d)/weightMajor, 0, 80)
	case d >= weightMicro:
		return clampF(100-2*float64(d)/weightMinor, 82, 99)
	default:
		return clampF(100-0.2*float64(d)/weightPost, 99, 100)
	}
}

// simplificationPenalty is 1 when the package-style parse of this version
// needed the simplified string.
func (v *Version) simplificationPenalty() int {
	if v.HasFlag(FlagPkgSimplified) {
		return 1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// capped bounds a full-mode term strictly below the sentinel so that real
// distances and the error sentinel never collide.
func capped(n int) int {
	if n >= MaxDistance {
		return MaxDistance - 1
	}
	return n
}

func clamp(n, limit int) int {
	if n > limit {
		return limit
	}
	return n
}

func clampF(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
