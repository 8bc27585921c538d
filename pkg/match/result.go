// Package match selects, from an external catalog, the package best
// matching an internally built (name, version) pair.
//
// Selection is heuristic and deterministic: names are scored through the
// names package cascade, versions are ranked by the hierarchical distance
// metric, and every tie-break is a fixed sort order. The full candidate
// list is returned alongside the chosen entry so that a reviewer can audit
// why a match was picked.
package match

import (
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/versions"
)

// Candidate is one catalog version of the chosen name, scored against the
// requested version. The requested version itself appears once in the list
// with IsRequested set.
type Candidate struct {
	Version     *versions.Version
	Distance    int
	IsRequested bool
}

// Result is the outcome of a selection: the chosen external package, the
// two scores that produced it, and the ranked candidate list.
type Result struct {
	// Name is the chosen catalog source name.
	Name string
	// Version is the catalog version nearest to the requested one.
	Version *versions.Version
	// PackageScore is the name cascade score for the chosen name.
	PackageScore int
	// VersionScore is the bounded similarity between the requested and
	// the chosen version, in [0, 100].
	VersionScore float64
	// Candidates is the full version candidate list in ranking order,
	// kept for auditability.
	Candidates []Candidate
}
