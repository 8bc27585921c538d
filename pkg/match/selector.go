package match

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/catalogs"
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/errors"
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/names"
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/versions"
)

// Selector picks the best catalog match for a requested package.
// A Selector is immutable after construction and safe for concurrent use.
type Selector struct {
	aliases map[string]string
}

// Option configures a Selector.
type Option func(*Selector)

// WithAliases supplies the package-name alias table consulted by the name
// scoring cascade.
func WithAliases(aliases map[string]string) Option {
	return func(s *Selector) {
		s.aliases = aliases
	}
}

// New creates a Selector.
func New(opts ...Option) *Selector {
	s := &Selector{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// nameRank is a scored catalog entry during name ranking.
type nameRank struct {
	score   int
	name    string
	version string
}

// Select scores every catalog entry against the requested name, picks the
// best-scoring catalog name, and of that name's versions selects the one
// nearest to the requested version.
//
// It fails with ErrNoCandidates when no catalog name scores above zero,
// and with ErrNoCloseVersion when the chosen name has no usable neighbor
// version around the requested one.
func (s *Selector) Select(name string, version *versions.Version, catalog catalogs.Reader) (*Result, error) {
	if version == nil {
		return nil, errors.New("nil requested version")
	}

	ranked := s.rankNames(name, catalog)
	if len(ranked) == 0 {
		return nil, errors.NewNoMatchError(name, 0, errors.ErrNoCandidates, "")
	}
	chosenName := ranked[0].name
	nameScore := ranked[0].score

	candidates := buildCandidates(version, catalog.VersionsOf(chosenName))
	chosen, err := nearestNeighbor(name, candidates)
	if err != nil {
		return nil, err
	}

	return &Result{
		Name:         chosenName,
		Version:      chosen.Version,
		PackageScore: nameScore,
		VersionScore: version.Similarity(chosen.Version),
		Candidates:   candidates,
	}, nil
}

// rankNames scores all catalog entries against the requested name and
// returns the positive-scoring ones, stable-sorted descending on
// (score, name, version) with natural (numeric-aware) string ordering.
func (s *Selector) rankNames(name string, catalog catalogs.Reader) []nameRank {
	var ranked []nameRank
	for _, entry := range catalog.List() {
		score := names.Score(name, entry.SourceName, s.aliases)
		if score > 0 {
			ranked = append(ranked, nameRank{score: score, name: entry.SourceName, version: entry.Version})
		}
	}

	col := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if c := col.CompareString(ranked[i].name, ranked[j].name); c != 0 {
			return c > 0
		}
		return col.CompareString(ranked[i].version, ranked[j].version) > 0
	})
	return ranked
}

// buildCandidates converts the chosen name's catalog versions into scored
// candidates, adds the synthetic requested entry, and sorts the set
// descending on (version, distance, isRequested) so that larger versions
// come first and the requested entry leads any raw duplicate of itself.
func buildCandidates(requested *versions.Version, versionStrings []string) []Candidate {
	candidates := make([]Candidate, 0, len(versionStrings)+1)
	for _, raw := range versionStrings {
		v, err := versions.NewVersion(raw)
		if err != nil {
			// Empty catalog version strings carry no information.
			continue
		}
		candidates = append(candidates, Candidate{
			Version:  v,
			Distance: requested.Distance(v),
		})
	}
	candidates = append(candidates, Candidate{
		Version:     requested,
		Distance:    0,
		IsRequested: true,
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		if c := candidates[i].Version.Compare(candidates[j].Version); c != 0 {
			return c > 0
		}
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance > candidates[j].Distance
		}
		return candidates[i].IsRequested && !candidates[j].IsRequested
	})
	return candidates
}

// nearestNeighbor locates the requested entry in the sorted candidate list
// and picks the closer of its two adjacent catalog entries. A missing side
// counts as MaxDistance; an exact tie resolves to the earlier entry in the
// descending order (the larger version).
func nearestNeighbor(name string, candidates []Candidate) (Candidate, error) {
	self := -1
	for i, c := range candidates {
		if c.IsRequested {
			self = i
			break
		}
	}
	if self < 0 {
		// The synthetic entry is always appended; not finding it is a bug.
		return Candidate{}, fmt.Errorf("requested version missing from candidate set")
	}

	prevDist, nextDist := versions.MaxDistance, versions.MaxDistance
	if self-1 >= 0 {
		prevDist = candidates[self-1].Distance
	}
	if self+1 < len(candidates) {
		nextDist = candidates[self+1].Distance
	}

	if prevDist == versions.MaxDistance && nextDist == versions.MaxDistance {
		return Candidate{}, errors.NewNoMatchError(name, len(candidates)-1, errors.ErrNoCloseVersion,
			"no neighboring version could be ranked")
	}

	if prevDist <= nextDist {
		return candidates[self-1], nil
	}
	return candidates[self+1], nil
}
