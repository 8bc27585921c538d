package delta

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/scan"
)

// Findings section keys as they appear in diff details and serialized
// output.
const (
	SectionLicenses           = "licenses"
	SectionLicenseExpressions = "license_expressions"
	SectionCopyrights         = "copyrights"
)

// ValueChange records one finding value that was rewritten in place.
type ValueChange struct {
	Old string `json:"old" yaml:"old"`
	New string `json:"new" yaml:"new"`
}

// FindingsDiff is the structural difference between the findings of two
// scans of the same file. Keys of all three maps are section names.
//
// Reordering within a section is not a difference: sections are compared
// as multisets first. When both sides of a section keep the same length,
// remaining differences are paired positionally and reported as Changed;
// otherwise they decompose into Added and Removed values.
type FindingsDiff struct {
	Added   map[string][]string      `json:"added,omitempty" yaml:"added,omitempty"`
	Removed map[string][]string      `json:"removed,omitempty" yaml:"removed,omitempty"`
	Changed map[string][]ValueChange `json:"changed,omitempty" yaml:"changed,omitempty"`
}

// Empty reports whether the two findings were structurally identical.
func (d *FindingsDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffFindings computes the structural diff between two findings records.
// Line numbers are already stripped at decode time, so equal content scans
// always produce an empty diff.
func DiffFindings(old, new scan.Findings) *FindingsDiff {
	d := &FindingsDiff{}
	d.diffSection(SectionLicenses, old.Licenses, new.Licenses)
	d.diffSection(SectionLicenseExpressions, old.LicenseExpressions, new.LicenseExpressions)
	d.diffSection(SectionCopyrights, old.Copyrights, new.Copyrights)
	return d
}

func (d *FindingsDiff) diffSection(section string, old, new []string) {
	if sameMultiset(old, new) {
		return
	}
	if len(old) == len(new) {
		var changed []ValueChange
		for i := range old {
			if old[i] != new[i] {
				changed = append(changed, ValueChange{Old: old[i], New: new[i]})
			}
		}
		if len(changed) > 0 {
			if d.Changed == nil {
				d.Changed = make(map[string][]ValueChange)
			}
			d.Changed[section] = changed
		}
		return
	}
	added, removed := setDifferences(old, new)
	if len(added) > 0 {
		if d.Added == nil {
			d.Added = make(map[string][]string)
		}
		d.Added[section] = added
	}
	if len(removed) > 0 {
		if d.Removed == nil {
			d.Removed = make(map[string][]string)
		}
		d.Removed[section] = removed
	}
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func setDifferences(old, new []string) (added, removed []string) {
	oldSet := make(map[string]bool, len(old))
	for _, v := range old {
		oldSet[v] = true
	}
	newSet := make(map[string]bool, len(new))
	for _, v := range new {
		newSet[v] = true
	}
	for _, v := range new {
		if !oldSet[v] {
			added = append(added, v)
			oldSet[v] = true // report duplicates once
		}
	}
	for _, v := range old {
		if !newSet[v] {
			removed = append(removed, v)
			newSet[v] = true
		}
	}
	return added, removed
}

// yearBumpOnly reports whether the diff consists exclusively of copyright
// statements whose only word-level change is a plausible year, such as
// "Copyright 2019 Foo" becoming "Copyright 2020 Foo".
func yearBumpOnly(d *FindingsDiff) bool {
	if d.Empty() || len(d.Added) > 0 || len(d.Removed) > 0 {
		return false
	}
	if len(d.Changed) != 1 {
		return false
	}
	changed, ok := d.Changed[SectionCopyrights]
	if !ok {
		return false
	}
	for _, vc := range changed {
		if !onlyYearDiffers(vc.Old, vc.New) {
			return false
		}
	}
	return true
}

// onlyYearDiffers tokenizes both statements into alphanumeric words and
// reports whether every differing token pair is a year between 1900 and
// the current year.
func onlyYearDiffers(old, new string) bool {
	oldWords := tokenize(old)
	newWords := tokenize(new)
	if len(oldWords) != len(newWords) {
		return false
	}
	differed := false
	for i := range oldWords {
		if oldWords[i] == newWords[i] {
			continue
		}
		if !plausibleYear(oldWords[i]) || !plausibleYear(newWords[i]) {
			return false
		}
		differed = true
	}
	return differed
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func plausibleYear(word string) bool {
	if len(word) != 4 {
		return false
	}
	year, err := strconv.Atoi(word)
	if err != nil {
		return false
	}
	return year >= 1900 && year <= time.Now().Year()
}
