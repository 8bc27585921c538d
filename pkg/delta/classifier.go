package delta

import (
	"sort"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/errors"
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/scan"
)

// Classifier partitions the files of two scan results into the delta
// categories. It is stateless after construction and safe for concurrent
// use.
type Classifier struct {
	knownTools map[string]bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithKnownTools overrides the set of scanner names accepted by Compare.
func WithKnownTools(tools map[string]bool) Option {
	return func(c *Classifier) {
		c.knownTools = tools
	}
}

// New returns a Classifier accepting the default recognized scanners.
func New(opts ...Option) *Classifier {
	c := &Classifier{knownTools: scan.KnownTools}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare classifies every file of the two scans. It fails fast when the
// scans were not produced by the same recognized tool and version; results
// of mismatching scanner runs are not comparable.
func (c *Classifier) Compare(old, new *scan.Result) (*Delta, error) {
	if err := c.checkTools(old, new); err != nil {
		return nil, err
	}

	d := &Delta{
		MovedFiles:                       map[string]string{},
		ChangedUpdatedCopyrightYearOnly:  map[string]*FindingsDiff{},
		ChangedChangedCopyrightOrLicense: map[string]*FindingsDiff{},
	}

	newByHash := new.ByHash()
	// New paths claimed by a move pairing; they never classify as new_*.
	consumed := make(map[string]bool)

	for _, path := range sortedPaths(old.Files) {
		oldFile := old.Files[path]
		newFile, present := new.Files[path]

		if !present {
			if target, moved := moveTarget(oldFile, newByHash); moved {
				d.MovedFiles[path] = target
				consumed[target] = true
				continue
			}
			if oldFile.Findings.Empty() {
				d.DeletedNoLicenseAndCopyright = append(d.DeletedNoLicenseAndCopyright, path)
			} else {
				d.DeletedWithLicenseOrCopyright = append(d.DeletedWithLicenseOrCopyright, path)
			}
			continue
		}

		if oldFile.SHA1 == newFile.SHA1 {
			d.SameFiles = append(d.SameFiles, path)
			continue
		}

		diff := DiffFindings(oldFile.Findings, newFile.Findings)
		switch {
		case diff.Empty() && oldFile.Findings.Empty():
			d.ChangedNoLicenseAndCopyright = append(d.ChangedNoLicenseAndCopyright, path)
		case diff.Empty():
			d.ChangedSameCopyrightAndLicense = append(d.ChangedSameCopyrightAndLicense, path)
		case yearBumpOnly(diff):
			d.ChangedUpdatedCopyrightYearOnly[path] = diff
		default:
			d.ChangedChangedCopyrightOrLicense[path] = diff
		}
	}

	for _, path := range sortedPaths(new.Files) {
		if consumed[path] {
			continue
		}
		if _, present := old.Files[path]; present {
			continue
		}
		if new.Files[path].Findings.Empty() {
			d.NewNoLicenseAndCopyright = append(d.NewNoLicenseAndCopyright, path)
		} else {
			d.NewWithLicenseOrCopyright = append(d.NewWithLicenseOrCopyright, path)
		}
	}

	return d, nil
}

func (c *Classifier) checkTools(old, new *scan.Result) error {
	if !c.knownTools[old.Tool.Name] {
		return errors.NewToolMismatchError("a recognized scanner", old.Tool.String())
	}
	if old.Tool != new.Tool {
		return errors.NewToolMismatchError(old.Tool.String(), new.Tool.String())
	}
	return nil
}

// moveTarget resolves a deleted path against the new scan's hash index.
// Empty files carry no identity, so they never pair as moves.
func moveTarget(f *scan.File, newByHash map[string]string) (string, bool) {
	if f.SHA1 == "" || f.SHA1 == scan.EmptyFileSHA1 {
		return "", false
	}
	target, ok := newByHash[f.SHA1]
	if !ok || target == f.Path {
		return "", false
	}
	return target, ok
}

func sortedPaths(files map[string]*scan.File) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
