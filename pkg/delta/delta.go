// Package delta compares two per-file scan results belonging to related
// package versions. Every file present in either scan lands in exactly one
// of ten outcome categories, from which an overall proximity ratio is
// derived: how much of the old package's license and copyright metadata
// still applies to the new one.
package delta

// Category names, used as stats keys and in serialized output.
const (
	CategorySameFiles                     = "same_files"
	CategoryMovedFiles                    = "moved_files"
	CategoryChangedNoLicenseAndCopyright  = "changed_no_license_and_copyright"
	CategoryChangedSameCopyrightAndLic    = "changed_same_copyright_and_license"
	CategoryChangedUpdatedCopyrightYear   = "changed_updated_copyright_year_only"
	CategoryChangedChangedCopyrightOrLic  = "changed_changed_copyright_or_license"
	CategoryDeletedNoLicenseAndCopyright  = "deleted_no_license_and_copyright"
	CategoryDeletedWithLicenseOrCopyright = "deleted_with_license_or_copyright"
	CategoryNewNoLicenseAndCopyright      = "new_no_license_and_copyright"
	CategoryNewWithLicenseOrCopyright     = "new_with_license_or_copyright"
)

// Delta is the classification outcome of one comparison. Path lists are
// sorted. Moved files map old path to new path; the diff-detail maps keep
// the structural findings diff that motivated the classification.
type Delta struct {
	SameFiles  []string          `json:"same_files" yaml:"same_files"`
	MovedFiles map[string]string `json:"moved_files" yaml:"moved_files"`

	ChangedNoLicenseAndCopyright     []string                 `json:"changed_no_license_and_copyright" yaml:"changed_no_license_and_copyright"`
	ChangedSameCopyrightAndLicense   []string                 `json:"changed_same_copyright_and_license" yaml:"changed_same_copyright_and_license"`
	ChangedUpdatedCopyrightYearOnly  map[string]*FindingsDiff `json:"changed_updated_copyright_year_only" yaml:"changed_updated_copyright_year_only"`
	ChangedChangedCopyrightOrLicense map[string]*FindingsDiff `json:"changed_changed_copyright_or_license" yaml:"changed_changed_copyright_or_license"`

	DeletedNoLicenseAndCopyright  []string `json:"deleted_no_license_and_copyright" yaml:"deleted_no_license_and_copyright"`
	DeletedWithLicenseOrCopyright []string `json:"deleted_with_license_or_copyright" yaml:"deleted_with_license_or_copyright"`

	NewNoLicenseAndCopyright  []string `json:"new_no_license_and_copyright" yaml:"new_no_license_and_copyright"`
	NewWithLicenseOrCopyright []string `json:"new_with_license_or_copyright" yaml:"new_with_license_or_copyright"`
}

// Stats maps every category name to the size of its list.
func (d *Delta) Stats() map[string]int {
	return map[string]int{
		CategorySameFiles:                     len(d.SameFiles),
		CategoryMovedFiles:                    len(d.MovedFiles),
		CategoryChangedNoLicenseAndCopyright:  len(d.ChangedNoLicenseAndCopyright),
		CategoryChangedSameCopyrightAndLic:    len(d.ChangedSameCopyrightAndLicense),
		CategoryChangedUpdatedCopyrightYear:   len(d.ChangedUpdatedCopyrightYearOnly),
		CategoryChangedChangedCopyrightOrLic:  len(d.ChangedChangedCopyrightOrLicense),
		CategoryDeletedNoLicenseAndCopyright:  len(d.DeletedNoLicenseAndCopyright),
		CategoryDeletedWithLicenseOrCopyright: len(d.DeletedWithLicenseOrCopyright),
		CategoryNewNoLicenseAndCopyright:      len(d.NewNoLicenseAndCopyright),
		CategoryNewWithLicenseOrCopyright:     len(d.NewWithLicenseOrCopyright),
	}
}

// Proximity estimates, in [0,1], how much of the old package's file-level
// license and copyright metadata carries over to the new package.
//
// Deleted files and new files without findings count toward neither term:
// they indicate absence of IP metadata, not divergence. With nothing to
// compare the ratio is undefined and reported as 0.
func (d *Delta) Proximity() float64 {
	similar := len(d.SameFiles) +
		len(d.MovedFiles) +
		len(d.ChangedNoLicenseAndCopyright) +
		len(d.ChangedSameCopyrightAndLicense) +
		len(d.ChangedUpdatedCopyrightYearOnly)
	different := len(d.ChangedChangedCopyrightOrLicense) +
		len(d.NewWithLicenseOrCopyright)
	if similar+different == 0 {
		return 0
	}
	return float64(similar) / float64(similar+different)
}
