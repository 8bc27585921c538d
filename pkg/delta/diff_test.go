package delta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/delta"
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/scan"
)

func TestDiffFindings(t *testing.T) {
	tests := []struct {
		name  string
		old   scan.Findings
		new   scan.Findings
		check func(t *testing.T, d *delta.FindingsDiff)
	}{
		{
			name:  "identical",
			old:   gpl(),
			new:   gpl(),
			check: func(t *testing.T, d *delta.FindingsDiff) { assert.True(t, d.Empty()) },
		},
		{
			name: "reordered is identical",
			old:  scan.Findings{Copyrights: []string{"a", "b"}},
			new:  scan.Findings{Copyrights: []string{"b", "a"}},
			check: func(t *testing.T, d *delta.FindingsDiff) {
				assert.True(t, d.Empty())
			},
		},
		{
			name: "equal length pairs positionally",
			old:  scan.Findings{Copyrights: []string{"Copyright 2018 Foo", "Copyright 2019 Bar"}},
			new:  scan.Findings{Copyrights: []string{"Copyright 2018 Foo", "Copyright 2020 Bar"}},
			check: func(t *testing.T, d *delta.FindingsDiff) {
				assert.Equal(t, []delta.ValueChange{
					{Old: "Copyright 2019 Bar", New: "Copyright 2020 Bar"},
				}, d.Changed[delta.SectionCopyrights])
				assert.Empty(t, d.Added)
				assert.Empty(t, d.Removed)
			},
		},
		{
			name: "grown section splits into added",
			old:  scan.Findings{Licenses: []string{"mit"}},
			new:  scan.Findings{Licenses: []string{"mit", "apache-2.0"}},
			check: func(t *testing.T, d *delta.FindingsDiff) {
				assert.Equal(t, []string{"apache-2.0"}, d.Added[delta.SectionLicenses])
				assert.Empty(t, d.Removed)
			},
		},
		{
			name: "shrunk section splits into removed",
			old:  scan.Findings{LicenseExpressions: []string{"mit AND gpl-2.0", "mit"}},
			new:  scan.Findings{LicenseExpressions: []string{"mit"}},
			check: func(t *testing.T, d *delta.FindingsDiff) {
				assert.Equal(t, []string{"mit AND gpl-2.0"}, d.Removed[delta.SectionLicenseExpressions])
				assert.Empty(t, d.Added)
			},
		},
		{
			name: "sections diff independently",
			old: scan.Findings{
				Licenses:   []string{"mit"},
				Copyrights: []string{"Copyright 2019 Foo"},
			},
			new: scan.Findings{
				Licenses:   []string{"gpl-2.0"},
				Copyrights: []string{"Copyright 2019 Foo"},
			},
			check: func(t *testing.T, d *delta.FindingsDiff) {
				assert.Contains(t, d.Changed, delta.SectionLicenses)
				assert.NotContains(t, d.Changed, delta.SectionCopyrights)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, delta.DiffFindings(tt.old, tt.new))
		})
	}
}
