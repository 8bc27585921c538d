package cmdapp

import (
	"github.com/spf13/cobra"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/delta"
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/scan"
)

// NewCompareCommand creates the compare command: classify the per-file
// differences between two scan reports of related package versions.
func (a *App) NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare OLD_SCAN NEW_SCAN",
		Short: "Compare two license/copyright scan reports",
		Long: `Compare reads two scanner JSON reports of related package versions and
partitions every file into an outcome category: unchanged, moved, changed
with or without license/copyright impact, deleted or new. The derived
proximity ratio estimates how much of the old package's license and
copyright metadata still applies.

Both reports must come from the same recognized scanner version.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args[0], args[1])
		},
	}

	return cmd
}

func (a *App) runCompare(cmd *cobra.Command, oldPath, newPath string) error {
	oldScan, err := scan.LoadFile(oldPath)
	if err != nil {
		return err
	}
	newScan, err := scan.LoadFile(newPath)
	if err != nil {
		return err
	}

	a.logger.Debug().
		Str("tool", oldScan.Tool.String()).
		Int("old_files", len(oldScan.Files)).
		Int("new_files", len(newScan.Files)).
		Msg("comparing scan reports")

	d, err := delta.New().Compare(oldScan, newScan)
	if err != nil {
		return err
	}

	a.logger.Info().
		Float64("proximity", d.Proximity()).
		Msg("scan comparison classified")

	return a.render(cmd, newDeltaOutput(d))
}
