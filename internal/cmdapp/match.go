package cmdapp

import (
	"github.com/spf13/cobra"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/match"
	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/versions"
)

// NewMatchCommand creates the match command: look up the catalog package
// best matching an internally built (name, version) pair.
func (a *App) NewMatchCommand() *cobra.Command {
	var catalogPath string
	var aliasesPath string

	cmd := &cobra.Command{
		Use:   "match NAME VERSION",
		Short: "Match a built package against the external catalog",
		Long: `Match scores every catalog entry against the given package name,
keeps the best-scoring source name and picks the catalog version nearest
to the given one. The result includes the full ranked candidate list so
the choice can be audited.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath != "" {
				a.config.CatalogPath = catalogPath
			}
			if aliasesPath != "" {
				a.config.AliasesPath = aliasesPath
			}
			return a.runMatch(cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (yaml or json)")
	cmd.Flags().StringVar(&aliasesPath, "aliases", "", "name alias table (yaml or json)")

	return cmd
}

func (a *App) runMatch(cmd *cobra.Command, name, rawVersion string) error {
	version, err := versions.NewVersion(rawVersion)
	if err != nil {
		return err
	}

	catalog, err := a.Catalog()
	if err != nil {
		return err
	}
	aliases, err := a.Aliases()
	if err != nil {
		return err
	}

	a.logger.Debug().
		Str("name", name).
		Str("version", version.Raw).
		Int("catalog_entries", catalog.Len()).
		Msg("matching against catalog")

	selector := match.New(match.WithAliases(aliases))
	result, err := selector.Select(name, version, catalog)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("name", result.Name).
		Str("version", result.Version.Raw).
		Int("package_score", result.PackageScore).
		Float64("version_score", result.VersionScore).
		Msg("match found")

	return a.render(cmd, newMatchOutput(result))
}
