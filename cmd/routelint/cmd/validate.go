package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tyriatrails/routelint/internal/scan"
	"github.com/tyriatrails/routelint/pkg/logging"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate [routes-dir]",
	Short: "Validate route records against the reference list",
	Long: `Validate every route record under the given directory.

The scan parses each record, resolves its folder path to a canonical map
name (reporting apostrophe and plural near-typos), picks a concrete map
identifier, and fingerprints route geometry to find duplicated content.

Examples:
  routelint validate                     # Scan the configured routes dir
  routelint validate Maps/               # Scan a specific tree
  routelint validate --strict            # Fail on warnings too
  routelint validate -o json > out.json  # Machine-readable findings`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	idx, err := loadIndex()
	if err != nil {
		return err
	}
	overrides, err := loadOverrides()
	if err != nil {
		return err
	}

	scanner := scan.New(idx, scan.Options{
		Precision: precisionFlag,
		Overrides: overrides,
	})

	ctx := logging.WithLogger(cmd.Context(), logging.Default())
	result, err := scanner.Run(ctx, routesRoot(args))
	if err != nil {
		return err
	}

	if err := printReport(result.Report); err != nil {
		return err
	}
	return exitPolicy(result.Report)
}
