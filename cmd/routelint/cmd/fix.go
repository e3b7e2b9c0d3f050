package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyriatrails/routelint/internal/scan"
	"github.com/tyriatrails/routelint/pkg/logging"
	"github.com/tyriatrails/routelint/pkg/routes"
)

var (
	fixDryRun bool
	fixForce  bool
)

// fixCmd represents the fix command.
var fixCmd = &cobra.Command{
	Use:   "fix [routes-dir]",
	Short: "Insert missing StartGameMapId values",
	Long: `Run the validation scan and repair records that lack a StartGameMapId.

Only records whose map resolved with confidence are repaired; records that
fell back to the lowest candidate id are skipped unless --force is given.
The insertion is textual: existing formatting, whitespace and line endings
are preserved, and the new field is placed after the record's metadata
header fields.

Examples:
  routelint fix Maps/            # Repair in place
  routelint fix --dry-run Maps/  # Show would-be edits only
  routelint fix --force Maps/    # Also apply low-confidence fallbacks`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false,
		"Report repairs without writing any file")
	fixCmd.Flags().BoolVar(&fixForce, "force", false,
		"Apply low-confidence fallback resolutions too")
}

func runFix(cmd *cobra.Command, args []string) error {
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

	repaired, skipped := 0, 0
	for _, res := range result.Resolutions {
		if res.Record.StartGameMapID != nil || !res.Resolved {
			continue
		}
		if !res.ID.Confident && !fixForce {
			skipped++
			logging.Warn().
				Str("record", res.Path).
				Ints("candidates", res.ID.Candidates).
				Msg("Skipping low-confidence resolution (use --force to apply)")
			continue
		}

		if fixDryRun {
			fmt.Printf("would insert StartGameMapId %d into %s\n", res.ID.ID, res.Path)
			repaired++
			continue
		}

		if err := routes.RepairFile(res.AbsPath, res.ID.ID); err != nil {
			logging.Err(err).Str("record", res.Path).Msg("Repair failed")
			continue
		}
		fmt.Printf("inserted StartGameMapId %d into %s\n", res.ID.ID, res.Path)
		repaired++
	}

	if fixDryRun {
		fmt.Printf("%d records would be repaired, %d skipped\n", repaired, skipped)
	} else {
		fmt.Printf("%d records repaired, %d skipped\n", repaired, skipped)
	}
	return nil
}
