package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyriatrails/routelint/internal/cmd/output"
	"github.com/tyriatrails/routelint/internal/scan"
	"github.com/tyriatrails/routelint/pkg/dedupe"
	"github.com/tyriatrails/routelint/pkg/logging"
)

// duplicatesCmd represents the duplicates command.
var duplicatesCmd = &cobra.Command{
	Use:   "duplicates [routes-dir]",
	Short: "List routes with identical geometry",
	Long: `Fingerprint every route's coordinate set and list groups that share
identical content.

The fingerprint rounds each axis to the configured precision and ignores
point order, so re-saved or reordered copies of a route still group
together. No reference list is needed for this pass.

Examples:
  routelint duplicates Maps/
  routelint duplicates --precision 2 Maps/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDuplicates,
}

func init() {
	rootCmd.AddCommand(duplicatesCmd)
}

// duplicatesDocument is the JSON/YAML shape of the duplicates listing.
type duplicatesDocument struct {
	Groups []dedupe.Group `json:"groups" yaml:"groups"`
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	ctx := logging.WithLogger(cmd.Context(), logging.Default())

	report, groups, err := scan.Duplicates(ctx, routesRoot(args), precisionFlag)
	if err != nil {
		return err
	}

	format := output.Format(globalFlags.Output)
	if format != output.FormatTable {
		formatter := output.NewFormatter(format)
		if err := formatter.Format(os.Stdout, duplicatesDocument{Groups: groups}); err != nil {
			return err
		}
		return exitPolicy(report)
	}

	if !globalFlags.Quiet {
		for _, f := range report.Findings() {
			fmt.Println(f)
		}
	}

	if len(groups) == 0 {
		fmt.Println("No duplicate routes found.")
		return exitPolicy(report)
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Signature[:12],
			strconv.Itoa(len(g.Paths)),
			strings.Join(g.Paths, "\n"),
		})
	}

	formatter := output.NewFormatter(output.FormatTable)
	if err := formatter.Format(os.Stdout, output.Data{
		Headers: []string{"signature", "count", "records"},
		Rows:    rows,
	}); err != nil {
		return err
	}

	fmt.Printf("%d duplicate groups\n", len(groups))
	return exitPolicy(report)
}
