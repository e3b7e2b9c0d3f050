package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tyriatrails/routelint/internal/cmd/output"
	"github.com/tyriatrails/routelint/pkg/findings"
)

// reportDocument is the JSON/YAML shape of a full findings report.
type reportDocument struct {
	Findings []findings.Finding       `json:"findings" yaml:"findings"`
	Summary  []findings.CategoryCount `json:"summary" yaml:"summary"`
	Errors   int                      `json:"errors" yaml:"errors"`
	Warnings int                      `json:"warnings" yaml:"warnings"`
}

// printReport renders the findings and the per-category summary in the
// selected output format.
func printReport(report *findings.Report) error {
	format := output.Format(globalFlags.Output)

	if format != output.FormatTable {
		formatter := output.NewFormatter(format)
		doc := reportDocument{
			Findings: report.Findings(),
			Summary:  report.Summary(),
			Errors:   report.CountBySeverity(findings.SeverityError),
			Warnings: report.CountBySeverity(findings.SeverityWarning),
		}
		return formatter.Format(os.Stdout, doc)
	}

	if !globalFlags.Quiet {
		for _, f := range report.Findings() {
			fmt.Println(f)
		}
		if report.Len() > 0 {
			fmt.Println()
		}
	}

	summary := report.Summary()
	if len(summary) == 0 {
		fmt.Println("No findings.")
		return nil
	}

	rows := make([][]string, 0, len(summary))
	for _, c := range summary {
		rows = append(rows, []string{
			string(c.Category),
			c.Severity.String(),
			strconv.Itoa(c.Count),
		})
	}

	formatter := output.NewFormatter(output.FormatTable)
	if err := formatter.Format(os.Stdout, output.Data{
		Headers: []string{"category", "severity", "count"},
		Rows:    rows,
	}); err != nil {
		return err
	}

	fmt.Printf("%d findings: %d errors, %d warnings, %d info\n",
		report.Len(),
		report.CountBySeverity(findings.SeverityError),
		report.CountBySeverity(findings.SeverityWarning),
		report.CountBySeverity(findings.SeverityInfo))
	return nil
}

// exitPolicy converts the report into the command error controlling the
// exit status. Warnings fail only in strict mode.
func exitPolicy(report *findings.Report) error {
	if !report.Failed(globalFlags.Strict) {
		return nil
	}
	if report.HasErrors() {
		return fmt.Errorf("%d error findings", report.CountBySeverity(findings.SeverityError))
	}
	return fmt.Errorf("%d warning findings (strict mode)", report.CountBySeverity(findings.SeverityWarning))
}
