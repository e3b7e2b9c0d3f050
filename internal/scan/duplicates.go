package scan

import (
	"context"
	"path/filepath"

	"github.com/tyriatrails/routelint/pkg/dedupe"
	"github.com/tyriatrails/routelint/pkg/findings"
	"github.com/tyriatrails/routelint/pkg/logging"
	"github.com/tyriatrails/routelint/pkg/routes"
)

// Duplicates runs only the geometry-fingerprint pass over root. It needs no
// reference list: duplicate detection is content-addressed and independent
// of name resolution.
func Duplicates(ctx context.Context, root string, precision int) (*findings.Report, []dedupe.Group, error) {
	ctx = logging.WithOperation(ctx, "duplicates")
	log := logging.FromContext(ctx)
	report := findings.NewReport()

	paths, err := discover(root)
	if err != nil {
		return nil, nil, err
	}

	detector := dedupe.NewDetector(precision)
	for _, rel := range paths {
		rec, err := routes.Load(filepath.Join(root, rel))
		if err != nil {
			report.Add(findingForError(rel, err))
			continue
		}
		if err := detector.Add(rel, rec.Coordinates); err != nil {
			report.Addf(findings.SeverityError, findings.CategorySchema, rel,
				"cannot fingerprint geometry: %v", err)
		}
	}

	groups := detector.Duplicates()
	log.Info().
		Int("records", len(paths)).
		Int("groups", len(groups)).
		Msg("Duplicate scan complete")

	return report, groups, nil
}
