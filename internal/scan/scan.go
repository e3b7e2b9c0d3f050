// Package scan drives a full validation pass over a directory tree of
// route records: discovery, parsing, canonical name resolution, identifier
// selection, and duplicate-content grouping. Every per-record problem is
// converted to a finding so one bad file never stops the batch.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tyriatrails/routelint/pkg/dedupe"
	"github.com/tyriatrails/routelint/pkg/errors"
	"github.com/tyriatrails/routelint/pkg/findings"
	"github.com/tyriatrails/routelint/pkg/logging"
	"github.com/tyriatrails/routelint/pkg/mapref"
	"github.com/tyriatrails/routelint/pkg/resolve"
	"github.com/tyriatrails/routelint/pkg/routes"
)

// Options configures a scan.
type Options struct {
	// Precision is the decimal precision for duplicate fingerprinting.
	// Zero is whole-number rounding; negative selects the default.
	Precision int

	// Overrides is the mode-default table. Nil disables overrides.
	Overrides *resolve.Overrides
}

// Resolution captures the outcome of resolving one record, kept so the fix
// command can apply repairs without re-scanning.
type Resolution struct {
	Path    string // relative to the scan root
	AbsPath string
	Record  *routes.Record

	Match   resolve.Match
	Matched bool

	ID       resolve.IDResolution
	Resolved bool
}

// Result is the complete outcome of one scan.
type Result struct {
	Report      *findings.Report
	Resolutions []Resolution
	Duplicates  []dedupe.Group
	Discovered  int
	Parsed      int
}

// Scanner runs validation passes against one canonical index. It holds no
// per-run state; every Run builds its aggregates from scratch.
type Scanner struct {
	idx  *mapref.Index
	opts Options
}

// New creates a scanner.
func New(idx *mapref.Index, opts Options) *Scanner {
	if opts.Precision < 0 {
		opts.Precision = dedupe.DefaultPrecision
	}
	return &Scanner{idx: idx, opts: opts}
}

// Run performs a full pass over root. The returned error is non-nil only
// for unrecoverable conditions (an unreadable root); everything else is
// reported as findings.
func (s *Scanner) Run(ctx context.Context, root string) (*Result, error) {
	ctx = logging.WithOperation(ctx, "scan")
	log := logging.FromContext(ctx)
	report := findings.NewReport()

	for _, c := range s.idx.Collisions() {
		report.Addf(findings.SeverityWarning, findings.CategoryReference, "",
			"reference entries %q and %q normalize to the same key %q; keeping %q",
			c.Kept, c.Dropped, c.Key, c.Kept)
	}

	paths, err := discover(root)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("records", len(paths)).Str("root", root).Msg("Discovered route records")

	result := &Result{
		Report:     report,
		Discovered: len(paths),
	}

	// First pass: parse everything. Sibling identifiers can only be
	// gathered once every record in a folder has been decoded.
	records := make([]*routes.Record, 0, len(paths))
	siblings := make(map[string]map[int]bool)
	for _, rel := range paths {
		rec, err := routes.Load(filepath.Join(root, rel))
		if err != nil {
			report.Add(findingForError(rel, err))
			continue
		}
		rec.Path = rel
		records = append(records, rec)

		if rec.StartGameMapID != nil {
			dir := filepath.ToSlash(filepath.Dir(rel))
			if siblings[dir] == nil {
				siblings[dir] = make(map[int]bool)
			}
			siblings[dir][*rec.StartGameMapID] = true
		}
	}
	result.Parsed = len(records)

	// Second pass: resolve names and identifiers.
	detector := dedupe.NewDetector(s.opts.Precision)
	for _, rec := range records {
		res := s.resolveRecord(ctx, rec, root, siblings, report)
		result.Resolutions = append(result.Resolutions, res)

		if len(rec.Coordinates) == 0 {
			report.Addf(findings.SeverityWarning, findings.CategoryEmpty, rec.Path,
				"route %q has no coordinates", rec.Name)
			continue
		}
		if err := detector.Add(rec.Path, rec.Coordinates); err != nil {
			report.Addf(findings.SeverityError, findings.CategorySchema, rec.Path,
				"cannot fingerprint geometry: %v", err)
		}
	}

	result.Duplicates = detector.Duplicates()
	for _, group := range result.Duplicates {
		report.Addf(findings.SeverityWarning, findings.CategoryDuplicate, group.Paths[0],
			"identical geometry in %d records: %s",
			len(group.Paths), strings.Join(group.Paths, ", "))
	}

	log.Info().
		Int("discovered", result.Discovered).
		Int("parsed", result.Parsed).
		Int("findings", report.Len()).
		Msg("Scan complete")

	return result, nil
}

// resolveRecord maps one record's path to a canonical entity and a concrete
// identifier, emitting findings along the way.
func (s *Scanner) resolveRecord(ctx context.Context, rec *routes.Record, root string, siblings map[string]map[int]bool, report *findings.Report) Resolution {
	rctx := logging.WithRecord(ctx, rec.Path)
	res := Resolution{
		Path:    rec.Path,
		AbsPath: filepath.Join(root, rec.Path),
		Record:  rec,
	}

	// Mode defaults win over any name-based resolution.
	if id, ok := s.opts.Overrides.Lookup(rec.Path); ok {
		res.ID = id
		res.Resolved = true
		logging.Ctx(rctx).Debug().Int("id", id.ID).Str("source", id.Source.String()).Msg("Resolved record")
		s.checkExisting(rec, id, report)
		return res
	}

	segments := pathSegments(rec.Path)
	match, ok := resolve.Path(s.idx, segments)
	if !ok {
		report.Addf(findings.SeverityWarning, findings.CategoryUnknownArea, rec.Path,
			"no folder matches a known map name")
		return res
	}
	res.Match = match
	res.Matched = true

	switch match.Kind {
	case resolve.MatchApostrophe, resolve.MatchPlural:
		report.Add(findings.Finding{
			Severity:   findings.SeverityWarning,
			Category:   findings.CategoryNearTypo,
			Path:       rec.Path,
			Message:    fmt.Sprintf("folder name %q is a %s variant of canonical map %q", match.Segment, match.Kind, match.CanonicalName),
			Suggestion: match.Segment + " -> " + match.CanonicalName,
		})
	}

	dir := filepath.ToSlash(filepath.Dir(rec.Path))
	id, ok := resolve.ID(s.idx.IDs(match.CanonicalName), siblings[dir])
	if !ok {
		// Unreachable while the index invariant holds: a match always
		// names an indexed entry with at least one id.
		report.Addf(findings.SeverityError, findings.CategoryReference, rec.Path,
			"canonical name %q has no identifiers", match.CanonicalName)
		return res
	}
	res.ID = id
	res.Resolved = true

	mctx := logging.WithMap(rctx, match.CanonicalName)
	logging.Ctx(mctx).Debug().Int("id", id.ID).Str("source", id.Source.String()).Msg("Resolved record")

	if !id.Confident {
		report.Addf(findings.SeverityWarning, findings.CategoryAmbiguous, rec.Path,
			"map %q has candidate ids %v; fell back to lowest id %d (low confidence)",
			match.CanonicalName, id.Candidates, id.ID)
	}

	if rec.StartGameMapID == nil {
		report.Addf(findings.SeverityInfo, findings.CategoryMissingMapID, rec.Path,
			"record lacks StartGameMapId; resolved map %q gives id %d",
			match.CanonicalName, id.ID)
	} else {
		s.checkExisting(rec, id, report)
	}

	return res
}

// checkExisting compares a record's stored StartGameMapId against the
// resolution. Only confident resolutions produce a mismatch warning.
func (s *Scanner) checkExisting(rec *routes.Record, id resolve.IDResolution, report *findings.Report) {
	if rec.StartGameMapID == nil {
		if id.Source == resolve.SourceOverride {
			report.Addf(findings.SeverityInfo, findings.CategoryMissingMapID, rec.Path,
				"record lacks StartGameMapId; mode default gives id %d", id.ID)
		}
		return
	}
	if !id.Confident || *rec.StartGameMapID == id.ID {
		return
	}
	report.Addf(findings.SeverityWarning, findings.CategoryMapIDMismatch, rec.Path,
		"StartGameMapId %d does not match resolved id %d", *rec.StartGameMapID, id.ID)
}

// pathSegments returns the directory components of a relative record path,
// excluding the file's own base name.
func pathSegments(rel string) []string {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." || dir == "" {
		return nil
	}
	return strings.Split(dir, "/")
}

// discover walks root and returns every .json file path relative to it,
// sorted lexically for deterministic processing.
func discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.NewIOError("walk", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// findingForError converts a load error into the right finding category.
func findingForError(rel string, err error) findings.Finding {
	category := findings.CategoryMalformed
	var schemaErr *errors.SchemaError
	if errors.As(err, &schemaErr) {
		category = findings.CategorySchema
	}
	return findings.Finding{
		Severity: findings.SeverityError,
		Category: category,
		Path:     rel,
		Message:  err.Error(),
	}
}
