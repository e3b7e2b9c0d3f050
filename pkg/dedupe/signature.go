// Package dedupe fingerprints route geometry and groups records with
// identical content. The signature is a pure function of the coordinate
// values: order-independent and truncated to a configurable precision, so
// re-saving a route with reordered or micro-jittered points still collides
// with the original.
package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tyriatrails/routelint/pkg/routes"
)

// DefaultPrecision is the decimal precision coordinates are rounded to
// before hashing.
const DefaultPrecision = 3

const (
	axisSeparator  = ","
	pointSeparator = ";"
)

// Signature computes the content fingerprint of a coordinate set. Every
// axis is rounded half away from zero to the given precision, formatted at
// fixed width, and the unique point tokens are sorted before hashing, so
// point order and duplicate points never change the result.
func Signature(coords []routes.Coordinate, precision int) (string, error) {
	if precision < 0 {
		precision = DefaultPrecision
	}

	unique := make(map[string]struct{}, len(coords))
	for i, c := range coords {
		token, err := pointToken(c, precision)
		if err != nil {
			return "", fmt.Errorf("point %d: %w", i, err)
		}
		unique[token] = struct{}{}
	}

	tokens := make([]string, 0, len(unique))
	for token := range unique {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	sum := sha256.Sum256([]byte(strings.Join(tokens, pointSeparator)))
	return hex.EncodeToString(sum[:]), nil
}

// pointToken renders one coordinate as a fixed-width decimal token.
func pointToken(c routes.Coordinate, precision int) (string, error) {
	axes := [3]float64{c.X, c.Y, c.Z}
	parts := make([]string, 3)
	for i, v := range axes {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("axis %d is not a finite number", i)
		}
		parts[i] = strconv.FormatFloat(roundHalfAway(v, precision), 'f', precision, 64)
	}
	return strings.Join(parts, axisSeparator), nil
}

// roundHalfAway rounds half away from zero at the given decimal precision.
// math.Round already rounds halves away from zero; the scaling moves the
// rounding point to the requested decimal place. A result of zero is
// normalized so negative micro-jitter never formats as "-0".
func roundHalfAway(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// Group is a set of records sharing one signature. Only groups with more
// than one member are duplicate findings.
type Group struct {
	Signature string
	Paths     []string // sorted
}

// Detector accumulates signatures across a scan and reports duplicate
// groups. Records with empty coordinate sets never participate.
type Detector struct {
	precision int
	groups    map[string][]string
}

// NewDetector creates a detector rounding at the given precision. Zero is
// whole-number rounding; a negative precision selects the default.
func NewDetector(precision int) *Detector {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return &Detector{
		precision: precision,
		groups:    make(map[string][]string),
	}
}

// Precision returns the configured rounding precision.
func (d *Detector) Precision() int {
	return d.precision
}

// Add fingerprints one record's geometry. Empty coordinate sets are
// ignored: emptiness is a separate finding, not a duplicate.
func (d *Detector) Add(path string, coords []routes.Coordinate) error {
	if len(coords) == 0 {
		return nil
	}
	sig, err := Signature(coords, d.precision)
	if err != nil {
		return err
	}
	d.groups[sig] = append(d.groups[sig], path)
	return nil
}

// Duplicates returns every group with more than one member, sorted by
// signature with members sorted by path, so output never depends on map
// iteration order.
func (d *Detector) Duplicates() []Group {
	var out []Group
	for sig, paths := range d.groups {
		if len(paths) < 2 {
			continue
		}
		sorted := make([]string, len(paths))
		copy(sorted, paths)
		sort.Strings(sorted)
		out = append(out, Group{Signature: sig, Paths: sorted})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Signature < out[j].Signature })
	return out
}
