// Package routes decodes route-record JSON files and repairs records that
// lack a StartGameMapId. Decoding reports explicit errors carrying the
// record path so a batch scan can convert them to findings and continue.
package routes

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/tyriatrails/routelint/pkg/errors"
)

// Coordinate is one 3D waypoint of a route.
type Coordinate struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

// Record is a decoded route record. Its identity is the storage path; the
// struct itself is never written back, repairs edit the raw bytes.
type Record struct {
	Name           string
	Coordinates    []Coordinate
	StartGameMapID *int

	// Path is the storage path the record was read from, relative to the
	// scan root when decoded by the scanner.
	Path string
}

// wireRecord mirrors the on-disk schema with pointer fields so that missing
// and mistyped fields are distinguishable from zero values.
type wireRecord struct {
	Name           *string          `json:"Name"`
	Coordinates    []wireCoordinate `json:"Coordinates"`
	StartGameMapID *int             `json:"StartGameMapId"`
}

type wireCoordinate struct {
	X *float64 `json:"X"`
	Y *float64 `json:"Y"`
	Z *float64 `json:"Z"`
}

// Decode parses raw record bytes. Malformed JSON yields a ParseError;
// missing or mistyped required fields yield a SchemaError. The path is only
// used for error reporting.
func Decode(raw []byte, path string) (*Record, error) {
	var w wireRecord
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, errors.NewParseError(path, err)
	}

	if w.Name == nil || *w.Name == "" {
		return nil, errors.NewSchemaError(path, "Name", "required field missing or empty")
	}
	if w.Coordinates == nil {
		return nil, errors.NewSchemaError(path, "Coordinates", "required field missing")
	}

	coords := make([]Coordinate, 0, len(w.Coordinates))
	for i, c := range w.Coordinates {
		if c.X == nil || c.Y == nil || c.Z == nil {
			return nil, errors.NewSchemaError(path, "Coordinates",
				"point "+strconv.Itoa(i)+" is missing a numeric axis")
		}
		coords = append(coords, Coordinate{X: *c.X, Y: *c.Y, Z: *c.Z})
	}

	return &Record{
		Name:           *w.Name,
		Coordinates:    coords,
		StartGameMapID: w.StartGameMapID,
		Path:           path,
	}, nil
}

// Load reads and decodes a record file.
func Load(path string) (*Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("read", path, err)
	}
	return Decode(raw, path)
}
