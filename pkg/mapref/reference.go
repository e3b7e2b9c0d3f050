package mapref

import (
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/tyriatrails/routelint/pkg/errors"
)

// Reference is one raw entry of the canonical reference list. The id is
// kept as decoded because upstream exports carry it inconsistently as a
// string or a number; blank or non-numeric ids are skipped during indexing.
type Reference struct {
	Name string `yaml:"name" json:"name"`
	ID   any    `yaml:"id" json:"id"`
}

// numericID coerces the loosely-typed id field to an int.
func (r Reference) numericID() (int, bool) {
	switch v := r.ID.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// LoadReferences reads the reference list from a YAML document containing a
// sequence of {name, id} entries. A missing or undecodable file is the only
// batch-aborting error in the system.
func LoadReferences(path string) ([]Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewReferenceError(path, err)
	}

	var refs []Reference
	if err := yaml.Unmarshal(data, &refs); err != nil {
		return nil, errors.NewReferenceError(path, err)
	}

	return refs, nil
}

// LoadIndex loads the reference list and builds the canonical index in one
// step.
func LoadIndex(path string) (*Index, error) {
	refs, err := LoadReferences(path)
	if err != nil {
		return nil, err
	}
	return NewIndex(refs), nil
}
