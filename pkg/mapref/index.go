package mapref

import (
	"sort"
	"strings"
)

// Entry is one canonical map name with every identifier it maps to.
// One name legitimately maps to multiple ids for instanced map variants.
type Entry struct {
	Name string
	IDs  []int // sorted ascending
}

// Collision records two reference entries whose names normalize to the same
// key. The first-seen spelling is kept; the collision is surfaced so the
// caller can emit a loud validation warning instead of hiding the ambiguity.
type Collision struct {
	Key     string
	Kept    string
	Dropped string
}

// Index holds the lookup tables built from the reference list. It is
// immutable after construction; every operation in a run shares one Index.
type Index struct {
	entries    map[string]*Entry   // canonical name -> entry
	names      []string            // canonical names, sorted
	exact      map[string]string   // ExactKey -> canonical name
	apostrophe map[string][]string // normalized variant key -> canonical names
	plural     map[string][]string // NearPluralKey -> canonical names
	collisions []Collision
}

// NewIndex builds the index from the raw reference list in a single pass.
// Entries with blank or non-numeric ids are skipped silently.
func NewIndex(refs []Reference) *Index {
	x := &Index{
		entries:    make(map[string]*Entry),
		exact:      make(map[string]string),
		apostrophe: make(map[string][]string),
		plural:     make(map[string][]string),
	}

	for _, ref := range refs {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			continue
		}
		id, ok := ref.numericID()
		if !ok {
			continue
		}
		x.add(name, id)
	}

	for _, e := range x.entries {
		sort.Ints(e.IDs)
		x.names = append(x.names, e.Name)
	}
	sort.Strings(x.names)

	return x
}

func (x *Index) add(name string, id int) {
	if e, ok := x.entries[name]; ok {
		for _, existing := range e.IDs {
			if existing == id {
				return
			}
		}
		e.IDs = append(e.IDs, id)
		return
	}

	key := ExactKey(name)
	if kept, ok := x.exact[key]; ok && kept != name {
		// First insertion wins; report the dropped spelling loudly.
		x.collisions = append(x.collisions, Collision{Key: key, Kept: kept, Dropped: name})
		x.entries[kept].IDs = appendUnique(x.entries[kept].IDs, id)
		return
	}

	x.entries[name] = &Entry{Name: name, IDs: []int{id}}
	x.exact[key] = name

	x.registerVariants(name)
}

// registerVariants indexes the apostrophe and near-plural forms of a
// canonical name. Only names containing an apostrophe get variant keys;
// every name gets a near-plural key.
func (x *Index) registerVariants(name string) {
	if strings.ContainsAny(name, apostrophes) {
		stripped := Normalize(StripApostrophes(name))
		x.apostrophe[stripped] = appendName(x.apostrophe[stripped], name)

		if poss := StripPossessive(name); poss != name {
			key := Normalize(poss)
			x.apostrophe[key] = appendName(x.apostrophe[key], name)
		}
	}

	pk := NearPluralKey(name)
	x.plural[pk] = appendName(x.plural[pk], name)
}

// Exact returns the canonical name whose exact key matches, if any.
func (x *Index) Exact(key string) (string, bool) {
	name, ok := x.exact[key]
	return name, ok
}

// ApostropheVariants returns the canonical names registered under the given
// normalized variant key, sorted for deterministic iteration.
func (x *Index) ApostropheVariants(key string) []string {
	return sortedCopy(x.apostrophe[key])
}

// NearPlural returns the canonical names sharing the given near-plural key,
// sorted for deterministic iteration.
func (x *Index) NearPlural(key string) []string {
	return sortedCopy(x.plural[key])
}

// IDs returns the identifiers of a canonical name, sorted ascending.
// The slice is a copy; the index never mutates after construction.
func (x *Index) IDs(name string) []int {
	e, ok := x.entries[name]
	if !ok {
		return nil
	}
	ids := make([]int, len(e.IDs))
	copy(ids, e.IDs)
	return ids
}

// Has reports whether name is a canonical name in the index.
func (x *Index) Has(name string) bool {
	_, ok := x.entries[name]
	return ok
}

// Names returns every canonical name, sorted.
func (x *Index) Names() []string {
	return x.names
}

// Len returns the number of canonical entries.
func (x *Index) Len() int {
	return len(x.entries)
}

// Collisions returns the normalized-key collisions found while building the
// index, in insertion order.
func (x *Index) Collisions() []Collision {
	return x.collisions
}

func appendUnique(ids []int, id int) []int {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func appendName(names []string, name string) []string {
	for _, existing := range names {
		if existing == name {
			return names
		}
	}
	return append(names, name)
}

func sortedCopy(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
