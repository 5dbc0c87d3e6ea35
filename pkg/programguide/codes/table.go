// Package codes holds the enumerated area, service and genre tables used by
// the NHK program guide API and resolves caller input against them.
package codes

import (
	"fmt"
	"slices"
)

// Dimension names the categorical parameter a table enumerates.
type Dimension string

const (
	DimensionArea    Dimension = "area"
	DimensionService Dimension = "service"
	DimensionGenre   Dimension = "genre"
)

// Entry is one canonical code with its display name and aliases.
// Major and Minor are only set for genre entries.
type Entry struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Major   string   `json:"major,omitempty"`
	Minor   string   `json:"minor,omitempty"`
}

func (e Entry) clone() Entry {
	e.Aliases = slices.Clone(e.Aliases)
	return e
}

// Table is an ordered, read-only collection of entries for one dimension.
//
// Thread safety: a Table is never modified after NewTable returns, so all
// methods are safe for concurrent use.
type Table struct {
	dim     Dimension
	entries []Entry
	byCode  map[string]int
	byName  map[string]int
}

// NewTable builds a table from a literal entry list.
// Derived aliases (width-folded names, slugs of ASCII aliases) are added to
// each entry. It fails on duplicate codes and on a name or alias that would
// resolve to more than one entry.
func NewTable(dim Dimension, entries []Entry) (*Table, error) {
	t := &Table{
		dim:     dim,
		entries: make([]Entry, 0, len(entries)),
		byCode:  make(map[string]int, len(entries)),
		byName:  make(map[string]int, len(entries)*3),
	}

	for _, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("codes: %s entry %q has empty code", dim, e.Name)
		}
		if _, dup := t.byCode[e.Code]; dup {
			return nil, fmt.Errorf("codes: duplicate %s code %q", dim, e.Code)
		}
		if e.Major != "" || e.Minor != "" {
			if e.Major+e.Minor != e.Code {
				return nil, fmt.Errorf("codes: %s code %q does not match %q+%q", dim, e.Code, e.Major, e.Minor)
			}
		}

		idx := len(t.entries)
		e.Aliases = expandAliases(e.Name, e.Aliases)
		for _, key := range append([]string{e.Name}, e.Aliases...) {
			if key == "" {
				continue
			}
			if other, taken := t.byName[key]; taken && other != idx {
				return nil, fmt.Errorf("codes: %s alias %q is ambiguous between %q and %q",
					dim, key, t.entries[other].Code, e.Code)
			}
			t.byName[key] = idx
		}

		t.byCode[e.Code] = idx
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// MustTable is like NewTable but panics on error. Used for the built-in tables.
func MustTable(dim Dimension, entries []Entry) *Table {
	t, err := NewTable(dim, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Dimension returns the dimension this table enumerates.
func (t *Table) Dimension() Dimension {
	return t.dim
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.clone()
	}
	return out
}

// FindByCode returns the entry with exactly this code.
func (t *Table) FindByCode(code string) (Entry, bool) {
	idx, ok := t.byCode[code]
	if !ok {
		return Entry{}, false
	}
	return t.entries[idx].clone(), true
}

// FindByNameOrAlias returns the entry whose name or one of whose aliases
// equals text exactly (case-sensitive).
func (t *Table) FindByNameOrAlias(text string) (Entry, bool) {
	idx, ok := t.byName[text]
	if !ok {
		return Entry{}, false
	}
	return t.entries[idx].clone(), true
}
