package options

import "slices"

// Table is an insertion-ordered set of option definitions keyed by Def.Key.
type Table struct {
	keys []string
	defs map[string]Def
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{defs: make(map[string]Def)}
}

// Set registers def. An existing key is replaced in place and keeps its position.
func (t *Table) Set(def Def) {
	if _, ok := t.defs[def.Key]; !ok {
		t.keys = append(t.keys, def.Key)
	}
	t.defs[def.Key] = def
}

// Add registers each def in order.
func (t *Table) Add(defs ...Def) *Table {
	for _, d := range defs {
		t.Set(d)
	}
	return t
}

// Get returns the definition for key.
func (t *Table) Get(key string) (Def, bool) {
	d, ok := t.defs[key]
	return d, ok
}

// Has reports whether key is registered.
func (t *Table) Has(key string) bool {
	_, ok := t.defs[key]
	return ok
}

// Keys returns the registered keys in insertion order.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// Defs returns the definitions in insertion order.
func (t *Table) Defs() []Def {
	out := make([]Def, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.defs[k])
	}
	return out
}

// Len returns the number of registered options.
func (t *Table) Len() int {
	return len(t.keys)
}
