package representation

import (
	"slices"
	"sort"
)

// Factory computes a representation value for an owner. The owner is the
// live observable instance; args is the caller's argument set. Factories
// must not retain the owner beyond the call.
type Factory func(owner any, args Args) any

// Declaration pairs a factory with the notifications that invalidate the
// values it produces. The destructive set is declared, not inferred: the
// cache trusts it completely and never analyzes what a factory reads.
type Declaration struct {
	Factory     Factory
	Destructive []string
}

// destroyedBy reports whether the fired notification invalidates values
// produced by this declaration.
func (d Declaration) destroyedBy(name string) bool {
	return slices.Contains(d.Destructive, name)
}

// Table is the static per-type registry of representation declarations.
// Collaborators register their derived computations here; every Cache
// attached to an instance of the type reads the same table. Registration
// is the sole extension point for plugging derived values into the
// invalidation system.
type Table struct {
	decls map[string]Declaration
}

// NewTable creates an empty declaration table.
func NewTable() *Table {
	return &Table{decls: make(map[string]Declaration)}
}

// Register adds the declaration for name, replacing any previous one.
// The destructive list names the notifications whose arrival on the
// owning instance drops every cached value under name.
func (t *Table) Register(name string, factory Factory, destructive ...string) {
	t.decls[name] = Declaration{
		Factory:     factory,
		Destructive: slices.Clone(destructive),
	}
}

// Unregister removes the declaration for name; no-op if absent. Cached
// values computed under the old declaration remain until invalidated or
// destroyed.
func (t *Table) Unregister(name string) {
	delete(t.decls, name)
}

// Lookup returns the declaration for name.
func (t *Table) Lookup(name string) (Declaration, bool) {
	d, ok := t.decls[name]
	return d, ok
}

// Names returns the registered representation names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.decls))
	for name := range t.decls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
