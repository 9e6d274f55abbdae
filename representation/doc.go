// Package representation provides notification-driven memoization of
// derived values for observable objects.
//
// A representation is a value derived from an observable's state by a
// declared factory: a glyph's bounding box, a flattened outline, a
// group-expanded kerning table. Each observable type declares its
// representations once, in a static Table:
//
//	table := representation.NewTable()
//	table.Register("glyph.bounds", boundsFactory,
//	    "Glyph.ContoursChanged", "Glyph.ComponentsChanged")
//
// Each instance then carries a Cache reading that table. The first Get
// under a name computes the value, caches it per argument set, and
// subscribes the owner to its declared destructive notifications; when
// one of them is posted against the owner, every cached variant of the
// name is dropped and the next Get recomputes.
//
// Invalidation is driven entirely by the declared notification sets. The
// cache does not verify that a factory's declared set covers everything
// the factory reads; that is the modeling responsibility of whoever
// registers the declaration.
package representation
