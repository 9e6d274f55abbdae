package notification

import "weak"

// Ident gives an object a stable, weakly referenced identity inside the
// dispatcher registries. Domain objects embed Ident and bind it to the
// enclosing value before posting or observing notifications. The embedded
// Ident is what registry keys point at, so the dispatcher never extends
// the object's lifetime.
type Ident struct {
	owner any
}

// Bind associates the identity with its enclosing object. The bound value
// is what Notification.Object and Ref.Value resolve to. Bind must be
// called before the object participates in any registration.
func (id *Ident) Bind(owner any) {
	id.owner = owner
}

// Ref returns a weak reference to the bound object. Refs are comparable:
// two Refs taken from the same Ident compare equal, even after the object
// has been collected.
func (id *Ident) Ref() Ref {
	return Ref{ptr: weak.Make(id)}
}

// Observable is satisfied by any object that participates in the
// notification graph, either as a source or as an observer. Embedding a
// bound Ident is the usual way to implement it. A stored Ref also
// satisfies Observable, so introspection results can be passed back into
// dispatcher calls.
type Observable interface {
	Ref() Ref
}

// Ref is a weak handle to an Observable. The zero Ref is the wildcard and
// matches any observable (or any observer) in registration and
// suppression keys.
type Ref struct {
	ptr weak.Pointer[Ident]
}

// Ref implements Observable.
func (r Ref) Ref() Ref { return r }

// IsZero reports whether r is the wildcard reference.
func (r Ref) IsZero() bool { return r == Ref{} }

// Value resolves the referenced object. It returns nil if r is the
// wildcard or the referent has been collected.
func (r Ref) Value() any {
	id := r.ptr.Value()
	if id == nil {
		return nil
	}
	return id.owner
}

// Alive reports whether the referent is still reachable.
func (r Ref) Alive() bool { return r.Value() != nil }

// refOf converts an Observable argument to its registry key form,
// treating nil as the wildcard.
func refOf(o Observable) Ref {
	if o == nil {
		return Ref{}
	}
	return o.Ref()
}
