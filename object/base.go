package object

import (
	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/representation"
)

// observation records one registration this object made as an observer,
// so detachment can undo it.
type observation struct {
	name       string
	observable notification.Ref
}

// Base is the embeddable core of every observable domain object. It wires
// the object into the shared dispatcher, tracks the dirty flag, and
// fronts the per-instance representation cache.
//
// Embedders must call Init before any other method, and must pair
// BeginSelfNotificationObservation with EndSelfNotificationObservation
// once per attachment window.
type Base struct {
	notification.Ident

	changeName   string
	dispatcher   *notification.Dispatcher
	parent       notification.Ref
	dirty        bool
	observing    bool
	observations []observation
	cache        *representation.Cache
}

// Init binds the base to its enclosing object. changeName is the object's
// generic change notification, for example "Glyph.Changed". table holds
// the type's representation declarations and may be nil for types without
// representations.
func (b *Base) Init(owner any, changeName string, table *representation.Table) {
	b.Bind(owner)
	b.changeName = changeName
	if table == nil {
		table = representation.NewTable()
	}
	b.cache = representation.NewCache(b, table, func() *notification.Dispatcher {
		return b.dispatcher
	})
}

// SetDispatcher attaches the shared dispatcher handle. The root aggregate
// owns the dispatcher; children receive the handle on attachment and drop
// it on detachment.
func (b *Base) SetDispatcher(d *notification.Dispatcher) {
	b.dispatcher = d
}

// Dispatcher returns the shared dispatcher, or nil while detached.
func (b *Base) Dispatcher() *notification.Dispatcher {
	return b.dispatcher
}

// SetParent records a weak reference to the owning object.
func (b *Base) SetParent(parent notification.Observable) {
	if parent == nil {
		b.parent = notification.Ref{}
		return
	}
	b.parent = parent.Ref()
}

// Parent resolves the owning object, or nil when detached or collected.
func (b *Base) Parent() any {
	return b.parent.Value()
}

// ChangeNotificationName returns the object's generic change
// notification name.
func (b *Base) ChangeNotificationName() string {
	return b.changeName
}

// Dirty reports whether the object has unsaved changes.
func (b *Base) Dirty() bool {
	return b.dirty
}

// SetDirty sets the dirty flag. Marking the object dirty posts its change
// notification; clearing the flag is silent.
func (b *Base) SetDirty(dirty bool) error {
	b.dirty = dirty
	if dirty {
		return b.PostNotification(b.changeName, nil)
	}
	return nil
}

// PostNotification posts a notification with this object as the source.
// It is a no-op while the object is detached.
func (b *Base) PostNotification(name string, data any) error {
	if b.dispatcher == nil {
		return nil
	}
	return b.dispatcher.PostNotification(name, b, data)
}

// BeginSelfNotificationObservation wires the object's own bookkeeping:
// every notification the object posts marks it dirty, except the change
// notification itself, which is the recursion base case. Call once per
// attachment window, after the dispatcher handle is set.
func (b *Base) BeginSelfNotificationObservation() {
	if b.dispatcher == nil || b.observing {
		return
	}
	// Values cached while detached were never subject to invalidation,
	// so the attachment window starts with an empty cache.
	b.cache.DestroyAll()
	b.dispatcher.AddObserver(b, b.selfNotification, "", b)
	b.observing = true
}

// EndSelfNotificationObservation tears down everything the object
// registered: its self observation, every registration added with
// Observe, and all cached representations. The dispatcher handle and
// parent reference are dropped. Safe to call even when nothing was ever
// wired, and idempotent.
func (b *Base) EndSelfNotificationObservation() {
	if b.dispatcher != nil {
		b.cache.DestroyAll()
		for _, o := range b.observations {
			b.dispatcher.RemoveObserver(b, o.name, o.observable)
		}
		if b.observing {
			b.dispatcher.RemoveObserver(b, "", b)
		}
	}
	b.observations = nil
	b.observing = false
	b.dispatcher = nil
	b.parent = notification.Ref{}
}

// selfNotification is the dirty bookkeeping callback.
func (b *Base) selfNotification(n *notification.Notification) error {
	if n.Name() == b.changeName {
		return nil
	}
	return b.SetDirty(true)
}

// Observe registers this object as an observer of another object's
// notifications. The registration is recorded and undone on detachment.
func (b *Base) Observe(observable notification.Observable, name string, cb notification.Callback) {
	if b.dispatcher == nil {
		return
	}
	b.dispatcher.AddObserver(b, cb, name, observable)
	var ref notification.Ref
	if observable != nil {
		ref = observable.Ref()
	}
	b.observations = append(b.observations, observation{name: name, observable: ref})
}

// Unobserve removes a registration added with Observe; no-op if absent.
func (b *Base) Unobserve(observable notification.Observable, name string) {
	if b.dispatcher == nil {
		return
	}
	b.dispatcher.RemoveObserver(b, name, observable)
	var ref notification.Ref
	if observable != nil {
		ref = observable.Ref()
	}
	for i, o := range b.observations {
		if o.name == name && o.observable == ref {
			b.observations = append(b.observations[:i], b.observations[i+1:]...)
			break
		}
	}
}

// AddObserver registers an external observer for this object's
// notifications. An empty name observes everything the object posts.
func (b *Base) AddObserver(observer notification.Observable, cb notification.Callback, name string) {
	if b.dispatcher == nil {
		return
	}
	b.dispatcher.AddObserver(observer, cb, name, b)
}

// RemoveObserver unregisters an external observer; no-op if absent.
func (b *Base) RemoveObserver(observer notification.Observable, name string) {
	if b.dispatcher == nil {
		return
	}
	b.dispatcher.RemoveObserver(observer, name, b)
}

// HasObserver reports whether the observer is registered for this
// object's notifications under name.
func (b *Base) HasObserver(observer notification.Observable, name string) bool {
	if b.dispatcher == nil {
		return false
	}
	return b.dispatcher.HasObserver(observer, name, b)
}

// HoldNotifications defers every notification posted by this object until
// ReleaseHeldNotifications.
func (b *Base) HoldNotifications(note string) {
	if b.dispatcher == nil {
		return
	}
	b.dispatcher.HoldNotifications(b, "", nil, note)
}

// ReleaseHeldNotifications releases a hold acquired with
// HoldNotifications, replaying the deferred posts in order.
func (b *Base) ReleaseHeldNotifications() error {
	if b.dispatcher == nil {
		return nil
	}
	return b.dispatcher.ReleaseHeldNotifications(b, "", nil)
}

// DisableNotifications drops every notification posted by this object
// until EnableNotifications.
func (b *Base) DisableNotifications() {
	if b.dispatcher == nil {
		return
	}
	b.dispatcher.DisableNotifications(b, "", nil)
}

// EnableNotifications balances a DisableNotifications call.
func (b *Base) EnableNotifications() {
	if b.dispatcher == nil {
		return
	}
	b.dispatcher.EnableNotifications(b, "", nil)
}

// GetRepresentation returns the memoized representation for (name, args),
// computing it on first use.
func (b *Base) GetRepresentation(name string, args representation.Args) (any, error) {
	return b.cache.Get(name, args)
}

// DestroyRepresentation removes one cached entry.
func (b *Base) DestroyRepresentation(name string, args representation.Args) {
	b.cache.Destroy(name, args)
}

// DestroyAllRepresentations clears every cached entry and the cache's
// invalidation subscriptions.
func (b *Base) DestroyAllRepresentations() {
	b.cache.DestroyAll()
}

// HasCachedRepresentation reports whether (name, args) is cached without
// triggering computation.
func (b *Base) HasCachedRepresentation(name string, args representation.Args) bool {
	return b.cache.Has(name, args)
}

// RepresentationKeys enumerates the currently cached (name, args) pairs.
func (b *Base) RepresentationKeys() []representation.Key {
	return b.cache.Keys()
}
