package notification

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Callback receives a single notification. An error aborts the remainder
// of the in-progress fan-out and propagates to the PostNotification
// caller; callers needing isolation must wrap their own callbacks.
type Callback func(*Notification) error

// registryKey identifies one observer bucket. Zero fields are wildcards.
type registryKey struct {
	name       string
	observable Ref
}

// bucket holds the callbacks registered under one key, in insertion
// order. Delivery order is bucket generality first, insertion order
// second; listeners rely on it (an object's own bookkeeping observer
// registers before external listeners).
type bucket struct {
	order   []Ref
	entries map[Ref]Callback
}

// Dispatcher is the in-process notification bus shared by every object in
// a font graph. One Dispatcher is owned by the root aggregate; children
// keep a handle to it for as long as they are attached.
//
// The Dispatcher holds only weak references to observers and observables
// and is strictly synchronous: PostNotification may recurse through
// callbacks, and nested dispatches run to completion before the outer
// iteration resumes. It is not safe for concurrent use; callers must
// serialize access externally.
type Dispatcher struct {
	id        string
	observers map[registryKey]*bucket
	holds     map[suppressKey]*holdRecord
	disables  map[suppressKey]int
	logger    *Logger
}

// NewDispatcher creates a dispatcher with the given options.
func NewDispatcher(opts ...Option) *Dispatcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dispatcher{
		id:        uuid.NewString(),
		observers: make(map[registryKey]*bucket),
		holds:     make(map[suppressKey]*holdRecord),
		disables:  make(map[suppressKey]int),
		logger:    cfg.logger,
	}
}

// ID returns the dispatcher's unique identifier, used in log output.
func (d *Dispatcher) ID() string { return d.id }

// AddObserver registers a callback for notifications matching name and
// observable. An empty name matches every notification; a nil observable
// matches every source. Registering the same (observer, name, observable)
// triple twice is a contract violation and panics with a message naming
// both the existing and the new callback.
func (d *Dispatcher) AddObserver(observer Observable, cb Callback, name string, observable Observable) {
	if observer == nil {
		panic("notification: AddObserver requires an observer")
	}
	if cb == nil {
		panic("notification: AddObserver requires a callback")
	}
	key := registryKey{name: name, observable: refOf(observable)}
	obs := observer.Ref()
	b := d.observers[key]
	if b == nil {
		b = &bucket{entries: make(map[Ref]Callback)}
		d.observers[key] = b
	}
	if existing, ok := b.entries[obs]; ok {
		panic(fmt.Sprintf(
			"notification: duplicate observer registration: notification=%q observable=%s observer=%s existing callback=%v new callback=%v",
			name, describeRef(key.observable), describeRef(obs), existing, cb,
		))
	}
	b.order = append(b.order, obs)
	b.entries[obs] = cb
	d.logger.Debugf("dispatcher %s: observer added notification=%q observable=%s", d.id, name, describeRef(key.observable))
}

// RemoveObserver unregisters the callback for the exact (observer, name,
// observable) triple. It is a no-op if no such registration exists.
func (d *Dispatcher) RemoveObserver(observer Observable, name string, observable Observable) {
	key := registryKey{name: name, observable: refOf(observable)}
	b, ok := d.observers[key]
	if !ok {
		return
	}
	obs := refOf(observer)
	if _, ok := b.entries[obs]; !ok {
		return
	}
	delete(b.entries, obs)
	if i := slices.Index(b.order, obs); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	if len(b.entries) == 0 {
		delete(d.observers, key)
	}
	d.logger.Debugf("dispatcher %s: observer removed notification=%q observable=%s", d.id, name, describeRef(key.observable))
}

// HasObserver reports whether the exact (observer, name, observable)
// triple is registered.
func (d *Dispatcher) HasObserver(observer Observable, name string, observable Observable) bool {
	b, ok := d.observers[registryKey{name: name, observable: refOf(observable)}]
	if !ok {
		return false
	}
	_, ok = b.entries[refOf(observer)]
	return ok
}

// PostNotification builds a Notification and fans it out synchronously to
// every matching observer, honoring disable and hold records first.
// Callbacks run on the caller's stack; a callback may post further
// notifications, and the nested dispatch completes before the outer one
// resumes. The first callback error aborts the remaining fan-out and is
// returned.
func (d *Dispatcher) PostNotification(name string, observable Observable, data any) error {
	if name == "" {
		return ErrEmptyName
	}
	if observable == nil {
		return ErrNilObservable
	}
	return d.post(name, observable.Ref(), data)
}

// post is the dispatch path shared by PostNotification and hold replay.
// The two suppression scans and the bucket enumeration follow fixed
// generality orders; observers rely on the resulting delivery order.
func (d *Dispatcher) post(name string, source Ref, data any) error {
	// Observer-independent suppression. All four keys are checked for a
	// disable before any is checked for a hold, so a wildcard disable
	// beats a more specific hold.
	indep := [4]suppressKey{
		{},
		{name: name},
		{observable: source},
		{name: name, observable: source},
	}
	for _, k := range indep {
		if d.disables[k] > 0 {
			d.logger.Debugf("dispatcher %s: dropped %q (disabled)", d.id, name)
			return nil
		}
	}
	for _, k := range indep {
		if rec, ok := d.holds[k]; ok {
			rec.queue = append(rec.queue, heldNotification{name: name, observable: source, data: data})
			d.logger.Debugf("dispatcher %s: held %q", d.id, name)
			return nil
		}
	}

	n := &Notification{name: name, source: source, data: data}

	// Bucket enumeration, least to most specific. The middle two levels
	// swap relative to the suppression scan above.
	keys := [4]registryKey{
		{},
		{observable: source},
		{name: name},
		{name: name, observable: source},
	}
	for _, key := range keys {
		b, ok := d.observers[key]
		if !ok {
			continue
		}
		// Snapshot the order so callbacks may add or remove observers
		// mid-dispatch without corrupting the iteration.
		order := slices.Clone(b.order)
		for _, obs := range order {
			cb, ok := b.entries[obs]
			if !ok {
				continue // removed by an earlier callback
			}
			drop, held := d.observerSuppression(name, source, obs)
			if drop {
				continue
			}
			if held != nil {
				held.queue = append(held.queue, heldNotification{name: name, observable: source, data: data})
				continue
			}
			if !obs.Alive() {
				continue // collected observer, skip silently
			}
			if err := cb(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// observerSuppression scans the four observer-scoped suppression keys in
// the same generality order as the observer-independent scan. It returns
// drop=true when a disable matches, otherwise the first matching hold
// record, otherwise neither.
func (d *Dispatcher) observerSuppression(name string, source Ref, observer Ref) (drop bool, held *holdRecord) {
	scoped := [4]suppressKey{
		{observer: observer},
		{name: name, observer: observer},
		{observable: source, observer: observer},
		{name: name, observable: source, observer: observer},
	}
	for _, k := range scoped {
		if d.disables[k] > 0 {
			return true, nil
		}
	}
	for _, k := range scoped {
		if rec, ok := d.holds[k]; ok {
			return false, rec
		}
	}
	return false, nil
}

// describeRef renders a registry key component for diagnostics.
func describeRef(r Ref) string {
	if r.IsZero() {
		return "<any>"
	}
	if v := r.Value(); v != nil {
		return fmt.Sprintf("%T", v)
	}
	return "<dead>"
}
