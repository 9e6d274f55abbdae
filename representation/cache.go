package representation

import (
	"fmt"
	"sort"

	"github.com/dshills/fontstorm/notification"
)

// DispatcherFunc supplies the cache's dispatcher at call time. It returns
// nil while the owner is detached, which leaves invalidation wiring off.
type DispatcherFunc func() *notification.Dispatcher

// Key identifies one cached entry.
type Key struct {
	Name string
	Args Args
}

// entry is one memoized value together with the argument set that
// produced it.
type entry struct {
	args  Args
	value any
}

// Cache memoizes representation values for a single observable instance.
// An entry is removed if and only if a notification in its declaration's
// destructive set is posted against the owner; unrelated notifications
// never touch it. The cache guarantees "same inputs since last
// invalidation means same value, computed once" and nothing more.
//
// The cache keeps only a weak reference to its owner and, like the
// dispatcher, is not safe for concurrent use.
type Cache struct {
	owner      notification.Ref
	table      *Table
	dispatcher DispatcherFunc
	entries    map[string]map[string]entry
	observed   map[string]struct{}
}

// NewCache creates a cache for owner, reading declarations from table.
// The dispatcher function is consulted lazily so the cache follows the
// owner's attach/detach lifecycle.
func NewCache(owner notification.Observable, table *Table, dispatcher DispatcherFunc) *Cache {
	return &Cache{
		owner:      owner.Ref(),
		table:      table,
		dispatcher: dispatcher,
		entries:    make(map[string]map[string]entry),
		observed:   make(map[string]struct{}),
	}
}

// Get returns the cached value for (name, args), computing and caching it
// on first use. The first computation under a name also wires the
// owner-scoped subscriptions for the name's declared destructive
// notifications.
func (c *Cache) Get(name string, args Args) (any, error) {
	decl, ok := c.table.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRepresentation, name)
	}
	key := args.Key()
	if m, ok := c.entries[name]; ok {
		if e, ok := m[key]; ok {
			return e.value, nil
		}
	}
	owner := c.owner.Value()
	if owner == nil {
		return nil, fmt.Errorf("%w: %s", ErrDeadOwner, name)
	}
	c.observeDestructive(decl)
	value := decl.Factory(owner, args)
	m := c.entries[name]
	if m == nil {
		m = make(map[string]entry)
		c.entries[name] = m
	}
	m[key] = entry{args: args.Clone(), value: value}
	return value, nil
}

// Has reports whether (name, args) is cached. It never computes.
func (c *Cache) Has(name string, args Args) bool {
	m, ok := c.entries[name]
	if !ok {
		return false
	}
	_, ok = m[args.Key()]
	return ok
}

// Destroy removes the cached entry for the exact (name, args) pair,
// leaving other argument variants and the invalidation wiring in place.
func (c *Cache) Destroy(name string, args Args) {
	m, ok := c.entries[name]
	if !ok {
		return
	}
	delete(m, args.Key())
	if len(m) == 0 {
		delete(c.entries, name)
	}
}

// DestroyAll drops every cached entry and removes the destructive
// subscriptions. Safe to call when nothing is cached or wired.
func (c *Cache) DestroyAll() {
	c.entries = make(map[string]map[string]entry)
	if len(c.observed) == 0 {
		return
	}
	if d := c.dispatcher(); d != nil {
		for name := range c.observed {
			d.RemoveObserver(c.owner, name, c.owner)
		}
	}
	c.observed = make(map[string]struct{})
}

// Keys enumerates the cached (name, args) pairs, sorted by name and then
// by canonical argument key.
func (c *Cache) Keys() []Key {
	var keys []Key
	for name, m := range c.entries {
		for _, e := range m {
			keys = append(keys, Key{Name: name, Args: e.args.Clone()})
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Args.Key() < keys[j].Args.Key()
	})
	return keys
}

// observeDestructive wires the owner-scoped subscription for every
// destructive notification in decl that is not already observed. One
// subscription per notification name serves all representation names
// declaring it.
func (c *Cache) observeDestructive(decl Declaration) {
	if len(decl.Destructive) == 0 {
		return
	}
	d := c.dispatcher()
	if d == nil {
		return
	}
	for _, name := range decl.Destructive {
		if _, ok := c.observed[name]; ok {
			continue
		}
		d.AddObserver(c.owner, c.invalidate, name, c.owner)
		c.observed[name] = struct{}{}
	}
}

// invalidate drops every cached name whose declaration lists the fired
// notification as destructive, all argument variants together.
func (c *Cache) invalidate(n *notification.Notification) error {
	fired := n.Name()
	for name := range c.entries {
		decl, ok := c.table.Lookup(name)
		if !ok {
			continue
		}
		if decl.destroyedBy(fired) {
			delete(c.entries, name)
		}
	}
	return nil
}
