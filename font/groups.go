package font

import (
	"sort"

	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
)

// Groups maps group names to ordered lists of glyph names. Kerning
// groups conventionally use the "public.kern1." and "public.kern2."
// prefixes.
type Groups struct {
	object.Base
	groups map[string][]string
}

// NewGroups creates a detached, empty groups collection.
func NewGroups() *Groups {
	g := &Groups{groups: make(map[string][]string)}
	g.Init(g, GroupsChanged, groupsRepresentations)
	return g
}

func (g *Groups) attach(d *notification.Dispatcher, parent notification.Observable) {
	g.SetDispatcher(d)
	g.SetParent(parent)
	g.BeginSelfNotificationObservation()
}

func (g *Groups) detach() {
	g.EndSelfNotificationObservation()
}

// Len returns the number of groups.
func (g *Groups) Len() int { return len(g.groups) }

// Has reports whether a group with the given name exists.
func (g *Groups) Has(name string) bool {
	_, ok := g.groups[name]
	return ok
}

// Get returns a copy of the named group's members and whether the group
// exists.
func (g *Groups) Get(name string) ([]string, bool) {
	members, ok := g.groups[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(members))
	copy(out, members)
	return out, true
}

// Set stores the named group, replacing any previous membership.
func (g *Groups) Set(name string, members []string) error {
	stored := make([]string, len(members))
	copy(stored, members)
	g.groups[name] = stored
	return g.PostNotification(GroupsGroupSet, name)
}

// Delete removes the named group; no-op if absent.
func (g *Groups) Delete(name string) error {
	if _, ok := g.groups[name]; !ok {
		return nil
	}
	delete(g.groups, name)
	return g.PostNotification(GroupsGroupDeleted, name)
}

// Names returns the group names in sorted order.
func (g *Groups) Names() []string {
	names := make([]string, 0, len(g.groups))
	for name := range g.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupsForGlyph returns the sorted names of every group containing the
// glyph, memoized until the groups change.
func (g *Groups) GroupsForGlyph(glyph string) []string {
	v, err := g.GetRepresentation(GroupsGlyphIndexRepresentation, nil)
	if err != nil || v == nil {
		return nil
	}
	index := v.(map[string][]string)
	names := index[glyph]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// glyphIndex inverts the group map: glyph name to sorted group names.
func (g *Groups) glyphIndex() map[string][]string {
	index := make(map[string][]string)
	for name, members := range g.groups {
		for _, glyph := range members {
			index[glyph] = append(index[glyph], name)
		}
	}
	for glyph := range index {
		sort.Strings(index[glyph])
	}
	return index
}
