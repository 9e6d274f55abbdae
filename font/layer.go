package font

import (
	"fmt"
	"sort"

	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
)

// Layer is a named collection of glyphs. Glyph content edits bubble up
// through the layer's dirty bookkeeping; structural edits (add, delete,
// rename) post their own layer-level notifications.
type Layer struct {
	object.Base
	name   string
	glyphs map[string]*Glyph
}

// NewLayer creates a detached layer.
func NewLayer(name string) *Layer {
	l := &Layer{name: name, glyphs: make(map[string]*Glyph)}
	l.Init(l, LayerChanged, layerRepresentations)
	return l
}

func (l *Layer) attach(d *notification.Dispatcher, parent notification.Observable) {
	l.SetDispatcher(d)
	l.SetParent(parent)
	l.BeginSelfNotificationObservation()
	for _, g := range l.glyphs {
		l.adoptGlyph(g)
	}
}

func (l *Layer) detach() {
	for _, g := range l.glyphs {
		g.detach()
	}
	l.EndSelfNotificationObservation()
}

func (l *Layer) adoptGlyph(g *Glyph) {
	g.attach(l.Dispatcher(), l)
	l.Observe(g, GlyphChanged, l.glyphChanged)
	l.Observe(g, GlyphNameChanged, l.glyphNameChanged)
}

// glyphChanged propagates glyph content edits into the layer's dirty
// state, which posts Layer.Changed.
func (l *Layer) glyphChanged(*notification.Notification) error {
	return l.SetDirty(true)
}

// glyphNameChanged reindexes the layer after a glyph renames itself.
func (l *Layer) glyphNameChanged(n *notification.Notification) error {
	change, ok := n.Data().(NameChange)
	if !ok {
		return nil
	}
	g, ok := l.glyphs[change.Old]
	if !ok {
		return nil
	}
	delete(l.glyphs, change.Old)
	l.glyphs[change.New] = g
	return l.PostNotification(LayerGlyphNameChanged, change)
}

// Name returns the layer's name.
func (l *Layer) Name() string { return l.name }

// Len returns the number of glyphs.
func (l *Layer) Len() int { return len(l.glyphs) }

// Has reports whether the layer contains a glyph with the given name.
func (l *Layer) Has(name string) bool {
	_, ok := l.glyphs[name]
	return ok
}

// Glyph returns the named glyph.
func (l *Layer) Glyph(name string) (*Glyph, error) {
	g, ok := l.glyphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGlyphNotFound, name)
	}
	return g, nil
}

// NewGlyph creates an empty glyph in the layer.
func (l *Layer) NewGlyph(name string) (*Glyph, error) {
	g := NewGlyph(name)
	if err := l.InsertGlyph(g); err != nil {
		return nil, err
	}
	return g, nil
}

// InsertGlyph adopts a detached glyph into the layer.
func (l *Layer) InsertGlyph(g *Glyph) error {
	if _, ok := l.glyphs[g.name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateGlyph, g.name)
	}
	if g.Dispatcher() != nil {
		return fmt.Errorf("%w: glyph %s", ErrAlreadyAttached, g.name)
	}
	l.glyphs[g.name] = g
	if l.Dispatcher() != nil {
		l.adoptGlyph(g)
	}
	return l.PostNotification(LayerGlyphAdded, g.name)
}

// DeleteGlyph detaches and removes the named glyph.
func (l *Layer) DeleteGlyph(name string) error {
	g, ok := l.glyphs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGlyphNotFound, name)
	}
	delete(l.glyphs, name)
	if l.Dispatcher() != nil {
		l.Unobserve(g, GlyphChanged)
		l.Unobserve(g, GlyphNameChanged)
	}
	g.detach()
	return l.PostNotification(LayerGlyphDeleted, name)
}

// GlyphNames returns the layer's glyph names in sorted order, memoized
// until the layer's membership changes.
func (l *Layer) GlyphNames() []string {
	v, err := l.GetRepresentation(LayerGlyphNamesRepresentation, nil)
	if err != nil || v == nil {
		return nil
	}
	names := v.([]string)
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// glyphNames computes the sorted name list for the representation.
func (l *Layer) glyphNames() []string {
	names := make([]string, 0, len(l.glyphs))
	for name := range l.glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
