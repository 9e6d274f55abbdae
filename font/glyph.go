package font

import (
	"fmt"

	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
	"github.com/dshills/fontstorm/representation"
)

// Glyph is one drawable unit: an advance width, unicode assignments,
// outline contours, component references, and anchors. The glyph
// observes each child's generic change notification and re-posts its
// own collection-level notification, so a point edit three levels down
// still surfaces as Glyph.ContoursChanged and then Glyph.Changed.
type Glyph struct {
	object.Base
	name       string
	width      float64
	unicodes   []rune
	contours   []*Contour
	components []*Component
	anchors    []*Anchor
}

// NewGlyph creates a detached glyph.
func NewGlyph(name string) *Glyph {
	g := &Glyph{name: name}
	g.Init(g, GlyphChanged, glyphRepresentations)
	return g
}

// attach wires the glyph and all of its children to the dispatcher.
func (g *Glyph) attach(d *notification.Dispatcher, parent notification.Observable) {
	g.SetDispatcher(d)
	g.SetParent(parent)
	g.BeginSelfNotificationObservation()
	for _, c := range g.contours {
		g.adoptContour(c)
	}
	for _, c := range g.components {
		g.adoptComponent(c)
	}
	for _, a := range g.anchors {
		g.adoptAnchor(a)
	}
}

// detach tears down the glyph and its children.
func (g *Glyph) detach() {
	for _, c := range g.contours {
		c.detach()
	}
	for _, c := range g.components {
		c.detach()
	}
	for _, a := range g.anchors {
		a.detach()
	}
	g.EndSelfNotificationObservation()
}

func (g *Glyph) adoptContour(c *Contour) {
	c.attach(g.Dispatcher(), g)
	g.Observe(c, ContourChanged, g.contourChanged)
}

func (g *Glyph) adoptComponent(c *Component) {
	c.attach(g.Dispatcher(), g)
	g.Observe(c, ComponentChanged, g.componentChanged)
}

func (g *Glyph) adoptAnchor(a *Anchor) {
	a.attach(g.Dispatcher(), g)
	g.Observe(a, AnchorChanged, g.anchorChanged)
}

func (g *Glyph) contourChanged(*notification.Notification) error {
	return g.PostNotification(GlyphContoursChanged, nil)
}

func (g *Glyph) componentChanged(*notification.Notification) error {
	return g.PostNotification(GlyphComponentsChanged, nil)
}

func (g *Glyph) anchorChanged(*notification.Notification) error {
	return g.PostNotification(GlyphAnchorsChanged, nil)
}

// Name returns the glyph's name.
func (g *Glyph) Name() string { return g.name }

// SetName renames the glyph. When the glyph lives in a layer the new
// name must be free there; the layer reindexes itself in response to
// the name-change notification.
func (g *Glyph) SetName(name string) error {
	if name == g.name {
		return nil
	}
	if layer, ok := g.Parent().(*Layer); ok {
		if _, exists := layer.glyphs[name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateGlyph, name)
		}
	}
	old := g.name
	g.name = name
	return g.PostNotification(GlyphNameChanged, NameChange{Old: old, New: name})
}

// Width returns the advance width.
func (g *Glyph) Width() float64 { return g.width }

// SetWidth sets the advance width.
func (g *Glyph) SetWidth(w float64) error {
	if w == g.width {
		return nil
	}
	g.width = w
	return g.PostNotification(GlyphWidthChanged, nil)
}

// Unicodes returns a copy of the glyph's unicode assignments.
func (g *Glyph) Unicodes() []rune {
	out := make([]rune, len(g.unicodes))
	copy(out, g.unicodes)
	return out
}

// SetUnicodes replaces the unicode assignments.
func (g *Glyph) SetUnicodes(unicodes []rune) error {
	stored := make([]rune, len(unicodes))
	copy(stored, unicodes)
	g.unicodes = stored
	return g.PostNotification(GlyphUnicodesChanged, nil)
}

// ContourCount returns the number of contours.
func (g *Glyph) ContourCount() int { return len(g.contours) }

// ContourAt returns the contour at index i.
func (g *Glyph) ContourAt(i int) (*Contour, error) {
	if i < 0 || i >= len(g.contours) {
		return nil, fmt.Errorf("%w: contour %d of %d", ErrIndexOutOfRange, i, len(g.contours))
	}
	return g.contours[i], nil
}

// Contours returns the contours in order.
func (g *Glyph) Contours() []*Contour {
	out := make([]*Contour, len(g.contours))
	copy(out, g.contours)
	return out
}

// AppendContour adopts a detached contour at the end of the outline.
func (g *Glyph) AppendContour(c *Contour) error {
	if c.Dispatcher() != nil {
		return fmt.Errorf("%w: contour", ErrAlreadyAttached)
	}
	g.contours = append(g.contours, c)
	if g.Dispatcher() != nil {
		g.adoptContour(c)
	}
	return g.PostNotification(GlyphContoursChanged, nil)
}

// RemoveContour detaches and removes the contour at index i.
func (g *Glyph) RemoveContour(i int) error {
	if i < 0 || i >= len(g.contours) {
		return fmt.Errorf("%w: contour %d of %d", ErrIndexOutOfRange, i, len(g.contours))
	}
	c := g.contours[i]
	g.contours = append(g.contours[:i], g.contours[i+1:]...)
	if g.Dispatcher() != nil {
		g.Unobserve(c, ContourChanged)
	}
	c.detach()
	return g.PostNotification(GlyphContoursChanged, nil)
}

// ClearContours detaches and removes every contour.
func (g *Glyph) ClearContours() error {
	if len(g.contours) == 0 {
		return nil
	}
	for _, c := range g.contours {
		if g.Dispatcher() != nil {
			g.Unobserve(c, ContourChanged)
		}
		c.detach()
	}
	g.contours = nil
	return g.PostNotification(GlyphContoursChanged, nil)
}

// ComponentCount returns the number of components.
func (g *Glyph) ComponentCount() int { return len(g.components) }

// Components returns the components in order.
func (g *Glyph) Components() []*Component {
	out := make([]*Component, len(g.components))
	copy(out, g.components)
	return out
}

// AppendComponent adopts a detached component.
func (g *Glyph) AppendComponent(c *Component) error {
	if c.Dispatcher() != nil {
		return fmt.Errorf("%w: component", ErrAlreadyAttached)
	}
	g.components = append(g.components, c)
	if g.Dispatcher() != nil {
		g.adoptComponent(c)
	}
	return g.PostNotification(GlyphComponentsChanged, nil)
}

// RemoveComponent detaches and removes the component at index i.
func (g *Glyph) RemoveComponent(i int) error {
	if i < 0 || i >= len(g.components) {
		return fmt.Errorf("%w: component %d of %d", ErrIndexOutOfRange, i, len(g.components))
	}
	c := g.components[i]
	g.components = append(g.components[:i], g.components[i+1:]...)
	if g.Dispatcher() != nil {
		g.Unobserve(c, ComponentChanged)
	}
	c.detach()
	return g.PostNotification(GlyphComponentsChanged, nil)
}

// AnchorCount returns the number of anchors.
func (g *Glyph) AnchorCount() int { return len(g.anchors) }

// Anchors returns the anchors in order.
func (g *Glyph) Anchors() []*Anchor {
	out := make([]*Anchor, len(g.anchors))
	copy(out, g.anchors)
	return out
}

// AnchorNamed returns the first anchor with the given name.
func (g *Glyph) AnchorNamed(name string) (*Anchor, bool) {
	for _, a := range g.anchors {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}

// AppendAnchor adopts a detached anchor.
func (g *Glyph) AppendAnchor(a *Anchor) error {
	if a.Dispatcher() != nil {
		return fmt.Errorf("%w: anchor", ErrAlreadyAttached)
	}
	g.anchors = append(g.anchors, a)
	if g.Dispatcher() != nil {
		g.adoptAnchor(a)
	}
	return g.PostNotification(GlyphAnchorsChanged, nil)
}

// RemoveAnchor detaches and removes the anchor at index i.
func (g *Glyph) RemoveAnchor(i int) error {
	if i < 0 || i >= len(g.anchors) {
		return fmt.Errorf("%w: anchor %d of %d", ErrIndexOutOfRange, i, len(g.anchors))
	}
	a := g.anchors[i]
	g.anchors = append(g.anchors[:i], g.anchors[i+1:]...)
	if g.Dispatcher() != nil {
		g.Unobserve(a, AnchorChanged)
	}
	a.detach()
	return g.PostNotification(GlyphAnchorsChanged, nil)
}

// Move offsets the glyph's contours, components, and anchors by
// (dx, dy).
func (g *Glyph) Move(dx, dy float64) error {
	for _, c := range g.contours {
		for i := range c.points {
			c.points[i].X += dx
			c.points[i].Y += dy
		}
		if err := c.PostNotification(ContourPointsChanged, nil); err != nil {
			return err
		}
	}
	for _, c := range g.components {
		if err := c.Move(dx, dy); err != nil {
			return err
		}
	}
	for _, a := range g.anchors {
		if err := a.Move(dx, dy); err != nil {
			return err
		}
	}
	return nil
}

// Bounds returns the control-point bounding box of the glyph's own
// contours, memoized until the outline changes. The second result is
// false for a glyph without points.
func (g *Glyph) Bounds() (Rect, bool) {
	v, err := g.GetRepresentation(GlyphBoundsRepresentation, nil)
	if err != nil || v == nil {
		return Rect{}, false
	}
	return v.(Rect), true
}

// FlattenedOutline returns the glyph's outline points with component
// references optionally resolved and transformed through the owning
// layer. Component cycles are broken by skipping any glyph already on
// the resolution path.
func (g *Glyph) FlattenedOutline(components bool) []Point {
	args := representation.Args{"components": components}
	v, err := g.GetRepresentation(GlyphFlattenedOutlineRepresentation, args)
	if err != nil || v == nil {
		return nil
	}
	return v.([]Point)
}

// flatten collects the glyph's points, recursing into components when
// asked. seen carries the glyph names on the current path.
func (g *Glyph) flatten(components bool, seen map[string]struct{}) []Point {
	var out []Point
	for _, c := range g.contours {
		out = append(out, c.points...)
	}
	if !components {
		return out
	}
	layer, _ := g.Parent().(*Layer)
	if layer == nil {
		return out
	}
	seen[g.name] = struct{}{}
	defer delete(seen, g.name)
	for _, comp := range g.components {
		if _, onPath := seen[comp.baseGlyph]; onPath {
			continue
		}
		base, ok := layer.glyphs[comp.baseGlyph]
		if !ok {
			continue
		}
		out = append(out, transformPoints(base.flatten(true, seen), comp.transform)...)
	}
	return out
}
