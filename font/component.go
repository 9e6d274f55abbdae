package font

import (
	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
)

// Component is a reference to another glyph by name, placed under an
// affine transformation. The base glyph is resolved through the owning
// layer at flatten time, never stored directly.
type Component struct {
	object.Base
	baseGlyph string
	transform Transform
}

// NewComponent creates a detached component referencing baseGlyph with
// the identity transformation.
func NewComponent(baseGlyph string) *Component {
	c := &Component{baseGlyph: baseGlyph, transform: Identity}
	c.Init(c, ComponentChanged, nil)
	return c
}

func (c *Component) attach(d *notification.Dispatcher, parent notification.Observable) {
	c.SetDispatcher(d)
	c.SetParent(parent)
	c.BeginSelfNotificationObservation()
}

func (c *Component) detach() {
	c.EndSelfNotificationObservation()
}

// BaseGlyph returns the name of the referenced glyph.
func (c *Component) BaseGlyph() string { return c.baseGlyph }

// SetBaseGlyph changes which glyph the component references.
func (c *Component) SetBaseGlyph(name string) error {
	if name == c.baseGlyph {
		return nil
	}
	old := c.baseGlyph
	c.baseGlyph = name
	return c.PostNotification(ComponentBaseGlyphChanged, NameChange{Old: old, New: name})
}

// Transform returns the component's placement transformation.
func (c *Component) Transform() Transform { return c.transform }

// SetTransform replaces the placement transformation.
func (c *Component) SetTransform(t Transform) error {
	if t == c.transform {
		return nil
	}
	c.transform = t
	return c.PostNotification(ComponentTransformChanged, nil)
}

// Move offsets the component by (dx, dy).
func (c *Component) Move(dx, dy float64) error {
	t := c.transform
	t[4] += dx
	t[5] += dy
	return c.SetTransform(t)
}
