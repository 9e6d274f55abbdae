package font

import (
	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
)

// Anchor is a named attachment position within a glyph, used for mark
// placement.
type Anchor struct {
	object.Base
	name string
	x, y float64
}

// NewAnchor creates a detached anchor.
func NewAnchor(name string, x, y float64) *Anchor {
	a := &Anchor{name: name, x: x, y: y}
	a.Init(a, AnchorChanged, nil)
	return a
}

func (a *Anchor) attach(d *notification.Dispatcher, parent notification.Observable) {
	a.SetDispatcher(d)
	a.SetParent(parent)
	a.BeginSelfNotificationObservation()
}

func (a *Anchor) detach() {
	a.EndSelfNotificationObservation()
}

// Name returns the anchor's name.
func (a *Anchor) Name() string { return a.name }

// SetName renames the anchor.
func (a *Anchor) SetName(name string) error {
	if name == a.name {
		return nil
	}
	old := a.name
	a.name = name
	return a.PostNotification(AnchorNameChanged, NameChange{Old: old, New: name})
}

// Position returns the anchor's coordinates.
func (a *Anchor) Position() (x, y float64) { return a.x, a.y }

// SetPosition moves the anchor to (x, y).
func (a *Anchor) SetPosition(x, y float64) error {
	if x == a.x && y == a.y {
		return nil
	}
	a.x, a.y = x, y
	return a.PostNotification(AnchorPositionChanged, nil)
}

// Move offsets the anchor by (dx, dy).
func (a *Anchor) Move(dx, dy float64) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	return a.SetPosition(a.x+dx, a.y+dy)
}
