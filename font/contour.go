package font

import (
	"fmt"

	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
)

// Contour is an ordered run of points within a glyph. Mutations post
// Contour.PointsChanged; the contour's dirty bookkeeping re-posts
// Contour.Changed, which the owning glyph observes.
type Contour struct {
	object.Base
	points []Point
}

// NewContour creates a detached contour. It becomes live when appended
// to an attached glyph.
func NewContour() *Contour {
	c := &Contour{}
	c.Init(c, ContourChanged, contourRepresentations)
	return c
}

// attach wires the contour to the shared dispatcher.
func (c *Contour) attach(d *notification.Dispatcher, parent notification.Observable) {
	c.SetDispatcher(d)
	c.SetParent(parent)
	c.BeginSelfNotificationObservation()
}

// detach tears the contour down.
func (c *Contour) detach() {
	c.EndSelfNotificationObservation()
}

// Len returns the number of points.
func (c *Contour) Len() int { return len(c.points) }

// Points returns a copy of the contour's points.
func (c *Contour) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// PointAt returns the point at index i.
func (c *Contour) PointAt(i int) (Point, error) {
	if i < 0 || i >= len(c.points) {
		return Point{}, fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, i, len(c.points))
	}
	return c.points[i], nil
}

// AppendPoint adds a point at the end of the contour.
func (c *Contour) AppendPoint(p Point) error {
	c.points = append(c.points, p)
	return c.PostNotification(ContourPointsChanged, nil)
}

// InsertPoint adds a point at index i.
func (c *Contour) InsertPoint(i int, p Point) error {
	if i < 0 || i > len(c.points) {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, i, len(c.points))
	}
	c.points = append(c.points, Point{})
	copy(c.points[i+1:], c.points[i:])
	c.points[i] = p
	return c.PostNotification(ContourPointsChanged, nil)
}

// SetPoint replaces the point at index i.
func (c *Contour) SetPoint(i int, p Point) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, i, len(c.points))
	}
	c.points[i] = p
	return c.PostNotification(ContourPointsChanged, nil)
}

// MovePoint offsets the point at index i by (dx, dy).
func (c *Contour) MovePoint(i int, dx, dy float64) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, i, len(c.points))
	}
	c.points[i].X += dx
	c.points[i].Y += dy
	return c.PostNotification(ContourPointsChanged, nil)
}

// RemovePoint deletes the point at index i.
func (c *Contour) RemovePoint(i int) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, i, len(c.points))
	}
	c.points = append(c.points[:i], c.points[i+1:]...)
	return c.PostNotification(ContourPointsChanged, nil)
}

// Clear removes every point.
func (c *Contour) Clear() error {
	if len(c.points) == 0 {
		return nil
	}
	c.points = nil
	return c.PostNotification(ContourPointsChanged, nil)
}

// Bounds returns the contour's control-point bounding box, memoized
// until the points change. The second result is false for an empty
// contour.
func (c *Contour) Bounds() (Rect, bool) {
	v, err := c.GetRepresentation(ContourBoundsRepresentation, nil)
	if err != nil || v == nil {
		return Rect{}, false
	}
	return v.(Rect), true
}
