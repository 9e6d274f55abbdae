package font

import (
	"errors"
	"testing"
)

func newTestGlyph(t *testing.T, name string) (*Font, *Glyph) {
	t.Helper()
	f := NewFont()
	t.Cleanup(f.Close)
	g, err := f.DefaultLayer().NewGlyph(name)
	if err != nil {
		t.Fatalf("NewGlyph(%q) failed: %v", name, err)
	}
	return f, g
}

func TestGlyph_BasicAttributes(t *testing.T) {
	_, g := newTestGlyph(t, "A")

	if err := g.SetWidth(600); err != nil {
		t.Fatalf("SetWidth() failed: %v", err)
	}
	if g.Width() != 600 {
		t.Errorf("Width() = %v, want 600", g.Width())
	}
	if err := g.SetUnicodes([]rune{'A'}); err != nil {
		t.Fatalf("SetUnicodes() failed: %v", err)
	}
	if u := g.Unicodes(); len(u) != 1 || u[0] != 'A' {
		t.Errorf("Unicodes() = %v", u)
	}
}

func TestGlyph_ContourLifecycle(t *testing.T) {
	_, g := newTestGlyph(t, "A")

	c := NewContour()
	if err := g.AppendContour(c); err != nil {
		t.Fatalf("AppendContour() failed: %v", err)
	}
	if c.Dispatcher() == nil {
		t.Fatal("expected appended contour to be attached")
	}
	if err := g.AppendContour(c); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("re-append: got %v, want ErrAlreadyAttached", err)
	}
	if g.ContourCount() != 1 {
		t.Fatalf("ContourCount() = %d, want 1", g.ContourCount())
	}
	got, err := g.ContourAt(0)
	if err != nil || got != c {
		t.Fatalf("ContourAt(0) = %v, %v", got, err)
	}
	if _, err := g.ContourAt(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("ContourAt(1): got %v, want ErrIndexOutOfRange", err)
	}
	if err := g.RemoveContour(0); err != nil {
		t.Fatalf("RemoveContour() failed: %v", err)
	}
	if c.Dispatcher() != nil {
		t.Error("expected removed contour to be detached")
	}
	if g.ContourCount() != 0 {
		t.Errorf("ContourCount() = %d, want 0", g.ContourCount())
	}
}

func TestGlyph_BoundsMemoized(t *testing.T) {
	_, g := newTestGlyph(t, "A")
	c := NewContour()
	if err := g.AppendContour(c); err != nil {
		t.Fatalf("AppendContour() failed: %v", err)
	}
	for _, p := range []Point{{X: 0, Y: 0, Type: PointTypeMove}, {X: 100, Y: 50, Type: PointTypeLine}} {
		if err := c.AppendPoint(p); err != nil {
			t.Fatalf("AppendPoint() failed: %v", err)
		}
	}

	r, ok := g.Bounds()
	if !ok {
		t.Fatal("expected bounds for a glyph with points")
	}
	if r.XMin != 0 || r.XMax != 100 || r.YMin != 0 || r.YMax != 50 {
		t.Errorf("Bounds() = %+v", r)
	}
	if !g.HasCachedRepresentation(GlyphBoundsRepresentation, nil) {
		t.Fatal("expected bounds to be cached")
	}

	// A point edit deep in the contour must invalidate the cached
	// glyph bounds through the notification cascade.
	if err := c.MovePoint(1, 100, 0); err != nil {
		t.Fatalf("MovePoint() failed: %v", err)
	}
	if g.HasCachedRepresentation(GlyphBoundsRepresentation, nil) {
		t.Fatal("expected cached bounds invalidated by a point edit")
	}
	r, ok = g.Bounds()
	if !ok || r.XMax != 200 {
		t.Errorf("Bounds() after edit = %+v, %v, want XMax 200", r, ok)
	}
}

func TestGlyph_FlattenedOutline(t *testing.T) {
	f, _ := newTestGlyph(t, "base")
	layer := f.DefaultLayer()
	base, err := layer.Glyph("base")
	if err != nil {
		t.Fatal(err)
	}
	c := NewContour()
	if err := base.AppendContour(c); err != nil {
		t.Fatal(err)
	}
	if err := c.AppendPoint(Point{X: 10, Y: 20, Type: PointTypeMove}); err != nil {
		t.Fatal(err)
	}

	composite, err := layer.NewGlyph("composite")
	if err != nil {
		t.Fatal(err)
	}
	comp := NewComponent("base")
	if err := composite.AppendComponent(comp); err != nil {
		t.Fatalf("AppendComponent() failed: %v", err)
	}
	if err := comp.Move(5, -5); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}

	points := composite.FlattenedOutline(true)
	if len(points) != 1 {
		t.Fatalf("expected 1 flattened point, got %d", len(points))
	}
	if points[0].X != 15 || points[0].Y != 15 {
		t.Errorf("flattened point = (%v, %v), want (15, 15)", points[0].X, points[0].Y)
	}

	// Without components only the glyph's own contours appear.
	if own := composite.FlattenedOutline(false); len(own) != 0 {
		t.Errorf("expected no own points, got %v", own)
	}
}

func TestGlyph_FlattenBreaksComponentCycles(t *testing.T) {
	f, a := newTestGlyph(t, "A")
	layer := f.DefaultLayer()
	b, err := layer.NewGlyph("B")
	if err != nil {
		t.Fatal(err)
	}

	ca := NewContour()
	if err := a.AppendContour(ca); err != nil {
		t.Fatal(err)
	}
	if err := ca.AppendPoint(Point{X: 1, Type: PointTypeMove}); err != nil {
		t.Fatal(err)
	}
	cb := NewContour()
	if err := b.AppendContour(cb); err != nil {
		t.Fatal(err)
	}
	if err := cb.AppendPoint(Point{X: 2, Type: PointTypeMove}); err != nil {
		t.Fatal(err)
	}

	if err := a.AppendComponent(NewComponent("B")); err != nil {
		t.Fatal(err)
	}
	if err := b.AppendComponent(NewComponent("A")); err != nil {
		t.Fatal(err)
	}

	points := a.FlattenedOutline(true)
	if len(points) != 2 {
		t.Fatalf("expected cycle to terminate with 2 points, got %d", len(points))
	}
	if points[0].X != 1 || points[1].X != 2 {
		t.Errorf("flattened points = %v", points)
	}
}

func TestGlyph_Anchors(t *testing.T) {
	_, g := newTestGlyph(t, "A")

	top := NewAnchor("top", 250, 700)
	if err := g.AppendAnchor(top); err != nil {
		t.Fatalf("AppendAnchor() failed: %v", err)
	}
	got, ok := g.AnchorNamed("top")
	if !ok || got != top {
		t.Fatalf("AnchorNamed(top) = %v, %v", got, ok)
	}
	if err := top.SetName("top.alt"); err != nil {
		t.Fatalf("SetName() failed: %v", err)
	}
	if _, ok := g.AnchorNamed("top"); ok {
		t.Error("expected old anchor name gone")
	}
	if err := top.Move(0, -50); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if _, y := top.Position(); y != 650 {
		t.Errorf("Position() y = %v, want 650", y)
	}
	if err := g.RemoveAnchor(0); err != nil {
		t.Fatalf("RemoveAnchor() failed: %v", err)
	}
	if top.Dispatcher() != nil {
		t.Error("expected removed anchor detached")
	}
}

func TestGlyph_Move(t *testing.T) {
	_, g := newTestGlyph(t, "A")
	c := NewContour()
	if err := g.AppendContour(c); err != nil {
		t.Fatal(err)
	}
	if err := c.AppendPoint(Point{X: 10, Y: 10, Type: PointTypeMove}); err != nil {
		t.Fatal(err)
	}
	a := NewAnchor("top", 0, 0)
	if err := g.AppendAnchor(a); err != nil {
		t.Fatal(err)
	}

	if err := g.Move(5, 7); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	p, err := c.PointAt(0)
	if err != nil || p.X != 15 || p.Y != 17 {
		t.Errorf("moved point = %+v, %v", p, err)
	}
	x, y := a.Position()
	if x != 5 || y != 7 {
		t.Errorf("moved anchor = (%v, %v)", x, y)
	}
}

func TestGlyph_SetNameRejectsDuplicate(t *testing.T) {
	f, a := newTestGlyph(t, "A")
	if _, err := f.DefaultLayer().NewGlyph("B"); err != nil {
		t.Fatal(err)
	}
	if err := a.SetName("B"); !errors.Is(err, ErrDuplicateGlyph) {
		t.Errorf("rename to taken name: got %v, want ErrDuplicateGlyph", err)
	}
	if a.Name() != "A" {
		t.Errorf("Name() = %q, want unchanged", a.Name())
	}
}
