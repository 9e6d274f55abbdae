package font

import (
	"errors"
	"testing"

	"github.com/dshills/fontstorm/notification"
)

// probe is a minimal observable used to register test observers.
type probe struct {
	notification.Ident
	events []string
}

func newProbe() *probe {
	p := &probe{}
	p.Bind(p)
	return p
}

func (p *probe) record(n *notification.Notification) error {
	p.events = append(p.events, n.Name())
	return nil
}

func TestNewFont(t *testing.T) {
	f := NewFont()
	defer f.Close()

	if f.ID() == "" {
		t.Error("expected non-empty font ID")
	}
	if f.NotificationDispatcher() == nil {
		t.Fatal("expected a live dispatcher")
	}
	layer := f.DefaultLayer()
	if layer == nil {
		t.Fatal("expected a default layer")
	}
	if layer.Name() != DefaultLayerName {
		t.Errorf("default layer = %q, want %q", layer.Name(), DefaultLayerName)
	}
	names := f.LayerNames()
	if len(names) != 1 || names[0] != DefaultLayerName {
		t.Errorf("LayerNames() = %v, want [%s]", names, DefaultLayerName)
	}
}

func TestFont_WithDefaultLayerName(t *testing.T) {
	f := NewFont(WithDefaultLayerName("master"))
	defer f.Close()

	if f.DefaultLayer().Name() != "master" {
		t.Errorf("default layer = %q, want %q", f.DefaultLayer().Name(), "master")
	}
}

// A single point edit must surface at every level of the graph, most
// specific notification first.
func TestFont_ChangeCascade(t *testing.T) {
	f := NewFont()
	defer f.Close()
	layer := f.DefaultLayer()
	g, err := layer.NewGlyph("A")
	if err != nil {
		t.Fatalf("NewGlyph() failed: %v", err)
	}
	c := NewContour()
	if err := g.AppendContour(c); err != nil {
		t.Fatalf("AppendContour() failed: %v", err)
	}

	p := newProbe()
	f.NotificationDispatcher().AddObserver(p, p.record, "", nil)

	if err := c.AppendPoint(Point{X: 1, Y: 2, Type: PointTypeLine}); err != nil {
		t.Fatalf("AppendPoint() failed: %v", err)
	}

	want := []string{
		ContourPointsChanged,
		ContourChanged,
		GlyphContoursChanged,
		GlyphChanged,
		LayerChanged,
		FontChanged,
	}
	if len(p.events) != len(want) {
		t.Fatalf("got events %v, want %v", p.events, want)
	}
	for i := range want {
		if p.events[i] != want[i] {
			t.Fatalf("event[%d] = %q, want %q (full: %v)", i, p.events[i], want[i], p.events)
		}
	}
	if !f.Dirty() || !layer.Dirty() || !g.Dirty() || !c.Dirty() {
		t.Error("expected the whole path to be marked dirty")
	}
}

func TestFont_HoldObservableDefersDelivery(t *testing.T) {
	f := NewFont()
	defer f.Close()
	g, err := f.DefaultLayer().NewGlyph("A")
	if err != nil {
		t.Fatalf("NewGlyph() failed: %v", err)
	}
	d := f.NotificationDispatcher()

	p := newProbe()
	d.AddObserver(p, p.record, GlyphChanged, g)

	if err := g.SetDirty(true); err != nil {
		t.Fatalf("SetDirty() failed: %v", err)
	}
	if len(p.events) != 1 {
		t.Fatalf("expected 1 delivery before hold, got %d", len(p.events))
	}

	g.HoldNotifications("editing session")
	if err := g.SetDirty(true); err != nil {
		t.Fatalf("SetDirty() under hold failed: %v", err)
	}
	if len(p.events) != 1 {
		t.Fatalf("expected delivery deferred under hold, got %d", len(p.events))
	}
	held := d.HeldNotifications(g, "", nil)
	if len(held) != 1 || held[0].Name != GlyphChanged {
		t.Fatalf("HeldNotifications() = %v, want one %s", held, GlyphChanged)
	}

	if err := g.ReleaseHeldNotifications(); err != nil {
		t.Fatalf("ReleaseHeldNotifications() failed: %v", err)
	}
	if len(p.events) != 2 {
		t.Errorf("expected replay after release, got %d deliveries", len(p.events))
	}
}

func TestFont_DisableDropsNotifications(t *testing.T) {
	f := NewFont()
	defer f.Close()
	g, err := f.DefaultLayer().NewGlyph("A")
	if err != nil {
		t.Fatalf("NewGlyph() failed: %v", err)
	}

	p := newProbe()
	g.AddObserver(p, p.record, GlyphChanged)

	g.DisableNotifications()
	if err := g.SetDirty(true); err != nil {
		t.Fatalf("SetDirty() under disable failed: %v", err)
	}
	g.EnableNotifications()

	if len(p.events) != 0 {
		t.Errorf("expected disabled notifications dropped, got %v", p.events)
	}
	if err := g.SetDirty(true); err != nil {
		t.Fatalf("SetDirty() after enable failed: %v", err)
	}
	if len(p.events) != 1 {
		t.Errorf("expected delivery after enable, got %d", len(p.events))
	}
}

func TestFont_Layers(t *testing.T) {
	f := NewFont()
	defer f.Close()

	bg, err := f.NewLayer("background")
	if err != nil {
		t.Fatalf("NewLayer() failed: %v", err)
	}
	if _, err := f.NewLayer("background"); !errors.Is(err, ErrDuplicateLayer) {
		t.Errorf("duplicate layer: got %v, want ErrDuplicateLayer", err)
	}
	got, err := f.Layer("background")
	if err != nil || got != bg {
		t.Fatalf("Layer() = %v, %v, want the created layer", got, err)
	}
	names := f.LayerNames()
	if len(names) != 2 || names[0] != DefaultLayerName || names[1] != "background" {
		t.Errorf("LayerNames() = %v", names)
	}

	if err := f.DeleteLayer(DefaultLayerName); !errors.Is(err, ErrDefaultLayer) {
		t.Errorf("deleting default layer: got %v, want ErrDefaultLayer", err)
	}
	if err := f.DeleteLayer("background"); err != nil {
		t.Fatalf("DeleteLayer() failed: %v", err)
	}
	if _, err := f.Layer("background"); !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("deleted layer: got %v, want ErrLayerNotFound", err)
	}
	if bg.Dispatcher() != nil {
		t.Error("expected deleted layer to be detached")
	}
}

func TestFont_GlyphOrder(t *testing.T) {
	f := NewFont()
	defer f.Close()

	p := newProbe()
	f.AddObserver(p, p.record, FontGlyphOrderChanged)

	if err := f.SetGlyphOrder([]string{"A", "B", "space"}); err != nil {
		t.Fatalf("SetGlyphOrder() failed: %v", err)
	}
	order := f.GlyphOrder()
	if len(order) != 3 || order[0] != "A" || order[2] != "space" {
		t.Errorf("GlyphOrder() = %v", order)
	}
	if len(p.events) != 1 {
		t.Errorf("expected one %s, got %v", FontGlyphOrderChanged, p.events)
	}
	if !f.Dirty() {
		t.Error("expected glyph order change to mark the font dirty")
	}
}

func TestFont_CloseDetachesGraph(t *testing.T) {
	f := NewFont()
	g, err := f.DefaultLayer().NewGlyph("A")
	if err != nil {
		t.Fatalf("NewGlyph() failed: %v", err)
	}

	p := newProbe()
	f.NotificationDispatcher().AddObserver(p, p.record, "", nil)

	f.Close()

	if f.NotificationDispatcher() != nil {
		t.Error("expected nil dispatcher after Close")
	}
	if g.Dispatcher() != nil {
		t.Error("expected glyph detached after Close")
	}
	if err := g.SetWidth(500); err != nil {
		t.Fatalf("SetWidth() after Close failed: %v", err)
	}
	if len(p.events) != 0 {
		t.Errorf("expected no deliveries after Close, got %v", p.events)
	}
	if g.Width() != 500 {
		t.Error("expected detached object to remain editable")
	}
}
