package font

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
)

// DefaultLayerName is the conventional name of a font's primary layer.
const DefaultLayerName = "public.default"

// Font is the root of the object graph. It owns the shared dispatcher;
// every layer, glyph, contour, component, anchor, and the kerning,
// groups, and lib objects post through it. Creating a font attaches the
// whole graph; Close detaches it and drops every registration.
type Font struct {
	object.Base
	id         string
	dispatcher *notification.Dispatcher

	layers       map[string]*Layer
	layerOrder   []string
	defaultLayer string

	glyphOrder []string

	kerning *Kerning
	groups  *Groups
	lib     *Lib
}

// Option configures a font at construction time.
type Option func(*fontConfig)

type fontConfig struct {
	logger           *notification.Logger
	defaultLayerName string
}

// WithLogger routes the dispatcher's diagnostics to the given logger.
func WithLogger(l *notification.Logger) Option {
	return func(c *fontConfig) {
		c.logger = l
	}
}

// WithDefaultLayerName overrides the name of the primary layer.
func WithDefaultLayerName(name string) Option {
	return func(c *fontConfig) {
		c.defaultLayerName = name
	}
}

// NewFont creates a font with an attached default layer, kerning,
// groups, and lib.
func NewFont(opts ...Option) *Font {
	cfg := fontConfig{defaultLayerName: DefaultLayerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	var dopts []notification.Option
	if cfg.logger != nil {
		dopts = append(dopts, notification.WithLogger(cfg.logger))
	}
	f := &Font{
		id:         uuid.NewString(),
		dispatcher: notification.NewDispatcher(dopts...),
		layers:     make(map[string]*Layer),
		kerning:    NewKerning(),
		groups:     NewGroups(),
		lib:        NewLib(),
	}
	f.Init(f, FontChanged, nil)
	f.SetDispatcher(f.dispatcher)
	f.BeginSelfNotificationObservation()

	f.groups.attach(f.dispatcher, f)
	f.Observe(f.groups, GroupsChanged, f.partChanged)
	f.kerning.attach(f.dispatcher, f, f.groups)
	f.Observe(f.kerning, KerningChanged, f.partChanged)
	f.lib.attach(f.dispatcher, f)
	f.Observe(f.lib, LibChanged, f.partChanged)

	layer := NewLayer(cfg.defaultLayerName)
	f.defaultLayer = layer.name
	f.adoptLayer(layer)
	return f
}

// Close detaches the entire graph from the dispatcher. The font and its
// objects remain readable but post nothing afterwards.
func (f *Font) Close() {
	for _, name := range f.layerOrder {
		f.layers[name].detach()
	}
	f.kerning.detach()
	f.groups.detach()
	f.lib.detach()
	f.EndSelfNotificationObservation()
	f.dispatcher = nil
}

// ID returns the font's unique identifier.
func (f *Font) ID() string { return f.id }

// NotificationDispatcher returns the dispatcher shared by the graph,
// or nil after Close.
func (f *Font) NotificationDispatcher() *notification.Dispatcher {
	return f.dispatcher
}

func (f *Font) adoptLayer(l *Layer) {
	f.layers[l.name] = l
	f.layerOrder = append(f.layerOrder, l.name)
	l.attach(f.dispatcher, f)
	f.Observe(l, LayerChanged, f.partChanged)
}

// partChanged propagates any direct child's change into the font's
// dirty state, posting Font.Changed.
func (f *Font) partChanged(*notification.Notification) error {
	return f.SetDirty(true)
}

// DefaultLayer returns the font's primary layer.
func (f *Font) DefaultLayer() *Layer {
	return f.layers[f.defaultLayer]
}

// Layer returns the named layer.
func (f *Font) Layer(name string) (*Layer, error) {
	l, ok := f.layers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLayerNotFound, name)
	}
	return l, nil
}

// NewLayer creates and attaches an empty layer.
func (f *Font) NewLayer(name string) (*Layer, error) {
	if _, ok := f.layers[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateLayer, name)
	}
	l := NewLayer(name)
	f.adoptLayer(l)
	if err := f.PostNotification(FontLayerAdded, name); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteLayer detaches and removes the named layer. The default layer
// cannot be deleted.
func (f *Font) DeleteLayer(name string) error {
	l, ok := f.layers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLayerNotFound, name)
	}
	if name == f.defaultLayer {
		return fmt.Errorf("%w: %s", ErrDefaultLayer, name)
	}
	delete(f.layers, name)
	for i, n := range f.layerOrder {
		if n == name {
			f.layerOrder = append(f.layerOrder[:i], f.layerOrder[i+1:]...)
			break
		}
	}
	f.Unobserve(l, LayerChanged)
	l.detach()
	return f.PostNotification(FontLayerDeleted, name)
}

// LayerNames returns the layer names in creation order, default layer
// first.
func (f *Font) LayerNames() []string {
	out := make([]string, len(f.layerOrder))
	copy(out, f.layerOrder)
	return out
}

// GlyphOrder returns the font's explicit glyph ordering. Glyphs missing
// from the list sort after it; the list may name glyphs that do not
// exist yet.
func (f *Font) GlyphOrder() []string {
	out := make([]string, len(f.glyphOrder))
	copy(out, f.glyphOrder)
	return out
}

// SetGlyphOrder replaces the explicit glyph ordering.
func (f *Font) SetGlyphOrder(order []string) error {
	stored := make([]string, len(order))
	copy(stored, order)
	f.glyphOrder = stored
	return f.PostNotification(FontGlyphOrderChanged, nil)
}

// Kerning returns the font's kerning table.
func (f *Font) Kerning() *Kerning { return f.kerning }

// Groups returns the font's groups.
func (f *Font) Groups() *Groups { return f.groups }

// Lib returns the font's lib.
func (f *Font) Lib() *Lib { return f.lib }
