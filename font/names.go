package font

// Notification names posted by the object graph. Every type posts a
// specific notification for each kind of mutation and a generic
// ".Changed" notification via its dirty bookkeeping; parents observe
// their children's generic notification and re-post their own, so
// listeners can observe at any granularity.
const (
	FontChanged           = "Font.Changed"
	FontLayerAdded        = "Font.LayerAdded"
	FontLayerDeleted      = "Font.LayerDeleted"
	FontGlyphOrderChanged = "Font.GlyphOrderChanged"

	LayerChanged          = "Layer.Changed"
	LayerGlyphAdded       = "Layer.GlyphAdded"
	LayerGlyphDeleted     = "Layer.GlyphDeleted"
	LayerGlyphNameChanged = "Layer.GlyphNameChanged"

	GlyphChanged           = "Glyph.Changed"
	GlyphNameChanged       = "Glyph.NameChanged"
	GlyphWidthChanged      = "Glyph.WidthChanged"
	GlyphUnicodesChanged   = "Glyph.UnicodesChanged"
	GlyphContoursChanged   = "Glyph.ContoursChanged"
	GlyphComponentsChanged = "Glyph.ComponentsChanged"
	GlyphAnchorsChanged    = "Glyph.AnchorsChanged"

	ContourChanged       = "Contour.Changed"
	ContourPointsChanged = "Contour.PointsChanged"

	ComponentChanged          = "Component.Changed"
	ComponentBaseGlyphChanged = "Component.BaseGlyphChanged"
	ComponentTransformChanged = "Component.TransformChanged"

	AnchorChanged         = "Anchor.Changed"
	AnchorNameChanged     = "Anchor.NameChanged"
	AnchorPositionChanged = "Anchor.PositionChanged"

	KerningChanged       = "Kerning.Changed"
	KerningPairSet       = "Kerning.PairSet"
	KerningPairDeleted   = "Kerning.PairDeleted"
	KerningCleared       = "Kerning.Cleared"
	KerningGroupsChanged = "Kerning.GroupsChanged"

	GroupsChanged      = "Groups.Changed"
	GroupsGroupSet     = "Groups.GroupSet"
	GroupsGroupDeleted = "Groups.GroupDeleted"

	LibChanged     = "Lib.Changed"
	LibItemSet     = "Lib.ItemSet"
	LibItemDeleted = "Lib.ItemDeleted"
)

// NameChange is the payload of name-change notifications.
type NameChange struct {
	Old string
	New string
}
