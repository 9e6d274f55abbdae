package font

import (
	"github.com/dshills/fontstorm/representation"
)

// Representation names registered for the graph's types. Each name is
// declared once in a per-type table; every instance shares the table
// but memoizes its own values.
const (
	GlyphBoundsRepresentation           = "glyph.bounds"
	GlyphFlattenedOutlineRepresentation = "glyph.flattenedOutline"
	ContourBoundsRepresentation         = "contour.bounds"
	KerningGroupedPairsRepresentation   = "kerning.groupedPairs"
	GroupsGlyphIndexRepresentation      = "groups.glyphIndex"
	LayerGlyphNamesRepresentation       = "layer.glyphNames"
)

var (
	glyphRepresentations   = representation.NewTable()
	contourRepresentations = representation.NewTable()
	kerningRepresentations = representation.NewTable()
	groupsRepresentations  = representation.NewTable()
	layerRepresentations   = representation.NewTable()
)

func init() {
	glyphRepresentations.Register(GlyphBoundsRepresentation,
		func(owner any, _ representation.Args) any {
			g := owner.(*Glyph)
			var points []Point
			for _, c := range g.contours {
				points = append(points, c.points...)
			}
			r, ok := pointsBounds(points)
			if !ok {
				return nil
			}
			return r
		},
		GlyphContoursChanged)

	glyphRepresentations.Register(GlyphFlattenedOutlineRepresentation,
		func(owner any, args representation.Args) any {
			g := owner.(*Glyph)
			components, _ := args["components"].(bool)
			return g.flatten(components, make(map[string]struct{}))
		},
		GlyphContoursChanged, GlyphComponentsChanged)

	contourRepresentations.Register(ContourBoundsRepresentation,
		func(owner any, _ representation.Args) any {
			c := owner.(*Contour)
			r, ok := pointsBounds(c.points)
			if !ok {
				return nil
			}
			return r
		},
		ContourPointsChanged)

	kerningRepresentations.Register(KerningGroupedPairsRepresentation,
		func(owner any, _ representation.Args) any {
			return owner.(*Kerning).copyPairs()
		},
		KerningPairSet, KerningPairDeleted, KerningCleared, KerningGroupsChanged)

	groupsRepresentations.Register(GroupsGlyphIndexRepresentation,
		func(owner any, _ representation.Args) any {
			return owner.(*Groups).glyphIndex()
		},
		GroupsGroupSet, GroupsGroupDeleted)

	layerRepresentations.Register(LayerGlyphNamesRepresentation,
		func(owner any, _ representation.Args) any {
			return owner.(*Layer).glyphNames()
		},
		LayerGlyphAdded, LayerGlyphDeleted, LayerGlyphNameChanged)
}
