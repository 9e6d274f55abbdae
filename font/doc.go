// Package font implements an editable font object graph built on the
// notification dispatcher and the representation cache.
//
// A Font owns one dispatcher shared by its whole graph: layers, glyphs,
// contours, components, anchors, kerning, groups, and the lib. Every
// object posts a specific notification for each kind of mutation, and
// its own dirty bookkeeping re-posts a generic ".Changed" notification.
// Parents observe their children's generic notification and re-post
// their own specific one, so a single point edit surfaces as
// Contour.PointsChanged, Contour.Changed, Glyph.ContoursChanged,
// Glyph.Changed, Layer.Changed, and Font.Changed, in that order, and a
// listener can subscribe at any granularity.
//
// Derived values such as glyph bounds, flattened outlines, and
// group-resolved kerning tables are memoized through per-type
// representation tables and invalidated exactly when their declared
// destructive notifications fire.
package font
