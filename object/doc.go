// Package object provides the observable base embedded by every node of
// the font graph.
//
// Base ties the two core mechanisms together: it gives the object an
// identity on the shared notification dispatcher and a per-instance
// representation cache driven by the type's declaration table. The
// attach/detach lifecycle is explicit:
//
//	g := &Glyph{}
//	g.Init(g, "Glyph.Changed", glyphRepresentations)
//	g.SetDispatcher(font.Dispatcher())
//	g.SetParent(layer)
//	g.BeginSelfNotificationObservation()
//	// ... attached: mutations post notifications, representations cache ...
//	g.EndSelfNotificationObservation()
//
// Detachment removes every registration the object made, destroys its
// cached representations, and drops its dispatcher and parent handles.
// It is safe to call even when nothing was ever wired.
package object
