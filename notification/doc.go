// Package notification provides the change-notification bus that
// underlies an editable font object graph.
//
// Every mutation to a font, layer, glyph, contour, component, anchor,
// kerning table, or group set is announced through one shared Dispatcher.
// Listeners register callbacks against a (notification name, observable)
// key where either position may be a wildcard, and the dispatcher fans
// posted notifications out synchronously on the caller's stack.
//
// # Registration
//
// Objects gain an identity in the dispatcher by embedding a bound Ident:
//
//	type Glyph struct {
//	    notification.Ident
//	    // ...
//	}
//
//	g := &Glyph{}
//	g.Bind(g)
//
// Observers register typed callbacks rather than method names:
//
//	d.AddObserver(listener, func(n *notification.Notification) error {
//	    // react to n.Name(), n.Object(), n.Data()
//	    return nil
//	}, "Glyph.Changed", g)
//
// A second registration for the same (observer, name, observable) triple
// is a programming error and panics immediately.
//
// # Delivery order
//
// PostNotification enumerates the registry buckets from least to most
// specific — (any, any), (any, observable), (name, any),
// (name, observable) — and within each bucket delivers in insertion
// order. Listeners may rely on this relative firing order.
//
// # Holding and disabling
//
// Delivery can be deferred or suppressed per (observable, name, observer)
// key, where any position may be the wildcard:
//
//	d.HoldNotifications(g, "", nil, "batch edit")
//	// ... many mutations, nothing delivered ...
//	d.ReleaseHeldNotifications(g, "", nil) // queued posts replay in order
//
//	d.DisableNotifications(nil, "Glyph.Changed", nil)
//	// ... matching posts are dropped outright ...
//	d.EnableNotifications(nil, "Glyph.Changed", nil)
//
// Both mechanisms are reentrant counters: n holds require n releases.
// During a post the dispatcher scans the suppression keys from least to
// most specific and disables are checked before holds, so a wildcard
// disable beats a more specific hold.
//
// # Weak references
//
// The dispatcher holds only weak references to observers and observables.
// A registration whose observer has been collected is skipped silently
// during delivery; it is never an error and cleanup is not required.
//
// # Concurrency
//
// Everything in this package except Logger assumes single-threaded use.
// Dispatch is strictly synchronous: a callback that posts again nests a
// complete inner dispatch before the outer fan-out resumes.
package notification
