package notification

// Notification is an immutable event record describing a state change. It
// is built by the dispatcher for a single fan-out and never retained
// after delivery completes.
type Notification struct {
	name   string
	source Ref
	data   any
}

// Name returns the notification name, for example "Glyph.Changed".
func (n *Notification) Name() string { return n.name }

// Source returns a weak reference to the posting observable.
func (n *Notification) Source() Ref { return n.source }

// Object resolves the posting observable, or nil if it has been
// collected.
func (n *Notification) Object() any { return n.source.Value() }

// Data returns the optional payload supplied to PostNotification.
func (n *Notification) Data() any { return n.data }
