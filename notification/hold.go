package notification

import "fmt"

// suppressKey identifies one hold or disable record. Zero fields are
// wildcards.
type suppressKey struct {
	name       string
	observable Ref
	observer   Ref
}

// heldNotification is one deferred post, replayed in FIFO order when the
// hold count returns to zero.
type heldNotification struct {
	name       string
	observable Ref
	data       any
}

// holdRecord tracks one reentrant hold and its deferred notifications.
type holdRecord struct {
	count int
	queue []heldNotification
	notes []string
}

// HeldNotification is the introspection view of one queued notification.
type HeldNotification struct {
	Name       string
	Observable Ref
	Data       any
}

// HoldNotifications defers delivery of matching notifications until a
// balancing ReleaseHeldNotifications. Holds are reentrant: n calls
// require n releases before the queue replays. A nil observable, empty
// name, or nil observer widens the match at that position. The note is
// informational only and retrievable with HeldNotificationNotes.
//
// A matching notification is queued under exactly one hold record: the
// first one found in the fixed generality scan. Simultaneous holds at
// other specificities never receive a copy.
func (d *Dispatcher) HoldNotifications(observable Observable, name string, observer Observable, note string) {
	k := suppressKey{name: name, observable: refOf(observable), observer: refOf(observer)}
	rec := d.holds[k]
	if rec == nil {
		rec = &holdRecord{}
		d.holds[k] = rec
	}
	rec.count++
	if note != "" {
		rec.notes = append(rec.notes, note)
	}
}

// ReleaseHeldNotifications decrements the hold count for the exact
// (observable, name, observer) key. When the count reaches zero the
// record is removed and its queue replays through the normal post path in
// original arrival order. Releasing a hold that was never acquired is a
// contract violation and panics. A callback error during replay aborts
// the remaining queue and is returned.
func (d *Dispatcher) ReleaseHeldNotifications(observable Observable, name string, observer Observable) error {
	k := suppressKey{name: name, observable: refOf(observable), observer: refOf(observer)}
	rec, ok := d.holds[k]
	if !ok {
		panic(fmt.Sprintf(
			"notification: release of hold that was never acquired: notification=%q observable=%s observer=%s",
			name, describeRef(k.observable), describeRef(k.observer),
		))
	}
	rec.count--
	if rec.count > 0 {
		return nil
	}
	delete(d.holds, k)
	for _, h := range rec.queue {
		if err := d.post(h.name, h.observable, h.data); err != nil {
			return err
		}
	}
	return nil
}

// DisableNotifications drops matching notifications outright, without
// queuing, until a balancing EnableNotifications. Disables are reentrant.
func (d *Dispatcher) DisableNotifications(observable Observable, name string, observer Observable) {
	k := suppressKey{name: name, observable: refOf(observable), observer: refOf(observer)}
	d.disables[k]++
}

// EnableNotifications decrements the disable count for the exact key.
// Enabling notifications that were never disabled is a contract violation
// and panics.
func (d *Dispatcher) EnableNotifications(observable Observable, name string, observer Observable) {
	k := suppressKey{name: name, observable: refOf(observable), observer: refOf(observer)}
	count, ok := d.disables[k]
	if !ok {
		panic(fmt.Sprintf(
			"notification: enable of notifications that were never disabled: notification=%q observable=%s observer=%s",
			name, describeRef(k.observable), describeRef(k.observer),
		))
	}
	if count == 1 {
		delete(d.disables, k)
		return
	}
	d.disables[k] = count - 1
}

// AreNotificationsHeld reports whether a hold exists for the exact key.
func (d *Dispatcher) AreNotificationsHeld(observable Observable, name string, observer Observable) bool {
	_, ok := d.holds[suppressKey{name: name, observable: refOf(observable), observer: refOf(observer)}]
	return ok
}

// AreNotificationsDisabled reports whether a disable exists for the exact
// key.
func (d *Dispatcher) AreNotificationsDisabled(observable Observable, name string, observer Observable) bool {
	return d.disables[suppressKey{name: name, observable: refOf(observable), observer: refOf(observer)}] > 0
}

// HeldNotifications returns a copy of the queue for the exact key, in
// arrival order. It returns nil when no hold exists.
func (d *Dispatcher) HeldNotifications(observable Observable, name string, observer Observable) []HeldNotification {
	rec, ok := d.holds[suppressKey{name: name, observable: refOf(observable), observer: refOf(observer)}]
	if !ok || len(rec.queue) == 0 {
		return nil
	}
	result := make([]HeldNotification, len(rec.queue))
	for i, h := range rec.queue {
		result[i] = HeldNotification{Name: h.name, Observable: h.observable, Data: h.data}
	}
	return result
}

// HeldNotificationNotes returns the notes recorded for the exact key.
func (d *Dispatcher) HeldNotificationNotes(observable Observable, name string, observer Observable) []string {
	rec, ok := d.holds[suppressKey{name: name, observable: refOf(observable), observer: refOf(observer)}]
	if !ok || len(rec.notes) == 0 {
		return nil
	}
	result := make([]string, len(rec.notes))
	copy(result, rec.notes)
	return result
}
