package notification

import "errors"

// Sentinel errors for the dispatcher.
var (
	// ErrEmptyName is returned when posting a notification without a name.
	ErrEmptyName = errors.New("notification name cannot be empty")

	// ErrNilObservable is returned when posting without a source object.
	ErrNilObservable = errors.New("observable cannot be nil")
)
