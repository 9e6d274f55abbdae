package font

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
)

// Lib is the font's arbitrary key/value storage, held as a JSON
// document. Paths follow gjson syntax, so nested values are addressed
// as "com.example.tool.option".
type Lib struct {
	object.Base
	raw string
}

// NewLib creates a detached, empty lib.
func NewLib() *Lib {
	l := &Lib{raw: "{}"}
	l.Init(l, LibChanged, nil)
	return l
}

func (l *Lib) attach(d *notification.Dispatcher, parent notification.Observable) {
	l.SetDispatcher(d)
	l.SetParent(parent)
	l.BeginSelfNotificationObservation()
}

func (l *Lib) detach() {
	l.EndSelfNotificationObservation()
}

// Raw returns the lib's JSON document.
func (l *Lib) Raw() string { return l.raw }

// SetRaw replaces the whole document. The document must be valid JSON.
func (l *Lib) SetRaw(doc string) error {
	if !gjson.Valid(doc) {
		return fmt.Errorf("%w: replacement document", ErrInvalidLibValue)
	}
	if doc == l.raw {
		return nil
	}
	l.raw = doc
	return l.PostNotification(LibItemSet, nil)
}

// Get returns the value at path. The result's Exists method reports
// whether the path is present.
func (l *Lib) Get(path string) gjson.Result {
	return gjson.Get(l.raw, path)
}

// Has reports whether path is present.
func (l *Lib) Has(path string) bool {
	return gjson.Get(l.raw, path).Exists()
}

// Set stores value at path, creating intermediate objects as needed.
func (l *Lib) Set(path string, value any) error {
	raw, err := sjson.Set(l.raw, path, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidLibValue, path, err)
	}
	if raw == l.raw {
		return nil
	}
	l.raw = raw
	return l.PostNotification(LibItemSet, path)
}

// Delete removes the value at path; no-op if absent.
func (l *Lib) Delete(path string) error {
	if !gjson.Get(l.raw, path).Exists() {
		return nil
	}
	raw, err := sjson.Delete(l.raw, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidLibValue, path, err)
	}
	l.raw = raw
	return l.PostNotification(LibItemDeleted, path)
}

// Keys returns the top-level keys of the document.
func (l *Lib) Keys() []string {
	var keys []string
	gjson.Parse(l.raw).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}
