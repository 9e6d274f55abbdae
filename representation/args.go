package representation

import (
	"fmt"
	"sort"
	"strings"
)

// Args is the argument set for one representation computation. Cache
// entries are addressed by the canonical sorted rendering of the set, so
// two Args with the same key/value pairs hit the same entry regardless of
// construction order. A nil Args is the empty set.
type Args map[string]any

// Key returns the canonical cache key for the argument set.
func (a Args) Key() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, a[k])
	}
	return b.String()
}

// Clone returns a copy of the argument set.
func (a Args) Clone() Args {
	if a == nil {
		return nil
	}
	c := make(Args, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}
