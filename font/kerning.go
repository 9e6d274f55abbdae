package font

import (
	"sort"
	"strings"

	"github.com/dshills/fontstorm/notification"
	"github.com/dshills/fontstorm/object"
)

// Pair is a kerning pair. Either side may be a glyph name or a kerning
// group name.
type Pair struct {
	First  string
	Second string
}

// Kerning maps pairs of glyph or group names to adjustment values.
// Group-aware lookup resolves glyph names through the font's groups; the
// resolved pair table is memoized and invalidated when either the pairs
// or the groups change.
type Kerning struct {
	object.Base
	pairs  map[Pair]float64
	groups *Groups
}

// NewKerning creates a detached, empty kerning table.
func NewKerning() *Kerning {
	k := &Kerning{pairs: make(map[Pair]float64)}
	k.Init(k, KerningChanged, kerningRepresentations)
	return k
}

// attach wires the kerning table to the dispatcher and to the font's
// groups, so group edits invalidate group-resolved lookups.
func (k *Kerning) attach(d *notification.Dispatcher, parent notification.Observable, groups *Groups) {
	k.SetDispatcher(d)
	k.SetParent(parent)
	k.BeginSelfNotificationObservation()
	k.groups = groups
	if groups != nil {
		k.Observe(groups, GroupsChanged, k.groupsChanged)
	}
}

func (k *Kerning) detach() {
	k.groups = nil
	k.EndSelfNotificationObservation()
}

// groupsChanged republishes group edits under the kerning table's own
// name, so destructive declarations can stay owner-scoped.
func (k *Kerning) groupsChanged(*notification.Notification) error {
	return k.PostNotification(KerningGroupsChanged, nil)
}

// Len returns the number of pairs.
func (k *Kerning) Len() int { return len(k.pairs) }

// Has reports whether the exact pair exists.
func (k *Kerning) Has(p Pair) bool {
	_, ok := k.pairs[p]
	return ok
}

// Get returns the value for the exact pair and whether it exists. No
// group resolution is performed.
func (k *Kerning) Get(p Pair) (float64, bool) {
	v, ok := k.pairs[p]
	return v, ok
}

// Set stores a pair value, replacing any previous value.
func (k *Kerning) Set(p Pair, value float64) error {
	k.pairs[p] = value
	return k.PostNotification(KerningPairSet, p)
}

// Delete removes a pair; no-op if absent.
func (k *Kerning) Delete(p Pair) error {
	if _, ok := k.pairs[p]; !ok {
		return nil
	}
	delete(k.pairs, p)
	return k.PostNotification(KerningPairDeleted, p)
}

// Clear removes every pair.
func (k *Kerning) Clear() error {
	if len(k.pairs) == 0 {
		return nil
	}
	k.pairs = make(map[Pair]float64)
	return k.PostNotification(KerningCleared, nil)
}

// Pairs returns every pair sorted by first then second member.
func (k *Kerning) Pairs() []Pair {
	pairs := make([]Pair, 0, len(k.pairs))
	for p := range k.pairs {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].First != pairs[j].First {
			return pairs[i].First < pairs[j].First
		}
		return pairs[i].Second < pairs[j].Second
	})
	return pairs
}

// Lookup resolves the kerning value for two glyphs, consulting kerning
// groups. Candidate pairs are checked from most to least specific:
// glyph+glyph, glyph+group, group+glyph, group+group; the first match
// wins. The zero value is returned when nothing matches.
func (k *Kerning) Lookup(first, second string) (float64, bool) {
	grouped := k.groupedPairs()

	firstGroups := k.sideGroups(first, "public.kern1.")
	secondGroups := k.sideGroups(second, "public.kern2.")

	if v, ok := grouped[Pair{First: first, Second: second}]; ok {
		return v, true
	}
	for _, sg := range secondGroups {
		if v, ok := grouped[Pair{First: first, Second: sg}]; ok {
			return v, true
		}
	}
	for _, fg := range firstGroups {
		if v, ok := grouped[Pair{First: fg, Second: second}]; ok {
			return v, true
		}
	}
	for _, fg := range firstGroups {
		for _, sg := range secondGroups {
			if v, ok := grouped[Pair{First: fg, Second: sg}]; ok {
				return v, true
			}
		}
	}
	return 0, false
}

// groupedPairs returns the memoized pair table used by Lookup.
func (k *Kerning) groupedPairs() map[Pair]float64 {
	v, err := k.GetRepresentation(KerningGroupedPairsRepresentation, nil)
	if err != nil || v == nil {
		return k.pairs
	}
	return v.(map[Pair]float64)
}

// sideGroups returns the kerning groups containing the glyph on one
// side, filtered by the side's conventional prefix.
func (k *Kerning) sideGroups(glyph, prefix string) []string {
	if k.groups == nil {
		return nil
	}
	var out []string
	for _, name := range k.groups.GroupsForGlyph(glyph) {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// copyPairs snapshots the pair table for memoization.
func (k *Kerning) copyPairs() map[Pair]float64 {
	out := make(map[Pair]float64, len(k.pairs))
	for p, v := range k.pairs {
		out[p] = v
	}
	return out
}
