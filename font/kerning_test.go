package font

import "testing"

func newTestKerning(t *testing.T) (*Kerning, *Groups) {
	t.Helper()
	f := NewFont()
	t.Cleanup(f.Close)
	return f.Kerning(), f.Groups()
}

func TestKerning_PairOperations(t *testing.T) {
	k, _ := newTestKerning(t)

	p := Pair{First: "A", Second: "V"}
	if err := k.Set(p, -40); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if v, ok := k.Get(p); !ok || v != -40 {
		t.Errorf("Get() = %v, %v, want -40", v, ok)
	}
	if !k.Has(p) || k.Len() != 1 {
		t.Errorf("Has() = %v, Len() = %d", k.Has(p), k.Len())
	}

	if err := k.Delete(p); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if k.Has(p) {
		t.Error("expected pair deleted")
	}
	if err := k.Delete(p); err != nil {
		t.Errorf("deleting absent pair: %v", err)
	}

	if err := k.Set(Pair{First: "T", Second: "o"}, -70); err != nil {
		t.Fatal(err)
	}
	if err := k.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if k.Len() != 0 {
		t.Errorf("Len() after Clear = %d", k.Len())
	}
}

func TestKerning_PairsSorted(t *testing.T) {
	k, _ := newTestKerning(t)
	for _, p := range []Pair{
		{First: "T", Second: "o"},
		{First: "A", Second: "V"},
		{First: "A", Second: "T"},
	} {
		if err := k.Set(p, -10); err != nil {
			t.Fatal(err)
		}
	}
	pairs := k.Pairs()
	want := []Pair{
		{First: "A", Second: "T"},
		{First: "A", Second: "V"},
		{First: "T", Second: "o"},
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("Pairs() = %v, want %v", pairs, want)
		}
	}
}

func TestKerning_LookupResolution(t *testing.T) {
	k, g := newTestKerning(t)

	if err := g.Set("public.kern1.A", []string{"A", "Agrave"}); err != nil {
		t.Fatal(err)
	}
	if err := g.Set("public.kern2.V", []string{"V", "W"}); err != nil {
		t.Fatal(err)
	}

	if err := k.Set(Pair{First: "A", Second: "V"}, -80); err != nil {
		t.Fatal(err)
	}
	if err := k.Set(Pair{First: "A", Second: "public.kern2.V"}, -70); err != nil {
		t.Fatal(err)
	}
	if err := k.Set(Pair{First: "public.kern1.A", Second: "V"}, -60); err != nil {
		t.Fatal(err)
	}
	if err := k.Set(Pair{First: "public.kern1.A", Second: "public.kern2.V"}, -50); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		first, second string
		want          float64
		found         bool
	}{
		{"glyph pair wins", "A", "V", -80, true},
		{"glyph and group", "A", "W", -70, true},
		{"group and glyph", "Agrave", "V", -60, true},
		{"group and group", "Agrave", "W", -50, true},
		{"no match", "X", "Y", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := k.Lookup(tt.first, tt.second)
			if ok != tt.found || got != tt.want {
				t.Errorf("Lookup(%q, %q) = %v, %v, want %v, %v",
					tt.first, tt.second, got, ok, tt.want, tt.found)
			}
		})
	}
}

// Group edits must invalidate the memoized lookup table.
func TestKerning_GroupEditInvalidatesLookup(t *testing.T) {
	k, g := newTestKerning(t)

	if err := g.Set("public.kern1.round", []string{"O"}); err != nil {
		t.Fatal(err)
	}
	if err := k.Set(Pair{First: "public.kern1.round", Second: "A"}, -15); err != nil {
		t.Fatal(err)
	}

	if v, ok := k.Lookup("O", "A"); !ok || v != -15 {
		t.Fatalf("Lookup(O, A) = %v, %v, want -15", v, ok)
	}
	if v, ok := k.Lookup("Q", "A"); ok {
		t.Fatalf("Lookup(Q, A) = %v before group edit, want no match", v)
	}

	if err := g.Set("public.kern1.round", []string{"O", "Q"}); err != nil {
		t.Fatal(err)
	}
	if v, ok := k.Lookup("Q", "A"); !ok || v != -15 {
		t.Errorf("Lookup(Q, A) after group edit = %v, %v, want -15", v, ok)
	}
}
