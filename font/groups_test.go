package font

import "testing"

func newTestGroups(t *testing.T) *Groups {
	t.Helper()
	f := NewFont()
	t.Cleanup(f.Close)
	return f.Groups()
}

func TestGroups_Operations(t *testing.T) {
	g := newTestGroups(t)

	if err := g.Set("public.kern1.round", []string{"O", "Q", "C"}); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	members, ok := g.Get("public.kern1.round")
	if !ok || len(members) != 3 || members[0] != "O" {
		t.Fatalf("Get() = %v, %v", members, ok)
	}
	if !g.Has("public.kern1.round") || g.Len() != 1 {
		t.Errorf("Has() = %v, Len() = %d", g.Has("public.kern1.round"), g.Len())
	}

	// The returned slice is a copy.
	members[0] = "mutated"
	if got, _ := g.Get("public.kern1.round"); got[0] != "O" {
		t.Error("expected Get to return a copy")
	}

	if err := g.Delete("public.kern1.round"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if g.Has("public.kern1.round") {
		t.Error("expected group deleted")
	}
	if err := g.Delete("absent"); err != nil {
		t.Errorf("deleting absent group: %v", err)
	}
}

func TestGroups_NamesSorted(t *testing.T) {
	g := newTestGroups(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := g.Set(name, nil); err != nil {
			t.Fatal(err)
		}
	}
	names := g.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestGroups_GroupsForGlyph(t *testing.T) {
	g := newTestGroups(t)

	if err := g.Set("public.kern1.round", []string{"O", "Q"}); err != nil {
		t.Fatal(err)
	}
	if err := g.Set("public.kern2.round", []string{"O"}); err != nil {
		t.Fatal(err)
	}

	groups := g.GroupsForGlyph("O")
	if len(groups) != 2 || groups[0] != "public.kern1.round" || groups[1] != "public.kern2.round" {
		t.Fatalf("GroupsForGlyph(O) = %v", groups)
	}
	if !g.HasCachedRepresentation(GroupsGlyphIndexRepresentation, nil) {
		t.Fatal("expected glyph index cached")
	}

	// Membership edits invalidate the index.
	if err := g.Set("public.kern1.round", []string{"Q"}); err != nil {
		t.Fatal(err)
	}
	if g.HasCachedRepresentation(GroupsGlyphIndexRepresentation, nil) {
		t.Fatal("expected glyph index invalidated")
	}
	groups = g.GroupsForGlyph("O")
	if len(groups) != 1 || groups[0] != "public.kern2.round" {
		t.Errorf("GroupsForGlyph(O) after edit = %v", groups)
	}
	if got := g.GroupsForGlyph("absent"); len(got) != 0 {
		t.Errorf("GroupsForGlyph(absent) = %v", got)
	}
}
