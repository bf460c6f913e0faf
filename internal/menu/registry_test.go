package menu

import "testing"

func TestRegistryRootAndFind(t *testing.T) {
	r := NewRegistry()
	if r.Root() != nil {
		t.Fatalf("expected nil root for empty registry")
	}
	main := r.CreatePage("Main Menu")
	display := r.CreatePage("Display")
	if r.Root() != main {
		t.Fatalf("expected first page to be root")
	}
	if p, ok := r.Find(" display "); !ok || p != display {
		t.Fatalf("expected case-insensitive lookup of Display")
	}
	if _, ok := r.Find("missing"); ok {
		t.Fatalf("expected missing page lookup to fail")
	}
	if len(r.Pages()) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(r.Pages()))
	}
}

func TestRegistrySearchRanksFuzzyMatches(t *testing.T) {
	r := NewRegistry()
	r.CreatePage("Main Menu")
	damping := r.CreatePage("Damping")
	r.CreatePage("Display")
	matches := r.Search("dmp")
	if len(matches) != 1 || matches[0] != damping {
		t.Fatalf("expected Damping to be the only match, got %d matches", len(matches))
	}
	if r.Search("   ") != nil {
		t.Fatalf("expected blank query to return nil")
	}
	if p, ok := r.Resolve("dsp"); !ok || p.Title != "Display" {
		t.Fatalf("expected fuzzy resolve to Display")
	}
	if _, ok := r.Resolve("zzz"); ok {
		t.Fatalf("expected unresolvable name to fail")
	}
}

func TestLayoutChangeNotifiesWatchers(t *testing.T) {
	r := NewRegistry()
	p := r.CreatePage("Main")
	var changes []LayoutChange
	r.Watch(func(c LayoutChange) { changes = append(changes, c) })
	r.Watch(nil)

	p.SetLayout(LayoutList)
	if len(changes) != 0 {
		t.Fatalf("expected no notification for unchanged layout")
	}
	p.SetLayout(LayoutCarousel)
	if len(changes) != 1 {
		t.Fatalf("expected one notification, got %d", len(changes))
	}
	got := changes[0]
	if got.Page != p || got.From != LayoutList || got.To != LayoutCarousel {
		t.Fatalf("unexpected change %+v", got)
	}

	detached := NewPage("Loose")
	detached.SetLayout(LayoutCarousel)
	if detached.Layout != LayoutCarousel || len(changes) != 1 {
		t.Fatalf("expected detached page to switch silently")
	}
}
