package registry

import "testing"

func TestBuildProducesUniqueRoutableNames(t *testing.T) {
	reg, err := Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	all := reg.AllToolMetadata()
	if len(all) == 0 {
		t.Fatal("expected a non-empty tool catalog")
	}

	seen := make(map[string]bool, len(all))
	for _, m := range all {
		if seen[m.Name] {
			t.Fatalf("duplicate tool name in catalog: %q", m.Name)
		}
		seen[m.Name] = true

		if !KnownCategory(m.Category) {
			t.Fatalf("tool %q references unknown category %q", m.Name, m.Category)
		}
		if m.Description == "" {
			t.Fatalf("tool %q has no description", m.Name)
		}
		if m.Schema == nil {
			t.Fatalf("tool %q has a nil schema", m.Name)
		}

		route, ok := reg.Lookup(m.Name)
		if !ok {
			t.Fatalf("Lookup(%q) missing from routing table", m.Name)
		}
		if route.Category != m.Category {
			t.Fatalf("route category mismatch for %q: got %q, want %q", m.Name, route.Category, m.Category)
		}
		wantPort, _ := PortFor(m.Category)
		if route.Port != wantPort {
			t.Fatalf("route port mismatch for %q: got %d, want %d", m.Name, route.Port, wantPort)
		}
	}
}

func TestAllToolMetadataIsSortedByCategoryThenName(t *testing.T) {
	reg, err := Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	all := reg.AllToolMetadata()
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.Category > cur.Category {
			t.Fatalf("category order violated at index %d: %q then %q", i, prev.Category, cur.Category)
		}
		if prev.Category == cur.Category && prev.Name >= cur.Name {
			t.Fatalf("name order violated at index %d within category %q: %q then %q", i, cur.Category, prev.Name, cur.Name)
		}
	}
}

func TestRoutingTableCoversEveryKnownCategory(t *testing.T) {
	reg, err := Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	covered := make(map[string]bool)
	for _, route := range reg.RoutingTable() {
		covered[route.Category] = true
	}
	for _, category := range Categories() {
		if !covered[category] {
			t.Errorf("category %q has no tools in the catalog", category)
		}
	}
}

func TestLookupUnknownToolFails(t *testing.T) {
	reg, err := Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if _, ok := reg.Lookup("does_not_exist"); ok {
		t.Fatal("expected Lookup of an unknown tool name to fail")
	}
}

func TestPortForUnknownCategoryFails(t *testing.T) {
	if _, ok := PortFor("not_a_category"); ok {
		t.Fatal("expected PortFor of an unknown category to fail")
	}
}

func TestCategoryPortsHaveNoDuplicatePorts(t *testing.T) {
	seen := make(map[uint16]string)
	for _, cp := range CategoryPorts {
		if owner, dup := seen[cp.Port]; dup {
			t.Fatalf("port %d assigned to both %q and %q", cp.Port, owner, cp.Category)
		}
		seen[cp.Port] = cp.Category
	}
}
