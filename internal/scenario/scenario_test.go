package scenario

import "testing"

func TestByKey(t *testing.T) {
	for _, in := range []string{"moving-out", "Moving Out", "  MOVING OUT "} {
		s, ok := ByKey(in)
		if !ok {
			t.Fatalf("ByKey(%q) not found", in)
		}
		if s.Name != "Moving Out" {
			t.Fatalf("ByKey(%q) = %q, want Moving Out", in, s.Name)
		}
	}

	if _, ok := ByKey("retirement"); ok {
		t.Fatal("ByKey(retirement) unexpectedly found")
	}
}

func TestScenariosWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range All {
		if seen[s.Key] {
			t.Fatalf("duplicate key %q", s.Key)
		}
		seen[s.Key] = true

		if len(s.Milestones) == 0 || len(s.CostLabels) == 0 {
			t.Fatalf("%s: needs milestones and cost labels", s.Key)
		}
		labels := make(map[string]bool)
		for _, l := range s.CostLabels {
			if labels[l] {
				t.Fatalf("%s: duplicate cost label %q", s.Key, l)
			}
			labels[l] = true
		}
	}

	if got := len(Keys()); got != 4 {
		t.Fatalf("Keys() len = %d, want 4", got)
	}
}
