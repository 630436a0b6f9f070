package worlds

import "testing"

func TestAll(t *testing.T) {
	defs, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("All() returned %d worlds, want 2", len(defs))
	}

	want := map[string]string{
		"swapforce": "Skylanders Swap Force",
		"giants":    "Skylanders Giants",
	}
	for _, d := range defs {
		game, ok := want[d.Key]
		if !ok {
			t.Errorf("unexpected world %q", d.Key)
			continue
		}
		if d.Game() != game {
			t.Errorf("%s Game() = %q, want %q", d.Key, d.Game(), game)
		}
		if !d.Matches(game) || !d.Matches(d.Key) {
			t.Errorf("%s does not match its own names", d.Key)
		}
	}
}
