package spinner

import "testing"

// scriptedSource returns a fixed sequence of indexes, clamped into range.
type scriptedSource struct {
	seq []int
	i   int
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.i%len(s.seq)]
	s.i++
	return v % n
}

func TestDerivePool(t *testing.T) {
	tests := []struct {
		name       string
		base       []string
		additions  []string
		exclusions []string
		want       []string
	}{
		{
			name: "base only",
			base: []string{"Ari", "Leah", "Noam"},
			want: []string{"Ari", "Leah", "Noam"},
		},
		{
			name:      "additions follow base",
			base:      []string{"Ari", "Leah"},
			additions: []string{"Dana"},
			want:      []string{"Ari", "Leah", "Dana"},
		},
		{
			name:       "exclusions filtered",
			base:       []string{"Ari", "Leah", "Noam"},
			exclusions: []string{"Noam"},
			want:       []string{"Ari", "Leah"},
		},
		{
			name:       "exclusion hits additions too",
			base:       []string{"Ari"},
			additions:  []string{"Noam", "Dana"},
			exclusions: []string{"Noam"},
			want:       []string{"Ari", "Dana"},
		},
		{
			name:       "unknown exclusion is a no-op",
			base:       []string{"Ari"},
			exclusions: []string{"Ghost"},
			want:       []string{"Ari"},
		},
		{
			name: "empty everything",
			want: []string{},
		},
		{
			name:       "duplicates excluded by value",
			base:       []string{"Ari", "Noam", "Leah", "Noam"},
			exclusions: []string{"Noam"},
			want:       []string{"Ari", "Leah"},
		},
		{
			name:      "duplicates survive otherwise",
			base:      []string{"Ari", "Ari"},
			additions: []string{"Ari"},
			want:      []string{"Ari", "Ari", "Ari"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePool(tt.base, tt.additions, tt.exclusions)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d items, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("item %d: expected %q, got %q (%v)", i, tt.want[i], got[i], got)
				}
			}
		})
	}
}

func TestShufflePoolPreservesMembership(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "a"}
	counts := func(items []string) map[string]int {
		m := make(map[string]int)
		for _, s := range items {
			m[s]++
		}
		return m
	}
	before := counts(pool)

	ShufflePool(pool, &scriptedSource{seq: []int{3, 0, 2, 1}})

	if len(pool) != 5 {
		t.Fatalf("shuffle changed pool length: %d", len(pool))
	}
	after := counts(pool)
	for label, n := range before {
		if after[label] != n {
			t.Fatalf("label %q count changed: %d -> %d", label, n, after[label])
		}
	}
}

func TestShufflePoolDeterministicWithScriptedSource(t *testing.T) {
	pool := []string{"a", "b", "c"}
	// Walk i=2 then i=1: swap(2,0) then swap(1,1).
	ShufflePool(pool, &scriptedSource{seq: []int{0, 1}})
	want := []string{"c", "b", "a"}
	for i := range want {
		if pool[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, pool)
		}
	}
}

func TestShufflePoolSmallPools(t *testing.T) {
	// Must not call the source at all on empty or single-element pools.
	ShufflePool(nil, nil)
	single := []string{"only"}
	ShufflePool(single, nil)
	if single[0] != "only" {
		t.Fatalf("single-element pool changed: %v", single)
	}
}
