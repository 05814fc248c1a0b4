package challenge

import (
	"testing"

	"github.com/classroom-tools/classpick/pkg/store"
)

type fixedSource struct{ v int }

func (s fixedSource) IntN(n int) int { return s.v % n }

func TestPickRecordsLog(t *testing.T) {
	st := store.NewMemory()
	p := NewPicker([]string{"duck", "board", "counterexample"}, st, fixedSource{v: 2})

	picked, ok := p.Pick()
	if !ok {
		t.Fatal("expected a pick")
	}
	if picked != "counterexample" {
		t.Fatalf("expected counterexample, got %q", picked)
	}

	log := p.History()
	if len(log) != 1 || log[0] != "counterexample" {
		t.Fatalf("unexpected log: %v", log)
	}
}

func TestPickEmptyList(t *testing.T) {
	p := NewPicker(nil, store.NewMemory(), fixedSource{})
	if _, ok := p.Pick(); ok {
		t.Fatal("expected no pick from an empty list")
	}
	if len(p.History()) != 0 {
		t.Fatal("no-pick outcome must not be recorded")
	}
}

func TestClearHistory(t *testing.T) {
	st := store.NewMemory()
	p := NewPicker([]string{"duck"}, st, fixedSource{})

	p.Pick()
	p.Pick()
	if len(p.History()) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(p.History()))
	}

	p.ClearHistory()
	if len(p.History()) != 0 {
		t.Fatal("expected empty log after clear")
	}
	if st.Len() != 0 {
		t.Fatalf("expected key removed from store, %d keys left", st.Len())
	}
}
