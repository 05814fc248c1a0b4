package store

import (
	"path/filepath"
	"testing"
)

// both implementations must behave identically for the engine.
func openStores(t *testing.T) map[string]Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "classpick.sqlite"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return map[string]Store{
		"sqlite": db,
		"memory": NewMemory(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			in := map[string][]string{"Students": {"Ari", "Leah"}}
			if err := st.Set("spinner.additions", in); err != nil {
				t.Fatalf("set: %v", err)
			}

			var out map[string][]string
			found, err := st.Get("spinner.additions", &out)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !found {
				t.Fatal("expected key to be found")
			}
			if len(out["Students"]) != 2 || out["Students"][0] != "Ari" {
				t.Fatalf("unexpected value: %v", out)
			}
		})
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			var out string
			found, err := st.Get("spinner.activeCategory", &out)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if found {
				t.Fatal("missing key reported as found")
			}
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Set("spinner.activeCategory", "Students"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := st.Set("spinner.activeCategory", "Topics"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			var out string
			if _, err := st.Get("spinner.activeCategory", &out); err != nil {
				t.Fatalf("get: %v", err)
			}
			if out != "Topics" {
				t.Fatalf("expected Topics, got %q", out)
			}
		})
	}
}

func TestStoreRemove(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Set("spinner.settings.showHistory", true); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := st.Remove("spinner.settings.showHistory"); err != nil {
				t.Fatalf("remove: %v", err)
			}
			var out bool
			found, err := st.Get("spinner.settings.showHistory", &out)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if found {
				t.Fatal("removed key still found")
			}
			// Removing an absent key is not an error.
			if err := st.Remove("spinner.settings.showHistory"); err != nil {
				t.Fatalf("remove absent key: %v", err)
			}
		})
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classpick.sqlite")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Set("spinner.activeCategory", "Students"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	var out string
	found, err := reopened.Get("spinner.activeCategory", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || out != "Students" {
		t.Fatalf("expected persisted value, got found=%v out=%q", found, out)
	}
}
