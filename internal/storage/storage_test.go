package storage

import (
	"path/filepath"
	"testing"
)

// openTestStores returns one of each Store implementation so the contract
// tests run against both.
func openTestStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() {
		if err := sqlite.Close(); err != nil {
			t.Errorf("Failed to close sqlite store: %v", err)
		}
	})

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemStore(),
	}
}

func TestGetMissingKey(t *testing.T) {
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := store.Get("absent")
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if ok {
				t.Error("Expected ok=false for an absent key")
			}
			if value != nil {
				t.Errorf("Expected nil value for an absent key, got %q", value)
			}
		})
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("blob", []byte(`{"tasks":[]}`)); err != nil {
				t.Fatalf("Set returned error: %v", err)
			}

			value, ok, err := store.Get("blob")
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if !ok {
				t.Fatal("Expected key to be present after Set")
			}
			if string(value) != `{"tasks":[]}` {
				t.Errorf("Expected stored blob back, got %q", value)
			}
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("blob", []byte("first")); err != nil {
				t.Fatalf("Set returned error: %v", err)
			}
			if err := store.Set("blob", []byte("second")); err != nil {
				t.Fatalf("Second Set returned error: %v", err)
			}

			value, _, err := store.Get("blob")
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if string(value) != "second" {
				t.Errorf("Expected overwritten value, got %q", value)
			}
		})
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("blob", []byte("value")); err != nil {
				t.Fatalf("Set returned error: %v", err)
			}
			if err := store.Delete("blob"); err != nil {
				t.Fatalf("Delete returned error: %v", err)
			}

			_, ok, err := store.Get("blob")
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if ok {
				t.Error("Expected key to be absent after Delete")
			}
		})
	}
}

func TestDeleteAbsentKeyIsNotAnError(t *testing.T) {
	for name, store := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Delete("never-set"); err != nil {
				t.Errorf("Delete of absent key returned error: %v", err)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.Set("blob", []byte("survives")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("blob")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok || string(value) != "survives" {
		t.Errorf("Expected value to survive reopen, got ok=%v value=%q", ok, value)
	}
}

func TestMemStoreCopiesValues(t *testing.T) {
	store := NewMemStore()

	original := []byte("value")
	if err := store.Set("blob", original); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	original[0] = 'X'

	value, _, err := store.Get("blob")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(value) != "value" {
		t.Errorf("Stored blob was mutated through the caller's slice: %q", value)
	}
}
