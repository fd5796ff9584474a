package storage

import (
	"path/filepath"
	"testing"

	"gmplayer/internal/window"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGeometryRoundTrip(t *testing.T) {
	store := openTestStorage(t)

	g := window.Geometry{X: 120, Y: 80, Width: 900, Height: 650, Maximized: true, Decorations: true}
	if err := store.SaveGeometry("main", g); err != nil {
		t.Fatalf("SaveGeometry failed: %v", err)
	}

	got, ok, err := store.LoadGeometry("main")
	if err != nil {
		t.Fatalf("LoadGeometry failed: %v", err)
	}
	if !ok {
		t.Fatal("expected saved geometry")
	}
	if got != g {
		t.Errorf("got %+v, want %+v", got, g)
	}
}

func TestGeometryUpsertOverwrites(t *testing.T) {
	store := openTestStorage(t)

	if err := store.SaveGeometry("mini-player", window.Geometry{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveGeometry("mini-player", window.Geometry{X: 5, Y: 9, Width: 350, Height: 80}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.LoadGeometry("mini-player")
	if err != nil || !ok {
		t.Fatalf("LoadGeometry: %v, ok=%v", err, ok)
	}
	if got.X != 5 || got.Y != 9 || got.Width != 350 {
		t.Errorf("upsert did not overwrite: %+v", got)
	}
}

func TestLoadGeometryMissing(t *testing.T) {
	store := openTestStorage(t)

	_, ok, err := store.LoadGeometry("never-saved")
	if err != nil {
		t.Fatalf("missing geometry must not error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing label")
	}
}

func TestClearGeometry(t *testing.T) {
	store := openTestStorage(t)
	if err := store.SaveGeometry("main", window.Geometry{X: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearGeometry(); err != nil {
		t.Fatalf("ClearGeometry failed: %v", err)
	}
	if _, ok, _ := store.LoadGeometry("main"); ok {
		t.Error("geometry should be gone after clear")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStorage(t)

	if v, err := store.GetString("missing"); err != nil || v != "" {
		t.Fatalf("missing key: v=%q err=%v", v, err)
	}

	if err := store.SetString("close_behavior", "tray"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetString("close_behavior", "quit"); err != nil {
		t.Fatal(err)
	}

	v, err := store.GetString("close_behavior")
	if err != nil {
		t.Fatal(err)
	}
	if v != "quit" {
		t.Errorf("got %q, want quit", v)
	}
}
