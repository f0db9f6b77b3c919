package registry_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/openfactual/factbench/internal/registry"
)

func entry(runID, model string, date time.Time, acc float64) registry.Entry {
	return registry.Entry{
		RunID:    runID,
		ModelID:  model,
		Hardware: "test",
		Accuracy: &acc,
		Date:     date,
	}
}

func TestRegisterAndList(t *testing.T) {
	reg, err := registry.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	later := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// Registered out of date order on purpose.
	if err := reg.Register(entry("run_b", "model-b", later, 0.8)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(entry("run_a", "model-a", earlier, 0.6)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	entries, err := reg.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].RunID != "run_a" || entries[1].RunID != "run_b" {
		t.Errorf("entries not in ascending date order: %s, %s", entries[0].RunID, entries[1].RunID)
	}
}

func TestRegisterReplacesExistingRunID(t *testing.T) {
	reg, err := registry.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	date := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	if err := reg.Register(entry("run_a", "model-a", date, 0.5)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(entry("run_a", "model-a", date, 0.7)); err != nil {
		t.Fatalf("re-Register: %v", err)
	}

	entries, err := reg.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("re-registering duplicated the entry: %d rows", len(entries))
	}
	if *entries[0].Accuracy != 0.7 {
		t.Errorf("entry not replaced: accuracy = %f, want 0.7", *entries[0].Accuracy)
	}
}

func TestRegisterRequiresRunID(t *testing.T) {
	reg, err := registry.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := reg.Register(registry.Entry{}); err == nil {
		t.Error("expected error for empty run_id")
	}
}

func TestListEmptyRegistry(t *testing.T) {
	reg, err := registry.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	entries, err := reg.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty registry, got %d entries", len(entries))
	}
}

func TestRegisterConcurrent(t *testing.T) {
	reg, err := registry.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	base := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := entry(string(rune('a'+i))+"_run", "model", base.Add(time.Duration(i)*time.Minute), 0.5)
			if err := reg.Register(e); err != nil {
				t.Errorf("Register %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	entries, err := reg.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 8 {
		t.Errorf("lost updates: got %d entries, want 8", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.Before(entries[i-1].Date) {
			t.Errorf("entries out of date order at %d", i)
		}
	}
}

func TestCorruptIndexSurfacesError(t *testing.T) {
	dir := t.TempDir()
	reg, err := registry.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing corrupt index: %v", err)
	}
	if _, err := reg.List(); err == nil {
		t.Error("expected error for corrupt index")
	}
}
