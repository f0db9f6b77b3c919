// Package registry maintains the append-only index of completed runs that
// leaderboard reports are rendered from. The index is a single JSON file
// replaced atomically as a whole; registering an existing run_id swaps that
// entry rather than appending a duplicate row.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrLocked is returned when another process holds the registry lock past
// the retry window. Callers may retry the registration; entries already
// written remain valid.
var ErrLocked = errors.New("registry index is locked")

// Entry is one leaderboard row. ResultPath points at the full run record,
// relative to the registry directory.
type Entry struct {
	RunID             string    `json:"run_id"`
	ModelID           string    `json:"model_id"`
	Hardware          string    `json:"hardware"`
	Accuracy          *float64  `json:"accuracy"`
	HallucinatedCount int       `json:"hallucinated_count"`
	RefusedCount      int       `json:"refused_count"`
	Date              time.Time `json:"date"`
	ResultPath        string    `json:"result_path"`
}

// Registry is a file-backed run index under dir/index.json.
type Registry struct {
	dir          string
	lockAttempts int
	lockDelay    time.Duration
}

func Open(dir string) (*Registry, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating registry dir: %w", err)
	}
	return &Registry{dir: dir, lockAttempts: 50, lockDelay: 100 * time.Millisecond}, nil
}

func (r *Registry) indexPath() string { return filepath.Join(r.dir, "index.json") }
func (r *Registry) lockPath() string  { return filepath.Join(r.dir, "index.lock") }

// Register appends the entry, or replaces the existing entry with the same
// run_id as a single unit. Concurrent registrations are serialized through
// an exclusive lock file and the index is swapped in with a rename, so a
// reader never sees a partially written index.
func (r *Registry) Register(e Entry) error {
	if e.RunID == "" {
		return fmt.Errorf("registering run: run_id is required")
	}
	unlock, err := r.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].RunID == e.RunID {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}
	sortByDate(entries)
	return r.store(entries)
}

// List returns all entries in ascending date order.
func (r *Registry) List() ([]Entry, error) {
	entries, err := r.load()
	if err != nil {
		return nil, err
	}
	sortByDate(entries)
	return entries, nil
}

func sortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].RunID < entries[j].RunID
		}
		return entries[i].Date.Before(entries[j].Date)
	})
}

func (r *Registry) load() ([]Entry, error) {
	data, err := os.ReadFile(r.indexPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry index: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing registry index %s: %w", r.indexPath(), err)
	}
	return entries, nil
}

func (r *Registry) store(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling registry index: %w", err)
	}
	tmp, err := os.CreateTemp(r.dir, ".index-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp index: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing registry index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp index: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.indexPath()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing registry index: %w", err)
	}
	return nil
}

// acquireLock takes the exclusive lock file, retrying briefly before giving
// up with ErrLocked.
func (r *Registry) acquireLock() (func(), error) {
	for attempt := 0; attempt < r.lockAttempts; attempt++ {
		f, err := os.OpenFile(r.lockPath(), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			f.Close()
			return func() { os.Remove(r.lockPath()) }, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("acquiring registry lock: %w", err)
		}
		time.Sleep(r.lockDelay)
	}
	return nil, fmt.Errorf("%w: %s", ErrLocked, r.lockPath())
}
