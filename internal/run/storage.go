package run

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RunsDir is the subdirectory of the results dir holding full run records.
func RunsDir(baseDir string) string {
	return filepath.Join(baseDir, "runs")
}

// RunPath returns the canonical file path for a run record. Model ids with
// slashes ("google/gemma-2-2b-it") are made filesystem-safe.
func RunPath(baseDir string, r *BenchmarkRun) string {
	safeModel := strings.ReplaceAll(r.ModelID, "/", "-")
	return filepath.Join(RunsDir(baseDir), fmt.Sprintf("%s_%s.json", r.RunID, safeModel))
}

// WriteRun persists a run record with write-to-temp-then-rename so a reader
// never observes a partial file.
func WriteRun(path string, r *BenchmarkRun) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating runs dir: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling run: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".run-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing run: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing run file: %w", err)
	}
	return nil
}

// ReadRun loads a previously written run record.
func ReadRun(path string) (*BenchmarkRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run: %w", err)
	}
	var r BenchmarkRun
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing run %s: %w", path, err)
	}
	return &r, nil
}
