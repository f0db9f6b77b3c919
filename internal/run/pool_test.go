package run

import (
	"fmt"
	"sync/atomic"
	"testing"
)

func TestForEach(t *testing.T) {
	var count atomic.Int32
	errs := forEach(3, 10, func(i int) error {
		count.Add(1)
		return nil
	})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
	if count.Load() != 10 {
		t.Errorf("expected 10 invocations, got %d", count.Load())
	}
}

func TestForEachCollectsErrors(t *testing.T) {
	errs := forEach(2, 3, func(i int) error {
		if i == 1 {
			return fmt.Errorf("fail")
		}
		return nil
	})
	if len(errs) != 1 {
		t.Errorf("expected 1 error, got %d", len(errs))
	}
}

func TestForEachZeroWorkers(t *testing.T) {
	var count atomic.Int32
	forEach(0, 4, func(i int) error {
		count.Add(1)
		return nil
	})
	if count.Load() != 4 {
		t.Errorf("expected all indices visited, got %d", count.Load())
	}
}
