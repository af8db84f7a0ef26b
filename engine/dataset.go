package engine

import (
	"sort"
	"sync/atomic"
)

// ============================================================================
// DATASET — Immutable snapshot of cleaned records plus its area catalog
// ============================================================================
// A Dataset is built once and never mutated. Store publishes a new one by
// atomic pointer swap, so readers always see either the old or the new
// snapshot in full.
// ============================================================================

// Dataset is a read-only collection of cleaned records.
type Dataset struct {
	records []Record
	areas   []string
	minYear int
	maxYear int
}

// NewDataset builds a Dataset, taking ownership of records.
func NewDataset(records []Record) *Dataset {
	ds := &Dataset{records: records}
	seen := make(map[string]bool)
	for i, r := range records {
		if !seen[r.Area] {
			seen[r.Area] = true
			ds.areas = append(ds.areas, r.Area)
		}
		if i == 0 || r.Year < ds.minYear {
			ds.minYear = r.Year
		}
		if i == 0 || r.Year > ds.maxYear {
			ds.maxYear = r.Year
		}
	}
	sort.Strings(ds.areas)
	return ds
}

// Len returns the number of records. A nil Dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// View exposes the records as a RecordView.
func (d *Dataset) View() RecordView {
	if d == nil {
		return NewSliceView(nil)
	}
	return NewSliceView(d.records)
}

// Areas is the Area Catalog: the sorted distinct area names.
// The returned slice is a copy.
func (d *Dataset) Areas() []string {
	if d == nil {
		return []string{}
	}
	out := make([]string, len(d.areas))
	copy(out, d.areas)
	return out
}

// YearSpan returns the smallest and largest year present.
func (d *Dataset) YearSpan() (int, int) {
	if d == nil {
		return 0, 0
	}
	return d.minYear, d.maxYear
}

// MaxYear returns the latest year in the dataset (0 when empty).
func (d *Dataset) MaxYear() int {
	_, max := d.YearSpan()
	return max
}

// Records returns a copy of every record.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	return Collect(d.View(), 0)
}

// ============================================================================
// STORE — single-writer / multi-reader dataset handle
// ============================================================================

// Store owns the current Dataset. Replace publishes a fully built snapshot;
// Current never observes a partially loaded one.
type Store struct {
	current atomic.Pointer[Dataset]
}

// NewStore creates a Store holding an empty dataset.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(NewDataset(nil))
	return s
}

// Current returns the latest published snapshot.
func (s *Store) Current() *Dataset {
	return s.current.Load()
}

// Replace swaps in a new snapshot and returns the previous one.
func (s *Store) Replace(ds *Dataset) *Dataset {
	if ds == nil {
		ds = NewDataset(nil)
	}
	return s.current.Swap(ds)
}
