package engine

// ============================================================================
// RECORD VIEW — Zero-copy read access to a dataset
// ============================================================================
// The engine reads records only through this interface.
//
// Implementations:
//   SliceView — wraps []Record (a loaded Dataset, test fixtures)
//   SubView   — filtered subset (indices into parent, zero-copy)
// ============================================================================

// RecordView provides indexed access to records.
type RecordView interface {
	Len() int
	At(index int) Record
}

// ============================================================================
// SLICE VIEW
// ============================================================================

// SliceView wraps a []Record slice as a RecordView.
type SliceView struct {
	records []Record
}

// NewSliceView creates a RecordView from a []Record slice. The slice is not copied.
func NewSliceView(records []Record) RecordView {
	return &SliceView{records: records}
}

func (v *SliceView) Len() int { return len(v.records) }

func (v *SliceView) At(i int) Record {
	if i < 0 || i >= len(v.records) {
		return Record{}
	}
	return v.records[i]
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent, never a copy of the rows.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) At(i int) Record {
	if i < 0 || i >= len(v.indices) {
		return Record{}
	}
	return v.parent.At(v.indices[i])
}

// Collect materializes up to limit records from a view (limit <= 0 means all).
func Collect(view RecordView, limit int) []Record {
	n := view.Len()
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]Record, n)
	for i := 0; i < n; i++ {
		out[i] = view.At(i)
	}
	return out
}
