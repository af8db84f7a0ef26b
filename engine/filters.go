package engine

import "strings"

// ============================================================================
// FILTERS — Area + time-window filtering via RecordView
// ============================================================================
// Single pass over the parent view; returns a SubView (index list).
// ============================================================================

// Window is a resolved inclusive year interval. Unbounded means no time constraint.
type Window struct {
	From      int
	To        int
	Unbounded bool
}

// Contains reports whether year falls inside the window.
func (w Window) Contains(year int) bool {
	if w.Unbounded {
		return true
	}
	return year >= w.From && year <= w.To
}

// ResolveWindow turns a ParsedQuery's time constraint into a Window.
// A rolling window of N years keeps year >= maxYear-N+1, anchored on the
// latest year of the whole dataset.
func ResolveWindow(q ParsedQuery, maxYear int) Window {
	switch {
	case q.Years > 0:
		return Window{From: maxYear - q.Years + 1, To: maxYear}
	case q.YearFilter != nil:
		return Window{From: q.YearFilter.Start, To: q.YearFilter.End}
	default:
		return Window{Unbounded: true}
	}
}

// ApplyFilters returns the records whose area is in areas (exact,
// case-sensitive on normalized names) and whose year lies in the window.
// An empty areas list means no area restriction.
func ApplyFilters(view RecordView, areas []string, window Window) RecordView {
	allowed := make(map[string]bool, len(areas))
	for _, a := range areas {
		allowed[a] = true
	}

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		r := view.At(i)
		if len(allowed) > 0 && !allowed[r.Area] {
			continue
		}
		if !window.Contains(r.Year) {
			continue
		}
		indices = append(indices, i)
	}
	return newSubView(view, indices)
}

// FilterAreaContains keeps records whose area contains substr,
// case-insensitively. An empty substr returns the view unchanged.
func FilterAreaContains(view RecordView, substr string) RecordView {
	if substr == "" {
		return view
	}
	needle := strings.ToLower(strings.TrimSpace(substr))
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if strings.Contains(strings.ToLower(view.At(i).Area), needle) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}
