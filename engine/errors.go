package engine

import (
	"fmt"
	"strings"
)

// EmptyDatasetMessage is returned to callers when nothing has been loaded.
const EmptyDatasetMessage = "No data available. Please upload a dataset first."

// EmptyDatasetError signals that no dataset is loaded or it has no rows.
type EmptyDatasetError struct{}

func (EmptyDatasetError) Error() string { return EmptyDatasetMessage }

// NoMatchError signals that no catalog area resolved from the query.
// Suggestions is the ranked list (possibly empty); Catalog is the full area
// list used to build the fallback message.
type NoMatchError struct {
	Query       string
	Suggestions []string
	Catalog     []string
}

func (e *NoMatchError) Error() string {
	if len(e.Suggestions) > 0 {
		top := e.Suggestions
		if len(top) > 3 {
			top = top[:3]
		}
		return fmt.Sprintf("No exact matches found. Did you mean: %s?", strings.Join(top, ", "))
	}
	head := e.Catalog
	more := ""
	if len(head) > 5 {
		head = head[:5]
		more = "..."
	}
	return fmt.Sprintf("No matching areas found. Available areas: %s%s", strings.Join(head, ", "), more)
}

// Summary is the explanatory prose returned alongside the error.
func (e *NoMatchError) Summary() string {
	return fmt.Sprintf("Unable to find data for the requested location in your query: '%s'. "+
		"Please try one of the suggested areas or check the available locations.", e.Query)
}

// Offered returns the suggestions shown to the caller: the ranked list, or
// the first ten catalog areas when nothing scored.
func (e *NoMatchError) Offered() []string {
	if len(e.Suggestions) > 0 {
		return e.Suggestions
	}
	n := len(e.Catalog)
	if n > 10 {
		n = 10
	}
	out := make([]string, n)
	copy(out, e.Catalog[:n])
	return out
}

// ExternalServiceError wraps a failed or timed-out text-generation call.
// It is always recovered locally by falling back to the deterministic summary.
type ExternalServiceError struct {
	Provider string
	Err      error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s text generation failed: %v", e.Provider, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }
