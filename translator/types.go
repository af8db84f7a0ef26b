package translator

import "github.com/pranavsawarkar14/Real-Estate-Analysis/engine"

// ============================================================================
// TRANSLATOR — Natural language → engine.ParsedQuery
// ============================================================================
// The translator never sees dataset rows, only the area catalog.
// ============================================================================

// Translator interprets queries and proposes areas when nothing matched.
type Translator interface {
	Translate(query string, catalog []string) engine.ParsedQuery
	Suggest(query string, catalog []string) []string
}

// Heuristic is the keyword/regex Translator.
type Heuristic struct {
	SuggestionLimit int
}

// NewHeuristic returns a Heuristic with the default suggestion limit.
func NewHeuristic() *Heuristic {
	return &Heuristic{SuggestionLimit: DefaultSuggestionLimit}
}

// Translate implements Translator.
func (h *Heuristic) Translate(query string, catalog []string) engine.ParsedQuery {
	return Interpret(query, catalog)
}

// Suggest implements Translator.
func (h *Heuristic) Suggest(query string, catalog []string) []string {
	return Suggest(query, catalog, h.SuggestionLimit)
}
