package translator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
)

// ============================================================================
// KEYWORD TABLES — Static, ordered lookup structures
// ============================================================================
// Matching priority is the slice order. Each table can be tested on its own.
// ============================================================================

var priceKeywords = []string{"price", "cost", "rate", "value", "expensive", "cheap", "affordable", "pricing"}

var demandKeywords = []string{"demand", "popular", "sold", "units", "sales", "market", "activity", "volume"}

type analysisRule struct {
	kind     engine.AnalysisType
	keywords []string
}

// analysisRules is checked in order. comparison yields to any later rule
// that also matches (see classifyAnalysis).
var analysisRules = []analysisRule{
	{engine.AnalysisComparison, []string{"compare", "comparison", "vs", "versus", "against"}},
	{engine.AnalysisTrend, []string{"trend", "growth", "change", "over time"}},
	{engine.AnalysisRanking, []string{"best", "top", "highest", "maximum", "peak"}},
	{engine.AnalysisInvestment, []string{"invest", "investment", "buy", "purchase", "recommend"}},
}

type windowKind int

const (
	windowRolling windowKind = iota
	windowRange
	windowSingle
)

type windowPattern struct {
	kind windowKind
	re   *regexp.Regexp
}

// windowPatterns are tried in order; the first match wins.
var windowPatterns = []windowPattern{
	{windowRolling, regexp.MustCompile(`\b(?:last|past|recent)\s*(\d+)\s*years?`)},
	{windowRange, regexp.MustCompile(`(\d{4})\s*(?:to|-)\s*(\d{4})`)},
	{windowSingle, regexp.MustCompile(`\b(?:in|for|during)\s*(\d{4})`)},
}

// ============================================================================
// TOKEN MATCHING
// ============================================================================

// tokenize splits lowercased text on anything that is not a letter or digit.
func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// hasKeyword reports whether any keyword occurs in the query. Single-word
// keywords match a token equal to or starting with the keyword ("trends",
// "rates"); multi-word keywords match as a substring of the query.
func hasKeyword(lower string, tokens []string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		for _, tok := range tokens {
			if strings.HasPrefix(tok, kw) {
				return true
			}
		}
	}
	return false
}
