package translator

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// ============================================================================
// AREA MATCHER — Catalog resolution and ranked suggestions
// ============================================================================

// MatchAreas returns every catalog area mentioned in the lowercased query,
// in catalog order. Per area the first passing rule accepts it:
//  1. the full lowercase name appears in the query
//  2. at least half of the area's words appear as query words
//  3. a single-word area (3+ chars) is a substring of some query word
func MatchAreas(lowerQuery string, catalog []string) []string {
	queryWords := strings.Fields(lowerQuery)
	querySet := wordSet(queryWords)

	var found []string
	for _, area := range catalog {
		areaLower := strings.ToLower(area)
		if areaLower == "" {
			continue
		}
		if strings.Contains(lowerQuery, areaLower) {
			found = append(found, area)
			continue
		}

		areaWords := strings.Fields(areaLower)
		areaSet := wordSet(areaWords)
		shared := 0
		for w := range areaSet {
			if querySet[w] {
				shared++
			}
		}
		if len(areaSet) > 0 && float64(shared) >= float64(len(areaSet))*0.5 {
			found = append(found, area)
			continue
		}

		if len(areaWords) == 1 && utf8.RuneCountInString(areaWords[0]) >= 3 {
			for _, qw := range queryWords {
				if strings.Contains(qw, areaWords[0]) {
					found = append(found, area)
					break
				}
			}
		}
	}
	return found
}

// DefaultSuggestionLimit is the number of ranked suggestions returned.
const DefaultSuggestionLimit = 5

type scoredArea struct {
	area  string
	score int
}

// Suggest ranks catalog areas against a query that matched nothing.
// Scoring per area:
//
//	+10 if any query word of 3+ chars is a substring of the area name
//	 +5 per word shared exactly
//	 +2 per (query word of 3+ chars, area word) pair where one contains the other
//	 +1 per word pair with character-set overlap >= 60% of the shorter word,
//	    only for short queries (trimmed length <= 5)
//
// Zero scores are dropped; ties keep catalog order.
func Suggest(query string, catalog []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	lower := strings.ToLower(query)
	queryWords := setKeys(wordSet(strings.Fields(lower)))
	shortQuery := utf8.RuneCountInString(strings.TrimSpace(query)) <= 5

	var scored []scoredArea
	for _, area := range catalog {
		areaLower := strings.ToLower(area)
		areaWords := setKeys(wordSet(strings.Fields(areaLower)))
		areaSet := wordSet(areaWords)

		score := 0
		for _, qw := range queryWords {
			if utf8.RuneCountInString(qw) >= 3 && strings.Contains(areaLower, qw) {
				score += 10
				break
			}
		}
		for _, qw := range queryWords {
			if areaSet[qw] {
				score += 5
			}
		}
		for _, qw := range queryWords {
			if utf8.RuneCountInString(qw) < 3 {
				continue
			}
			for _, aw := range areaWords {
				if strings.Contains(aw, qw) || strings.Contains(qw, aw) {
					score += 2
				}
			}
		}
		if shortQuery {
			for _, qw := range queryWords {
				for _, aw := range areaWords {
					if charOverlap(qw, aw) {
						score++
					}
				}
			}
		}

		if score > 0 {
			scored = append(scored, scoredArea{area: area, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.area
	}
	return out
}

// charOverlap reports whether the distinct characters shared by a and b
// number at least 60% of the shorter word's length.
func charOverlap(a, b string) bool {
	setA := make(map[rune]bool)
	for _, r := range a {
		setA[r] = true
	}
	common := make(map[rune]bool)
	for _, r := range b {
		if setA[r] {
			common[r] = true
		}
	}
	shorter := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n < shorter {
		shorter = n
	}
	return float64(len(common)) >= float64(shorter)*0.6
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// setKeys returns the set members sorted, so scoring does not depend on map order.
func setKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
