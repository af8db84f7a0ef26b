package translator

import (
	"fmt"
	"strings"
	"testing"
)

// ============================================================================
// AREA MATCHER TESTS
// ============================================================================

func TestMatchAreas(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"full name", "baner road prices", []string{"Baner Road"}},
		{"word overlap", "houses near the road", []string{"Baner Road"}},
		{"inside a word", "wakad's demand", []string{"Wakad"}},
		{"several", "aundh, kothrud and wakad", []string{"Aundh", "Kothrud", "Wakad"}},
		{"unrelated", "mumbai prices", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchAreas(tt.query, catalog)
			if len(got) != len(tt.want) {
				t.Fatalf("MatchAreas(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("MatchAreas(%q)[%d] = %q, want %q", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatchAreasExactNameAlwaysMatches(t *testing.T) {
	for _, area := range catalog {
		for _, q := range []string{area, "show me " + area + " please"} {
			lower := strings.ToLower(q)
			found := false
			for _, got := range MatchAreas(lower, catalog) {
				if got == area {
					found = true
				}
			}
			if !found {
				t.Errorf("MatchAreas(%q) did not include %q", lower, area)
			}
		}
	}
}

func TestMatchAreasShortWordIgnored(t *testing.T) {
	short := []string{"Ak", "Wakad"}
	got := MatchAreas("parking", short)
	if len(got) != 0 {
		t.Errorf("MatchAreas(parking) = %v, want none", got)
	}
}

func TestSuggestRanking(t *testing.T) {
	got := Suggest("road", catalog, DefaultSuggestionLimit)
	assertAreas(t, got, []string{"Baner Road", "Kothrud"})
}

func TestSuggestDropsZeroScores(t *testing.T) {
	if got := Suggest("NonExistentArea", catalog, DefaultSuggestionLimit); len(got) != 0 {
		t.Errorf("Suggest(NonExistentArea) = %v, want none", got)
	}
}

func TestSuggestLimitAndTies(t *testing.T) {
	var many []string
	for i := 1; i <= 7; i++ {
		many = append(many, fmt.Sprintf("Pune Sector %d", i))
	}

	got := Suggest("pune", many, 0)
	if len(got) != DefaultSuggestionLimit {
		t.Fatalf("len = %d, want %d", len(got), DefaultSuggestionLimit)
	}
	for i, area := range got {
		if area != many[i] {
			t.Errorf("got[%d] = %q, want %q (ties keep catalog order)", i, area, many[i])
		}
	}

	if got := Suggest("pune", many, 2); len(got) != 2 {
		t.Errorf("limit 2 returned %d suggestions", len(got))
	}
}

func TestCharOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"road", "road", true},
		{"road", "kothrud", true},
		{"road", "aundh", false},
		{"wkd", "wakad", true},
	}
	for _, tt := range tests {
		if got := charOverlap(tt.a, tt.b); got != tt.want {
			t.Errorf("charOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
