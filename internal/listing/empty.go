package listing

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ClearFiltersKey is the key bound to ClearFilters in every list panel.
const ClearFiltersKey = "c"

// EmptyState is what a panel shows instead of rows.
type EmptyState struct {
	Message    string
	Detail     string // set when the panel holds no records at all
	Action     string // label of the recovery action
	Suggestion string // closest known search word, if any
}

// EmptyState describes the no-rows affordance. ok is false while rows are visible.
func (p *Panel) EmptyState() (EmptyState, bool) {
	if !p.IsEmpty() {
		return EmptyState{}, false
	}
	es := EmptyState{
		Message: "No results match the current filters",
		Action:  "[" + ClearFiltersKey + "] Clear filters",
	}
	if len(p.records) == 0 {
		es.Detail = "No records yet"
		return es, true
	}
	es.Suggestion = Suggest(p.records, p.fields, p.state.Search)
	return es, true
}

// Suggest returns the word from the searchable fields closest to term by
// edit distance, or "" when nothing is close enough.
func Suggest(records []Record, fields []Field, term string) string {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return ""
	}
	limit := len(q) / 3
	if limit < 2 {
		limit = 2
	}
	best, bestDist := "", limit+1
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, f := range fields {
			if f.Mode != MatchSubstring {
				continue
			}
			for _, word := range strings.Fields(strings.ToLower(r.Get(f.Name))) {
				if _, ok := seen[word]; ok {
					continue
				}
				seen[word] = struct{}{}
				d := levenshtein.ComputeDistance(q, word)
				if d < bestDist || (d == bestDist && word < best) {
					best, bestDist = word, d
				}
			}
		}
	}
	if bestDist > limit || best == q {
		return ""
	}
	return best
}
