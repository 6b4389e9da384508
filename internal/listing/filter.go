package listing

import (
	"sort"
	"strconv"
	"strings"
)

// FilterState is the user-controlled part of a panel.
type FilterState struct {
	Search   string
	Selected map[string]string // field name -> exact value; missing or "" = unset
}

// Active reports whether any predicate is set.
func (s FilterState) Active() bool {
	if s.Search != "" {
		return true
	}
	for _, v := range s.Selected {
		if v != "" {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (s FilterState) Clone() FilterState {
	out := FilterState{Search: s.Search}
	if len(s.Selected) > 0 {
		out.Selected = make(map[string]string, len(s.Selected))
		for k, v := range s.Selected {
			out.Selected[k] = v
		}
	}
	return out
}

// Filter returns the records matching state, in their original order.
func Filter(records []Record, fields []Field, state FilterState) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !SearchMatches(r, fields, state.Search) {
			continue
		}
		if !DiscreteMatches(r, state.Selected) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SearchMatches reports whether any substring-mode field of r contains term,
// ignoring case. An empty term matches everything.
func SearchMatches(r Record, fields []Field, term string) bool {
	if term == "" {
		return true
	}
	q := strings.ToLower(term)
	for _, f := range fields {
		if f.Mode != MatchSubstring {
			continue
		}
		if strings.Contains(strings.ToLower(r.Get(f.Name)), q) {
			return true
		}
	}
	return false
}

// DiscreteMatches reports whether r equals every set filter exactly.
func DiscreteMatches(r Record, selected map[string]string) bool {
	for name, want := range selected {
		if want == "" {
			continue // unset
		}
		if r.Get(name) != want {
			return false
		}
	}
	return true
}

// SortRecords stable-sorts rows by field. Values that both parse as numbers
// compare numerically, everything else case-insensitively.
func SortRecords(rows []Record, field string, asc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Get(field), rows[j].Get(field)
		if asc {
			return lessValue(a, b)
		}
		return lessValue(b, a)
	})
}

func lessValue(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

// DistinctValues returns the sorted distinct non-empty values of field.
func DistinctValues(records []Record, field string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := r.Get(field)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
