package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyFieldName = errors.New("listing: field name must not be empty")
	ErrDuplicateField = errors.New("listing: duplicate field")
)

// Hooks are notified after the matching state change.
type Hooks struct {
	OnSearchChange func(term string)
	OnFilterChange func(field, value string)
	OnClearFilters func()
}

// Panel owns a record collection and its filter state. A Panel is not safe
// for concurrent use; it lives inside a single UI event loop.
type Panel struct {
	fields  []Field
	byName  map[string]Field
	records []Record
	state   FilterState

	sortField string
	sortAsc   bool
	cursor    int

	Hooks Hooks
}

// NewPanel builds a panel over records. Field names must be unique.
func NewPanel(fields []Field, records []Record) (*Panel, error) {
	p := &Panel{
		fields: make([]Field, 0, len(fields)),
		byName: make(map[string]Field, len(fields)),
		state:  FilterState{Selected: map[string]string{}},
	}
	for _, f := range fields {
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, ok := p.byName[f.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		if f.Label == "" {
			f.Label = f.Name
		}
		p.fields = append(p.fields, f)
		p.byName[f.Name] = f
	}
	p.SetRecords(records)
	return p, nil
}

// Load replaces the record collection with the provider's. On error the
// previous records stay in place.
func (p *Panel) Load(ctx context.Context, provider Provider) error {
	if provider == nil {
		return ErrNilProvider
	}
	records, err := provider.Records(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	p.SetRecords(records)
	return nil
}

// SetRecords replaces the record collection. The slice is copied.
func (p *Panel) SetRecords(records []Record) {
	p.records = make([]Record, len(records))
	copy(p.records, records)
	p.clampCursor()
}

func (p *Panel) Records() []Record {
	out := make([]Record, len(p.records))
	copy(out, p.records)
	return out
}

func (p *Panel) Fields() []Field {
	out := make([]Field, len(p.fields))
	copy(out, p.fields)
	return out
}

// DiscreteFields returns the exact-match fields in declaration order.
func (p *Panel) DiscreteFields() []Field {
	var out []Field
	for _, f := range p.fields {
		if f.Mode == MatchExact {
			out = append(out, f)
		}
	}
	return out
}

func (p *Panel) State() FilterState { return p.state.Clone() }

func (p *Panel) Search() string { return p.state.Search }

// SetSearch updates the search term.
func (p *Panel) SetSearch(term string) {
	if term == p.state.Search {
		return
	}
	p.state.Search = term
	p.cursor = 0
	if p.Hooks.OnSearchChange != nil {
		p.Hooks.OnSearchChange(term)
	}
}

// SetFilter selects value for a discrete field; "" unsets it. Unknown or
// substring-mode fields are ignored and report false.
func (p *Panel) SetFilter(field, value string) bool {
	f, ok := p.byName[field]
	if !ok || f.Mode != MatchExact {
		return false
	}
	if p.state.Selected[field] == value {
		return true
	}
	if value == "" {
		delete(p.state.Selected, field)
	} else {
		p.state.Selected[field] = value
	}
	p.cursor = 0
	if p.Hooks.OnFilterChange != nil {
		p.Hooks.OnFilterChange(field, value)
	}
	return true
}

// Filter returns the current selection of field, "" when unset.
func (p *Panel) Filter(field string) string { return p.state.Selected[field] }

// Options returns the selectable values of a discrete field.
func (p *Panel) Options(field string) []string {
	f, ok := p.byName[field]
	if !ok || f.Mode != MatchExact {
		return nil
	}
	return DistinctValues(p.records, field)
}

// CycleFilter advances field through unset, each option in order, and back
// to unset. It returns the new selection.
func (p *Panel) CycleFilter(field string) string {
	opts := p.Options(field)
	if len(opts) == 0 {
		return ""
	}
	cur := p.state.Selected[field]
	next := opts[0]
	if cur != "" {
		next = ""
		for i, o := range opts {
			if o == cur && i+1 < len(opts) {
				next = opts[i+1]
				break
			}
		}
	}
	p.SetFilter(field, next)
	return next
}

// ClearFilters resets the search term and every discrete filter.
func (p *Panel) ClearFilters() {
	p.state = FilterState{Selected: map[string]string{}}
	p.cursor = 0
	if p.Hooks.OnClearFilters != nil {
		p.Hooks.OnClearFilters()
	}
}

// SortBy orders the visible view by field. An empty field restores record order.
func (p *Panel) SortBy(field string, asc bool) bool {
	if field != "" {
		if _, ok := p.byName[field]; !ok {
			return false
		}
	}
	p.sortField = field
	p.sortAsc = asc
	return true
}

func (p *Panel) Sort() (field string, asc bool) { return p.sortField, p.sortAsc }

// Visible derives the filtered, sorted view. It is recomputed on every call.
func (p *Panel) Visible() []Record {
	out := Filter(p.records, p.fields, p.state)
	if p.sortField != "" {
		SortRecords(out, p.sortField, p.sortAsc)
	}
	return out
}

// IsEmpty reports whether the visible view has no rows.
func (p *Panel) IsEmpty() bool { return len(p.Visible()) == 0 }

func (p *Panel) Cursor() int { return p.cursor }

// MoveCursor shifts the cursor by delta within the visible view.
func (p *Panel) MoveCursor(delta int) {
	p.cursor += delta
	p.clampCursor()
}

// Selected returns the record under the cursor.
func (p *Panel) Selected() (Record, bool) {
	rows := p.Visible()
	if p.cursor < 0 || p.cursor >= len(rows) {
		return Record{}, false
	}
	return rows[p.cursor], true
}

func (p *Panel) clampCursor() {
	n := len(p.Visible())
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}
