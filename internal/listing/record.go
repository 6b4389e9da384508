// Package listing implements filterable list panels: a fixed record
// collection, a search term and discrete filters, and the derived visible view.
package listing

import (
	"context"
	"errors"
)

// Record is one flat row. Values are kept in display form: numbers as
// decimal strings, dates as YYYY-MM-DD, statuses as their enum label.
type Record struct {
	ID     string
	Fields map[string]string
}

// Get returns the value of field name, or "" when the record lacks it.
func (r Record) Get(name string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[name]
}

// MatchMode selects how a field takes part in filtering.
type MatchMode int

const (
	// MatchSubstring fields are searched by the free-text search term.
	MatchSubstring MatchMode = iota
	// MatchExact fields are discrete filters compared by equality.
	MatchExact
)

func (m MatchMode) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchExact:
		return "exact"
	}
	return "unknown"
}

// Field describes one filterable record field.
type Field struct {
	Name  string
	Label string
	Mode  MatchMode
}

// Provider supplies the record collection of a panel.
type Provider interface {
	Records(ctx context.Context) ([]Record, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) ([]Record, error)

func (f ProviderFunc) Records(ctx context.Context) ([]Record, error) { return f(ctx) }

// StaticProvider serves a fixed slice. Callers get a copy.
type StaticProvider []Record

func (p StaticProvider) Records(context.Context) ([]Record, error) {
	out := make([]Record, len(p))
	copy(out, p)
	return out, nil
}

var ErrNilProvider = errors.New("listing: nil provider")
