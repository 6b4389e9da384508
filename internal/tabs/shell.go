// Package tabs holds the tab shell: a fixed, ordered set of tab descriptors
// with exactly one active tab at any time.
//
// Allowed here:
// - tab selection state, the navigation strip, icon resolution
//
// Not allowed here:
// - panel content, key handling, data loading
package tabs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoTabs       = errors.New("tabs: at least one tab is required")
	ErrEmptyTabID   = errors.New("tabs: tab id must not be empty")
	ErrDuplicateTab = errors.New("tabs: duplicate tab id")
)

// Descriptor describes one tab. Descriptors are immutable once a Shell is built.
type Descriptor struct {
	ID    string
	Label string
	Icon  Icon
}

// Shell tracks which tab is active. The zero value is not usable; build one
// with NewShell.
type Shell struct {
	descriptors []Descriptor
	index       map[string]int
	active      int

	// OnSelect is called after the active tab changes.
	OnSelect func(prev, next Descriptor)
}

// NewShell validates descriptors and activates initialID, falling back to the
// first descriptor when initialID is empty or unknown.
func NewShell(descriptors []Descriptor, initialID string) (*Shell, error) {
	if len(descriptors) == 0 {
		return nil, ErrNoTabs
	}
	s := &Shell{
		descriptors: make([]Descriptor, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}
	for i, d := range descriptors {
		d.ID = strings.TrimSpace(d.ID)
		if d.ID == "" {
			return nil, fmt.Errorf("tab %d: %w", i, ErrEmptyTabID)
		}
		if _, exists := s.index[d.ID]; exists {
			return nil, fmt.Errorf("tab %q: %w", d.ID, ErrDuplicateTab)
		}
		icon, err := ParseIcon(string(d.Icon))
		if err != nil {
			return nil, fmt.Errorf("tab %q: %w: %q", d.ID, err, d.Icon)
		}
		d.Icon = icon
		if d.Label == "" {
			d.Label = d.ID
		}
		s.descriptors[i] = d
		s.index[d.ID] = i
	}
	if idx, ok := s.index[strings.TrimSpace(initialID)]; ok {
		s.active = idx
	}
	return s, nil
}

// SelectTab activates id. Unknown ids are ignored and report false.
func (s *Shell) SelectTab(id string) bool {
	idx, ok := s.index[id]
	if !ok {
		return false
	}
	s.activate(idx)
	return true
}

// SelectIndex activates the tab at position i (zero-based). Out of range is a no-op.
func (s *Shell) SelectIndex(i int) bool {
	if i < 0 || i >= len(s.descriptors) {
		return false
	}
	s.activate(i)
	return true
}

func (s *Shell) Next() { s.activate((s.active + 1) % len(s.descriptors)) }

func (s *Shell) Prev() {
	s.activate((s.active - 1 + len(s.descriptors)) % len(s.descriptors))
}

func (s *Shell) activate(idx int) {
	if idx == s.active {
		return
	}
	prev := s.descriptors[s.active]
	s.active = idx
	if s.OnSelect != nil {
		s.OnSelect(prev, s.descriptors[idx])
	}
}

func (s *Shell) Active() Descriptor { return s.descriptors[s.active] }

func (s *Shell) ActiveID() string { return s.descriptors[s.active].ID }

func (s *Shell) ActiveIndex() int { return s.active }

// Descriptors returns a copy of the tab sequence in display order.
func (s *Shell) Descriptors() []Descriptor {
	out := make([]Descriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

func (s *Shell) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Shell) Len() int { return len(s.descriptors) }
