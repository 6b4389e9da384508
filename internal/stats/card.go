// Package stats renders summary cards for the overview tab.
package stats

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/memberhub/internal/listing"
	"github.com/jask/memberhub/internal/tabs"
	"github.com/jask/memberhub/internal/theme"
)

var (
	ErrEmptyLabel  = errors.New("stats: card label must not be empty")
	ErrUnknownTone = errors.New("stats: unknown tone")
)

// Tone is the closed set of card accents.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

var toneColors = map[Tone]lipgloss.Color{
	ToneNeutral: theme.Overlay1,
	ToneInfo:    theme.Info,
	ToneSuccess: theme.Success,
	ToneWarning: theme.Warning,
	ToneDanger:  theme.Error,
}

func (t Tone) Valid() bool {
	_, ok := toneColors[t]
	return ok
}

// Value is either a number or a short text.
type Value struct {
	n      int
	text   string
	isText bool
}

func IntValue(n int) Value       { return Value{n: n} }
func TextValue(s string) Value   { return Value{text: s, isText: true} }
func (v Value) IsText() bool     { return v.isText }
func (v Value) Int() (int, bool) { return v.n, !v.isText }

func (v Value) Text() string {
	if v.isText {
		return v.text
	}
	return strconv.Itoa(v.n)
}

// Card is one stat tile.
type Card struct {
	Label string
	Value Value
	Tone  Tone
	Icon  tabs.Icon
}

// Normalize fills defaults: empty tone becomes neutral, empty icon none.
// Icon names are matched case-insensitively.
func (c Card) Normalize() Card {
	if c.Tone == "" {
		c.Tone = ToneNeutral
	}
	if icon, err := tabs.ParseIcon(string(c.Icon)); err == nil {
		c.Icon = icon
	}
	return c
}

// Validate rejects cards outside the recognised configuration.
func (c Card) Validate() error {
	c = c.Normalize()
	if strings.TrimSpace(c.Label) == "" {
		return ErrEmptyLabel
	}
	if !c.Tone.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTone, c.Tone)
	}
	if _, err := tabs.ParseIcon(string(c.Icon)); err != nil {
		return fmt.Errorf("card %q: %w: %q", c.Label, err, c.Icon)
	}
	return nil
}

// Render draws the card at the given outer width.
func (c Card) Render(width int) string {
	c = c.Normalize()
	color, ok := toneColors[c.Tone]
	if !ok {
		color = toneColors[ToneNeutral]
	}
	if width < 8 {
		width = 8
	}
	label := c.Label
	if g := c.Icon.Glyph(); g != "" {
		label = g + " " + label
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(width - 2)
	value := lipgloss.NewStyle().Foreground(color).Bold(true).Render(c.Value.Text())
	return style.Render(theme.HelpDesc.Render(label) + "\n" + value)
}

// Row lays cards side by side, splitting width evenly.
func Row(cards []Card, width int) string {
	if len(cards) == 0 || width <= 0 {
		return ""
	}
	each := width / len(cards)
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, c.Render(each))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Count is one value of a field and the number of records holding it.
type Count struct {
	Value string
	N     int
}

// Summarize counts records per value of field, most frequent first.
func Summarize(records []listing.Record, field string) []Count {
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Get(field)]++
	}
	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// CountOf returns the number of records whose field equals value.
func CountOf(records []listing.Record, field, value string) int {
	n := 0
	for _, r := range records {
		if r.Get(field) == value {
			n++
		}
	}
	return n
}
