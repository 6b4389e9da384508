package listing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/memberhub/internal/theme"
)

// Column is one rendered table column.
type Column struct {
	Field string
	Title string
	Width int // 0 = share the remaining width
}

// Render draws the panel: a filter summary line, the header row and the
// visible rows, or the empty-state affordance when nothing matches.
func Render(p *Panel, cols []Column, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{summaryLine(p, width)}

	if empty, ok := p.EmptyState(); ok {
		lines = append(lines, "", theme.Title.Render(empty.Message))
		if empty.Detail != "" {
			lines = append(lines, theme.Dim.Render(empty.Detail))
		}
		if empty.Suggestion != "" {
			lines = append(lines, theme.HelpDesc.Render(fmt.Sprintf("Did you mean %q?", empty.Suggestion)))
		}
		if empty.Action != "" {
			lines = append(lines, theme.Key.Render(empty.Action))
		}
		return fit(lines, width, height)
	}

	widths := columnWidths(cols, width)
	header := make([]string, len(cols))
	for i, c := range cols {
		title := c.Title
		if f, asc := p.Sort(); f != "" && f == c.Field {
			if asc {
				title += " ↑"
			} else {
				title += " ↓"
			}
		}
		header[i] = cell(title, widths[i])
	}
	lines = append(lines, theme.TableHeader.Render(strings.Join(header, " ")))

	rows := p.Visible()
	bodyHeight := height - len(lines)
	start := 0
	if p.Cursor() >= bodyHeight && bodyHeight > 0 {
		start = p.Cursor() - bodyHeight + 1
	}
	for i := start; i < len(rows) && len(lines) < height; i++ {
		parts := make([]string, len(cols))
		for j, c := range cols {
			parts[j] = cell(rows[i].Get(c.Field), widths[j])
		}
		line := strings.Join(parts, " ")
		if i == p.Cursor() {
			line = theme.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	return fit(lines, width, height)
}

func summaryLine(p *Panel, width int) string {
	visible, total := len(p.Visible()), len(p.records)
	parts := []string{fmt.Sprintf("%d of %d", visible, total)}
	if s := p.Search(); s != "" {
		parts = append(parts, fmt.Sprintf("search %q", s))
	}
	for _, f := range p.DiscreteFields() {
		if v := p.Filter(f.Name); v != "" {
			parts = append(parts, theme.Chip.Render(f.Label+"="+v))
		}
	}
	return ansi.Truncate(strings.Join(parts, "  "), width, "…")
}

func columnWidths(cols []Column, width int) []int {
	out := make([]int, len(cols))
	fixed, flex := 0, 0
	for i, c := range cols {
		if c.Width > 0 {
			out[i] = c.Width
			fixed += c.Width
		} else {
			flex++
		}
	}
	gaps := len(cols) - 1
	if gaps < 0 {
		gaps = 0
	}
	remaining := width - fixed - gaps
	if flex > 0 {
		share := remaining / flex
		if share < 4 {
			share = 4
		}
		for i := range out {
			if out[i] == 0 {
				out[i] = share
			}
		}
	}
	return out
}

func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func fit(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}
