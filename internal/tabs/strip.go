package tabs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/memberhub/internal/theme"
)

// ActiveMarker prefixes the active tab label so the strip stays readable
// without color.
const ActiveMarker = "▸"

// Label returns the plain strip label for the tab at position i.
func Label(i int, d Descriptor, active bool) string {
	marker := " "
	if active {
		marker = ActiveMarker
	}
	text := d.Label
	if g := d.Icon.Glyph(); g != "" {
		text = g + " " + text
	}
	return fmt.Sprintf("%s%d:%s", marker, i+1, text)
}

// RenderStrip draws the one-line navigation strip, truncated to width.
func (s *Shell) RenderStrip(width int) string {
	parts := make([]string, 0, len(s.descriptors))
	for i, d := range s.descriptors {
		label := Label(i, d, i == s.active)
		if i == s.active {
			parts = append(parts, theme.ActiveTab.Render(label))
		} else {
			parts = append(parts, theme.InactiveTab.Render(label))
		}
	}
	line := strings.Join(parts, theme.TabSep.Render("│"))
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
