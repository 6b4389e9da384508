package theme

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestPaletteColorsAreDistinctHex(t *testing.T) {
	colors := []lipgloss.Color{
		Rosewater, Pink, Mauve, Red, Peach, Yellow, Green, Teal, Sky, Blue, Lavender,
		Text, Subtext0, Overlay1, Overlay0, Surface2, Surface0, Base, Mantle,
	}
	seen := map[string]bool{}
	for _, c := range colors {
		require.Regexp(t, hexColor, string(c))
		require.False(t, seen[string(c)], "duplicate %s", c)
		seen[string(c)] = true
	}
}

func TestSemanticAliases(t *testing.T) {
	require.Equal(t, Blue, Accent)
	require.Equal(t, Green, Success)
	require.Equal(t, Red, Error)
	require.Equal(t, Yellow, Warning)
}
