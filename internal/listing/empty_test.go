package listing

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestSuggestClosestWord(t *testing.T) {
	records := directory()
	require.Equal(t, "okafor", Suggest(records, directoryFields, "okafer"))
	require.Equal(t, "kimani", Suggest(records, directoryFields, "KIMANY"))
	require.Empty(t, Suggest(records, directoryFields, "zzz"))
	require.Empty(t, Suggest(records, directoryFields, ""))
}

func TestSuggestSkipsExactFields(t *testing.T) {
	// "kenya" only appears in the country column, which is not searchable.
	require.Empty(t, Suggest(directory(), directoryFields, "kenyaa"))
}

func TestEmptyStateCarriesSuggestion(t *testing.T) {
	p := newDirectoryPanel(t)
	p.SetSearch("mensha")
	empty, ok := p.EmptyState()
	require.True(t, ok)
	require.Equal(t, "mensah", empty.Suggestion)

	out := ansi.Strip(Render(p, []Column{{Field: "name", Title: "Name"}}, 80, 10))
	require.Contains(t, out, `Did you mean "mensah"?`)
}

func TestRenderRowsAndSummary(t *testing.T) {
	p := newDirectoryPanel(t)
	p.SetFilter("country", "Kenya")
	p.SortBy("name", true)
	cols := []Column{{Field: "name", Title: "Name", Width: 20}, {Field: "status", Title: "Status"}}

	out := ansi.Strip(Render(p, cols, 60, 10))
	lines := strings.Split(out, "\n")
	require.True(t, strings.HasPrefix(lines[0], "2 of 4"))
	require.Contains(t, lines[0], "Country=Kenya")
	require.Contains(t, lines[1], "Name ↑")
	require.Contains(t, lines[2], "Sarah Kimani")
	require.Contains(t, lines[3], "Wanjiru Otieno")
	for _, l := range lines {
		require.LessOrEqual(t, ansi.StringWidth(l), 60)
	}
}

func TestRenderZeroSize(t *testing.T) {
	p := newDirectoryPanel(t)
	require.Empty(t, Render(p, nil, 0, 10))
	require.Empty(t, Render(p, nil, 10, 0))
}

func TestRenderScrollsToCursor(t *testing.T) {
	p := newDirectoryPanel(t)
	p.MoveCursor(3)
	out := ansi.Strip(Render(p, []Column{{Field: "name", Title: "Name"}}, 40, 4))
	require.Contains(t, out, "Wanjiru Otieno")
	require.NotContains(t, out, "Sarah Kimani")
}
