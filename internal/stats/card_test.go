package stats

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/memberhub/internal/listing"
	"github.com/jask/memberhub/internal/tabs"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Card{Label: "Members", Value: IntValue(3)}.Validate())
	require.NoError(t, Card{Label: "Next event", Value: TextValue("AGM"), Tone: ToneInfo, Icon: tabs.IconEvents}.Validate())

	require.ErrorIs(t, Card{Label: " "}.Validate(), ErrEmptyLabel)
	require.ErrorIs(t, Card{Label: "x", Tone: "bg-purple-500"}.Validate(), ErrUnknownTone)
	require.ErrorIs(t, Card{Label: "x", Icon: "rocket"}.Validate(), tabs.ErrUnknownIcon)

	c := Card{Label: "Events", Icon: "EVENTS"}
	require.NoError(t, c.Validate())
	require.Equal(t, tabs.IconEvents, c.Normalize().Icon)
}

func TestNormalizeDefaults(t *testing.T) {
	c := Card{Label: "x"}.Normalize()
	require.Equal(t, ToneNeutral, c.Tone)
	require.Equal(t, tabs.IconNone, c.Icon)
}

func TestValueText(t *testing.T) {
	require.Equal(t, "42", IntValue(42).Text())
	n, ok := IntValue(42).Int()
	require.True(t, ok)
	require.Equal(t, 42, n)

	v := TextValue("n/a")
	require.True(t, v.IsText())
	_, ok = v.Int()
	require.False(t, ok)
	require.Equal(t, "n/a", v.Text())
}

func TestRenderShowsLabelAndValue(t *testing.T) {
	out := ansi.Strip(Card{Label: "Active", Value: IntValue(12), Tone: ToneSuccess, Icon: tabs.IconMembers}.Render(24))
	require.Contains(t, out, tabs.IconMembers.Glyph()+" Active")
	require.Contains(t, out, "12")
}

func TestRowJoinsCards(t *testing.T) {
	cards := []Card{
		{Label: "A", Value: IntValue(1)},
		{Label: "B", Value: IntValue(2)},
	}
	out := ansi.Strip(Row(cards, 40))
	first := strings.Split(out, "\n")[1]
	require.Contains(t, first, "A")
	require.Contains(t, first, "B")
	require.Empty(t, Row(nil, 40))
}

func TestSummarize(t *testing.T) {
	records := []listing.Record{
		{ID: "1", Fields: map[string]string{"status": "active"}},
		{ID: "2", Fields: map[string]string{"status": "pending"}},
		{ID: "3", Fields: map[string]string{"status": "active"}},
	}
	require.Equal(t, []Count{{Value: "active", N: 2}, {Value: "pending", N: 1}}, Summarize(records, "status"))
	require.Equal(t, 2, CountOf(records, "status", "active"))
	require.Equal(t, 0, CountOf(records, "status", "lapsed"))
}
