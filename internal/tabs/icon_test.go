package tabs

import "testing"

func TestParseIcon(t *testing.T) {
	cases := map[string]Icon{
		"":          IconNone,
		"members":   IconMembers,
		"overview":  IconOverview,
		"settings":  IconSettings,
		"resources": IconResources,
		" Events ":  IconEvents,
	}
	for in, want := range cases {
		got, err := ParseIcon(in)
		if err != nil {
			t.Fatalf("ParseIcon(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseIcon(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseIcon("bg-red-500"); err == nil {
		t.Fatalf("expected unknown icon error")
	}
}

func TestUnknownIconHasNoGlyph(t *testing.T) {
	if g := Icon("star").Glyph(); g != "" {
		t.Fatalf("unexpected glyph %q", g)
	}
	if IconNone.Glyph() != "" {
		t.Fatalf("none icon must render empty")
	}
}
