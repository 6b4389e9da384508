package tabs

import (
	"errors"
	"strings"
)

var ErrUnknownIcon = errors.New("tabs: unknown icon")

// Icon is a symbolic icon reference. Only the constants below are recognised.
type Icon string

const (
	IconNone      Icon = "none"
	IconOverview  Icon = "overview"
	IconMembers   Icon = "members"
	IconResources Icon = "resources"
	IconEvents    Icon = "events"
	IconSettings  Icon = "settings"
)

var iconGlyphs = map[Icon]string{
	IconNone:      "",
	IconOverview:  "◆",
	IconMembers:   "☺",
	IconResources: "▤",
	IconEvents:    "◷",
	IconSettings:  "⚙",
}

func (i Icon) Valid() bool {
	_, ok := iconGlyphs[i]
	return ok
}

// Glyph returns the terminal glyph for i, or "" for unknown icons.
func (i Icon) Glyph() string { return iconGlyphs[i] }

// ParseIcon maps a config string onto the closed icon set. Case and
// surrounding space are ignored; an empty string is IconNone.
func ParseIcon(s string) (Icon, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return IconNone, nil
	}
	icon := Icon(s)
	if !icon.Valid() {
		return IconNone, ErrUnknownIcon
	}
	return icon, nil
}
