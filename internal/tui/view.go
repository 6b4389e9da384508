package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/memberhub/internal/catalog"
	"github.com/jask/memberhub/internal/database/repository"
	"github.com/jask/memberhub/internal/listing"
	"github.com/jask/memberhub/internal/stats"
	"github.com/jask/memberhub/internal/tabs"
	"github.com/jask/memberhub/internal/theme"
)

const topCountries = 5

func (a *App) View() string {
	width := max(20, a.width)
	header := theme.HeaderBar.Render(bar(theme.Title.Render("memberhub")+"  "+a.now().Format(a.dateFormat), width))
	strip := a.shell.RenderStrip(width)

	var help string
	if a.activePanel() == nil {
		help = renderHelp(a.keys.overviewHelp())
	} else {
		help = renderHelp(a.keys.listHelp())
	}
	status := a.renderStatus(width)

	bodyHeight := max(1, a.height-5)
	var body string
	if a.activePanel() == nil {
		body = a.renderOverview(width)
	} else {
		body = a.renderList(width, bodyHeight)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, strip, body, ansi.Truncate(help, width, ""), status)
}

func (a *App) renderList(width, height int) string {
	tab := a.shell.ActiveID()
	p := a.panels[tab]
	d, _ := catalog.Lookup(a.defs, tab)

	var top string
	if a.searching {
		top = a.search.View()
	} else if f, ok := a.currentFilterField(); ok {
		v := p.Filter(f.Name)
		if v == "" {
			v = "all"
		}
		top = theme.Dim.Render(fmt.Sprintf("filter [%s] %s", f.Label, v))
	}
	err := a.failed[tab]
	if !a.loaded[tab] {
		if err != nil {
			return top + "\n" + theme.StatusErr.Render("Could not load "+d.Tab.Label+": "+err.Error()) +
				"\n" + theme.HelpDesc.Render("[r] Retry")
		}
		return top + "\n" + theme.Dim.Render("Loading...")
	}
	if err != nil {
		top += "  " + theme.StatusErr.Render("reload failed: "+err.Error())
	}
	return ansi.Truncate(top, width, "…") + "\n" + listing.Render(p, d.Columns, width, max(1, height-1))
}

// overviewCards derives the stat tiles from the loaded panels.
func (a *App) overviewCards() []stats.Card {
	count := func(tab, field, value string) stats.Value {
		p, ok := a.panels[tab]
		if !ok || !a.loaded[tab] {
			if a.failed[tab] != nil {
				return stats.TextValue("n/a")
			}
			return stats.TextValue("…")
		}
		if field == "" {
			return stats.IntValue(len(p.Records()))
		}
		return stats.IntValue(stats.CountOf(p.Records(), field, value))
	}
	return []stats.Card{
		{Label: "Members", Value: count(catalog.TabMembers, "", ""), Tone: stats.ToneInfo, Icon: tabs.IconMembers},
		{Label: "Active members", Value: count(catalog.TabMembers, "status", repository.MemberActive), Tone: stats.ToneSuccess, Icon: tabs.IconMembers},
		{Label: "Pending approval", Value: count(catalog.TabMembers, "status", repository.MemberPending), Tone: stats.ToneWarning, Icon: tabs.IconMembers},
		{Label: "Published resources", Value: count(catalog.TabResources, "status", repository.ResourcePublished), Tone: stats.ToneInfo, Icon: tabs.IconResources},
		{Label: "Upcoming events", Value: count(catalog.TabEvents, "status", repository.EventScheduled), Tone: stats.ToneSuccess, Icon: tabs.IconEvents},
		{Label: "Fully booked", Value: count(catalog.TabEvents, "status", repository.EventFull), Tone: stats.ToneDanger, Icon: tabs.IconEvents},
	}
}

func (a *App) renderOverview(width int) string {
	cards := a.overviewCards()
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			a.log.Error("invalid card", zap.String("label", c.Label), zap.Error(err))
			return theme.StatusErr.Render(err.Error())
		}
	}
	perRow := 3
	if width < 60 {
		perRow = 1
	}
	rows := make([]string, 0, len(cards)/perRow+2)
	for i := 0; i < len(cards); i += perRow {
		rows = append(rows, stats.Row(cards[i:min(i+perRow, len(cards))], width))
	}

	if p, ok := a.panels[catalog.TabMembers]; ok && a.loaded[catalog.TabMembers] {
		counts := stats.Summarize(p.Records(), "country")
		if len(counts) > topCountries {
			counts = counts[:topCountries]
		}
		lines := []string{theme.TableHeader.Render("Members by country")}
		for _, c := range counts {
			lines = append(lines, fmt.Sprintf("  %-20s %d", ansi.Truncate(c.Value, 20, "…"), c.N))
		}
		rows = append(rows, strings.Join(lines, "\n"))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderStatus(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.statusErr {
		return theme.StatusErr.Render(bar(msg, width))
	}
	return theme.Status.Render(bar(msg, width))
}

// bar flattens s to one line padded or truncated to width cells.
func bar(s string, width int) string {
	line := ansi.Truncate(strings.ReplaceAll(s, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}
