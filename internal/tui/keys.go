package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/memberhub/internal/listing"
	"github.com/jask/memberhub/internal/theme"
)

type keyMap struct {
	Quit        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Up          key.Binding
	Down        key.Binding
	Search      key.Binding
	Filter      key.Binding
	FilterField key.Binding
	Clear       key.Binding
	Sort        key.Binding
	SortDir     key.Binding
	Reload      key.Binding
	New         key.Binding
	Edit        key.Binding
	Delete      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev tab")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		FilterField: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "filter field")),
		Clear:       key.NewBinding(key.WithKeys(listing.ClearFiltersKey), key.WithHelp(listing.ClearFiltersKey, "clear")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		SortDir:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "reverse")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		New:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

// listHelp is shown under list tabs, overviewHelp under the overview.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.FilterField, k.Clear, k.Sort, k.New, k.Edit, k.Delete, k.NextTab, k.Quit}
}

func (k keyMap) overviewHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.Reload, k.Quit}
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, theme.Key.Render(h.Key)+" "+theme.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
