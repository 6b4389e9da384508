// Package tui is the interactive console: a tab strip over the overview and
// the list panels declared in catalog.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/memberhub/internal/catalog"
	"github.com/jask/memberhub/internal/listing"
	"github.com/jask/memberhub/internal/tabs"
)

// Options configure New. Zero values are usable.
type Options struct {
	InitialTab string
	DateFormat string
	Logger     *zap.Logger
	Now        func() time.Time
}

// App is the root bubbletea model.
type App struct {
	ctx  context.Context
	log  *zap.Logger
	keys keyMap

	shell  *tabs.Shell
	defs   []catalog.Definition
	panels map[string]*listing.Panel
	loaded map[string]bool
	failed map[string]error // last load error per tab, cleared by a successful load

	filterField map[string]int // index into the panel's discrete fields
	sortColumn  map[string]int // index into the definition's columns, -1 = unsorted

	search    textinput.Model
	searching bool

	width, height int
	status        string
	statusErr     bool
	dateFormat    string
	now           func() time.Time
}

// New builds the console over defs. It fails only when the tab set itself
// is invalid.
func New(ctx context.Context, defs []catalog.Definition, opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.DateFormat == "" {
		opts.DateFormat = "2006-01-02"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	shell, err := tabs.NewShell(catalog.Descriptors(defs), opts.InitialTab)
	if err != nil {
		return nil, fmt.Errorf("build tabs: %w", err)
	}
	if opts.InitialTab != "" && !shell.Has(opts.InitialTab) {
		opts.Logger.Warn("unknown initial tab, using first", zap.String("tab", opts.InitialTab))
	}

	inp := textinput.New()
	inp.Placeholder = "Search"
	inp.Prompt = "/ "
	inp.CharLimit = 128

	a := &App{
		ctx:         ctx,
		log:         opts.Logger,
		keys:        defaultKeys(),
		shell:       shell,
		defs:        defs,
		panels:      make(map[string]*listing.Panel, len(defs)),
		loaded:      make(map[string]bool, len(defs)),
		failed:      make(map[string]error, len(defs)),
		filterField: make(map[string]int, len(defs)),
		sortColumn:  make(map[string]int, len(defs)),
		search:      inp,
		width:       100,
		height:      30,
		dateFormat:  opts.DateFormat,
		now:         opts.Now,
	}
	shell.OnSelect = a.onSelectTab

	for _, d := range defs {
		p, err := d.NewPanel()
		if err != nil {
			return nil, err
		}
		p.Hooks = a.panelHooks(d.Tab.ID)
		a.panels[d.Tab.ID] = p
		a.sortColumn[d.Tab.ID] = -1
	}
	return a, nil
}

func (a *App) onSelectTab(prev, next tabs.Descriptor) {
	a.log.Debug("tab selected", zap.String("from", prev.ID), zap.String("to", next.ID))
	a.searching = false
	a.search.Blur()
	if err := a.failed[next.ID]; err != nil {
		a.setError(errMsg{tab: next.ID, err: err}.Error())
	} else if a.statusErr {
		a.setStatus("")
	}
	if p := a.activePanel(); p != nil {
		a.search.SetValue(p.Search())
	} else {
		a.search.SetValue("")
	}
}

func (a *App) panelHooks(tab string) listing.Hooks {
	return listing.Hooks{
		OnSearchChange: func(term string) {
			a.log.Debug("search changed", zap.String("tab", tab), zap.String("term", term))
		},
		OnFilterChange: func(field, value string) {
			a.log.Debug("filter changed", zap.String("tab", tab), zap.String("field", field), zap.String("value", value))
		},
		OnClearFilters: func() {
			a.log.Debug("filters cleared", zap.String("tab", tab))
		},
	}
}

type recordsMsg struct {
	tab     string
	records []listing.Record
}

type errMsg struct {
	tab string
	err error
}

func (e errMsg) Error() string { return e.tab + ": " + e.err.Error() }

type statusMsg string

func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.defs))
	for _, d := range a.defs {
		cmds = append(cmds, a.loadCmd(d))
	}
	return tea.Batch(cmds...)
}

// loadCmd fetches records off the event loop; the panel is updated when the
// resulting message is handled.
func (a *App) loadCmd(d catalog.Definition) tea.Cmd {
	ctx, tab, provider := a.ctx, d.Tab.ID, d.Provider
	return func() tea.Msg {
		if provider == nil {
			return errMsg{tab: tab, err: listing.ErrNilProvider}
		}
		records, err := provider.Records(ctx)
		if err != nil {
			return errMsg{tab: tab, err: err}
		}
		return recordsMsg{tab: tab, records: records}
	}
}

func (a *App) reloadAll() tea.Cmd {
	a.setStatus("reloading...")
	return a.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.search.Width = max(10, m.Width/3)
	case tea.KeyMsg:
		if a.searching {
			return a.updateSearch(m)
		}
		return a.handleKey(m)
	case recordsMsg:
		if p, ok := a.panels[m.tab]; ok {
			p.SetRecords(m.records)
			a.loaded[m.tab] = true
			delete(a.failed, m.tab)
			a.log.Debug("records loaded", zap.String("tab", m.tab), zap.Int("count", len(m.records)))
		}
	case errMsg:
		a.log.Warn("load records", zap.String("tab", m.tab), zap.Error(m.err))
		a.failed[m.tab] = m.err
		a.setError(m.Error())
	case statusMsg:
		a.setStatus(string(m))
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if n, err := strconv.Atoi(m.String()); err == nil && n >= 1 && n <= 9 {
		a.shell.SelectIndex(n - 1)
		return a, nil
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.NextTab):
		a.shell.Next()
		return a, nil
	case key.Matches(m, a.keys.PrevTab):
		a.shell.Prev()
		return a, nil
	case key.Matches(m, a.keys.Reload):
		return a, a.reloadAll()
	}

	p := a.activePanel()
	if p == nil {
		return a, nil
	}
	tab := a.shell.ActiveID()
	switch {
	case key.Matches(m, a.keys.Up):
		p.MoveCursor(-1)
	case key.Matches(m, a.keys.Down):
		p.MoveCursor(1)
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.search.SetValue(p.Search())
		a.search.CursorEnd()
		return a, a.search.Focus()
	case key.Matches(m, a.keys.FilterField):
		fields := p.DiscreteFields()
		if len(fields) > 0 {
			a.filterField[tab] = (a.filterField[tab] + 1) % len(fields)
			a.setStatus("filter field: " + fields[a.filterField[tab]].Label)
		}
	case key.Matches(m, a.keys.Filter):
		if f, ok := a.currentFilterField(); ok {
			v := p.CycleFilter(f.Name)
			if v == "" {
				v = "all"
			}
			a.setStatus(f.Label + ": " + v)
		}
	case key.Matches(m, a.keys.Clear):
		p.ClearFilters()
		a.search.SetValue("")
		a.setStatus("filters cleared")
	case key.Matches(m, a.keys.Sort):
		a.cycleSort(tab, p)
	case key.Matches(m, a.keys.SortDir):
		if field, asc := p.Sort(); field != "" {
			p.SortBy(field, !asc)
		}
	case key.Matches(m, a.keys.New), key.Matches(m, a.keys.Edit), key.Matches(m, a.keys.Delete):
		a.setStatus(m.String() + ": " + errActionUnavailable.Error())
	}
	return a, nil
}

var errActionUnavailable = errors.New("not available in this console")

func (a *App) updateSearch(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := a.activePanel()
	switch m.Type {
	case tea.KeyEnter:
		a.searching = false
		a.search.Blur()
		return a, nil
	case tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		if p != nil {
			p.SetSearch("")
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	if p != nil {
		p.SetSearch(a.search.Value())
	}
	return a, cmd
}

func (a *App) cycleSort(tab string, p *listing.Panel) {
	d, ok := catalog.Lookup(a.defs, tab)
	if !ok || len(d.Columns) == 0 {
		return
	}
	next := a.sortColumn[tab] + 1
	if next >= len(d.Columns) {
		a.sortColumn[tab] = -1
		p.SortBy("", true)
		a.setStatus("sort: default")
		return
	}
	a.sortColumn[tab] = next
	p.SortBy(d.Columns[next].Field, true)
	a.setStatus("sort: " + d.Columns[next].Title)
}

func (a *App) currentFilterField() (listing.Field, bool) {
	p := a.activePanel()
	if p == nil {
		return listing.Field{}, false
	}
	fields := p.DiscreteFields()
	if len(fields) == 0 {
		return listing.Field{}, false
	}
	i := a.filterField[a.shell.ActiveID()] % len(fields)
	return fields[i], true
}

// activePanel returns nil on the overview tab.
func (a *App) activePanel() *listing.Panel {
	return a.panels[a.shell.ActiveID()]
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

// Panel exposes a tab's panel for non-interactive callers.
func (a *App) Panel(tab string) (*listing.Panel, bool) {
	p, ok := a.panels[tab]
	return p, ok
}

func (a *App) ActiveTab() string { return a.shell.ActiveID() }

func (a *App) Status() string { return a.status }
