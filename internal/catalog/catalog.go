// Package catalog declares the console's tabs and list panels: which fields
// each panel searches or filters on, which columns it shows, and where its
// records come from.
package catalog

import (
	"database/sql"
	"fmt"

	"github.com/jask/memberhub/internal/database/repository"
	"github.com/jask/memberhub/internal/fixtures"
	"github.com/jask/memberhub/internal/listing"
	"github.com/jask/memberhub/internal/tabs"
)

const (
	TabOverview  = "overview"
	TabMembers   = "members"
	TabResources = "resources"
	TabEvents    = "events"
)

// Sources injects the record providers of the list panels.
type Sources struct {
	Members   listing.Provider
	Resources listing.Provider
	Events    listing.Provider
}

// FromDatabase reads every panel from sqlite repositories.
func FromDatabase(db *sql.DB) Sources {
	return Sources{
		Members:   repository.NewMemberRepo(db),
		Resources: repository.NewResourceRepo(db),
		Events:    repository.NewEventRepo(db),
	}
}

// FromFixtures reads every panel from a decoded fixture file.
func FromFixtures(f *fixtures.File) Sources {
	return Sources{
		Members:   f.MemberProvider(),
		Resources: f.ResourceProvider(),
		Events:    f.EventProvider(),
	}
}

// Definition is one list tab.
type Definition struct {
	Tab      tabs.Descriptor
	Fields   []listing.Field
	Columns  []listing.Column
	Provider listing.Provider
}

// NewPanel builds an empty panel for d; records arrive through Load.
func (d Definition) NewPanel() (*listing.Panel, error) {
	p, err := listing.NewPanel(d.Fields, nil)
	if err != nil {
		return nil, fmt.Errorf("panel %s: %w", d.Tab.ID, err)
	}
	return p, nil
}

func OverviewTab() tabs.Descriptor {
	return tabs.Descriptor{ID: TabOverview, Label: "Overview", Icon: tabs.IconOverview}
}

// Definitions returns the list tabs in display order.
func Definitions(src Sources) []Definition {
	return []Definition{
		{
			Tab: tabs.Descriptor{ID: TabMembers, Label: "Members", Icon: tabs.IconMembers},
			Fields: []listing.Field{
				{Name: "name", Label: "Name", Mode: listing.MatchSubstring},
				{Name: "email", Label: "Email", Mode: listing.MatchSubstring},
				{Name: "country", Label: "Country", Mode: listing.MatchExact},
				{Name: "tier", Label: "Tier", Mode: listing.MatchExact},
				{Name: "status", Label: "Status", Mode: listing.MatchExact},
				{Name: "joined_on", Label: "Joined", Mode: listing.MatchSubstring},
			},
			Columns: []listing.Column{
				{Field: "name", Title: "Name", Width: 22},
				{Field: "email", Title: "Email"},
				{Field: "country", Title: "Country", Width: 13},
				{Field: "tier", Title: "Tier", Width: 9},
				{Field: "status", Title: "Status", Width: 8},
				{Field: "joined_on", Title: "Joined", Width: 10},
			},
			Provider: src.Members,
		},
		{
			Tab: tabs.Descriptor{ID: TabResources, Label: "Resources", Icon: tabs.IconResources},
			Fields: []listing.Field{
				{Name: "title", Label: "Title", Mode: listing.MatchSubstring},
				{Name: "author", Label: "Author", Mode: listing.MatchSubstring},
				{Name: "kind", Label: "Kind", Mode: listing.MatchExact},
				{Name: "category", Label: "Category", Mode: listing.MatchExact},
				{Name: "status", Label: "Status", Mode: listing.MatchExact},
				{Name: "downloads", Label: "Downloads", Mode: listing.MatchExact},
				{Name: "published_on", Label: "Published", Mode: listing.MatchSubstring},
			},
			Columns: []listing.Column{
				{Field: "title", Title: "Title"},
				{Field: "kind", Title: "Kind", Width: 10},
				{Field: "category", Title: "Category", Width: 11},
				{Field: "author", Title: "Author", Width: 16},
				{Field: "status", Title: "Status", Width: 10},
				{Field: "downloads", Title: "Downloads", Width: 9},
				{Field: "published_on", Title: "Published", Width: 10},
			},
			Provider: src.Resources,
		},
		{
			Tab: tabs.Descriptor{ID: TabEvents, Label: "Events", Icon: tabs.IconEvents},
			Fields: []listing.Field{
				{Name: "title", Label: "Title", Mode: listing.MatchSubstring},
				{Name: "location", Label: "Location", Mode: listing.MatchSubstring},
				{Name: "format", Label: "Format", Mode: listing.MatchExact},
				{Name: "status", Label: "Status", Mode: listing.MatchExact},
				{Name: "starts_on", Label: "Date", Mode: listing.MatchSubstring},
				{Name: "capacity", Label: "Capacity", Mode: listing.MatchExact},
				{Name: "registered", Label: "Registered", Mode: listing.MatchExact},
			},
			Columns: []listing.Column{
				{Field: "starts_on", Title: "Date", Width: 10},
				{Field: "title", Title: "Title"},
				{Field: "location", Title: "Location", Width: 10},
				{Field: "format", Title: "Format", Width: 9},
				{Field: "status", Title: "Status", Width: 9},
				{Field: "registered", Title: "Reg.", Width: 5},
				{Field: "capacity", Title: "Cap.", Width: 5},
			},
			Provider: src.Events,
		},
	}
}

// Descriptors returns the full tab strip: overview first, then the list tabs.
func Descriptors(defs []Definition) []tabs.Descriptor {
	out := make([]tabs.Descriptor, 0, len(defs)+1)
	out = append(out, OverviewTab())
	for _, d := range defs {
		out = append(out, d.Tab)
	}
	return out
}

// Lookup finds the list tab with the given id.
func Lookup(defs []Definition, id string) (Definition, bool) {
	for _, d := range defs {
		if d.Tab.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
