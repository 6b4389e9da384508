// Package fixtures reads a member directory from a YAML file. It serves as
// a data provider for demos and tests, in place of the database.
package fixtures

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jask/memberhub/internal/database/repository"
	"github.com/jask/memberhub/internal/listing"
)

// File is the YAML document layout.
type File struct {
	Members   []Member   `yaml:"members"`
	Resources []Resource `yaml:"resources"`
	Events    []Event    `yaml:"events"`
}

type Member struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Country  string `yaml:"country"`
	Tier     string `yaml:"tier"`
	Status   string `yaml:"status"`
	JoinedOn string `yaml:"joined_on"`
}

type Resource struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Kind        string `yaml:"kind"`
	Category    string `yaml:"category"`
	Author      string `yaml:"author"`
	Status      string `yaml:"status"`
	Downloads   int    `yaml:"downloads"`
	PublishedOn string `yaml:"published_on"`
}

type Event struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Location   string `yaml:"location"`
	Format     string `yaml:"format"`
	Status     string `yaml:"status"`
	StartsOn   string `yaml:"starts_on"`
	Capacity   int    `yaml:"capacity"`
	Registered int    `yaml:"registered"`
}

// Decode parses a fixture document. Entries without an id get a positional one.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	for i := range f.Members {
		if f.Members[i].ID == "" {
			f.Members[i].ID = fmt.Sprintf("member-%d", i+1)
		}
	}
	for i := range f.Resources {
		if f.Resources[i].ID == "" {
			f.Resources[i].ID = fmt.Sprintf("resource-%d", i+1)
		}
	}
	for i := range f.Events {
		if f.Events[i].ID == "" {
			f.Events[i].ID = fmt.Sprintf("event-%d", i+1)
		}
	}
	return &f, nil
}

// Load reads and decodes the fixture file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Encode writes f as YAML.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode fixtures: %w", err)
	}
	return enc.Close()
}

func (m Member) model() repository.Member {
	return repository.Member{ID: m.ID, Name: m.Name, Email: m.Email, Country: m.Country, Tier: m.Tier, Status: m.Status, JoinedOn: m.JoinedOn}
}

func (r Resource) model() repository.Resource {
	return repository.Resource{ID: r.ID, Title: r.Title, Kind: r.Kind, Category: r.Category, Author: r.Author,
		Status: r.Status, Downloads: r.Downloads, PublishedOn: r.PublishedOn}
}

func (e Event) model() repository.Event {
	return repository.Event{ID: e.ID, Title: e.Title, Location: e.Location, Format: e.Format, Status: e.Status,
		StartsOn: e.StartsOn, Capacity: e.Capacity, Registered: e.Registered}
}

// Models converts the fixture entries to repository models, e.g. for seeding.
func (f *File) Models() ([]repository.Member, []repository.Resource, []repository.Event) {
	members := make([]repository.Member, 0, len(f.Members))
	for _, m := range f.Members {
		members = append(members, m.model())
	}
	resources := make([]repository.Resource, 0, len(f.Resources))
	for _, r := range f.Resources {
		resources = append(resources, r.model())
	}
	events := make([]repository.Event, 0, len(f.Events))
	for _, e := range f.Events {
		events = append(events, e.model())
	}
	return members, resources, events
}

// FromModels builds a fixture document from repository models.
func FromModels(members []repository.Member, resources []repository.Resource, events []repository.Event) *File {
	f := &File{}
	for _, m := range members {
		f.Members = append(f.Members, Member{ID: m.ID, Name: m.Name, Email: m.Email, Country: m.Country, Tier: m.Tier, Status: m.Status, JoinedOn: m.JoinedOn})
	}
	for _, r := range resources {
		f.Resources = append(f.Resources, Resource{ID: r.ID, Title: r.Title, Kind: r.Kind, Category: r.Category, Author: r.Author,
			Status: r.Status, Downloads: r.Downloads, PublishedOn: r.PublishedOn})
	}
	for _, e := range events {
		f.Events = append(f.Events, Event{ID: e.ID, Title: e.Title, Location: e.Location, Format: e.Format, Status: e.Status,
			StartsOn: e.StartsOn, Capacity: e.Capacity, Registered: e.Registered})
	}
	return f
}

// MemberProvider serves the fixture members as panel records.
func (f *File) MemberProvider() listing.Provider {
	return listing.ProviderFunc(func(context.Context) ([]listing.Record, error) {
		out := make([]listing.Record, 0, len(f.Members))
		for _, m := range f.Members {
			out = append(out, m.model().Record())
		}
		return out, nil
	})
}

func (f *File) ResourceProvider() listing.Provider {
	return listing.ProviderFunc(func(context.Context) ([]listing.Record, error) {
		out := make([]listing.Record, 0, len(f.Resources))
		for _, r := range f.Resources {
			out = append(out, r.model().Record())
		}
		return out, nil
	})
}

func (f *File) EventProvider() listing.Provider {
	return listing.ProviderFunc(func(context.Context) ([]listing.Record, error) {
		out := make([]listing.Record, 0, len(f.Events))
		for _, e := range f.Events {
			out = append(out, e.model().Record())
		}
		return out, nil
	})
}
