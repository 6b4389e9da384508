package repository

import (
	"strconv"
	"time"

	"github.com/jask/memberhub/internal/listing"
)

// Member status values.
const (
	MemberActive  = "active"
	MemberPending = "pending"
	MemberLapsed  = "lapsed"
)

// Event status values.
const (
	EventScheduled = "scheduled"
	EventFull      = "full"
	EventCancelled = "cancelled"
	EventCompleted = "completed"
)

// Resource status values.
const (
	ResourceDraft     = "draft"
	ResourcePublished = "published"
	ResourceArchived  = "archived"
)

// Member represents a member row.
type Member struct {
	ID        string
	Name      string
	Email     string
	Country   string
	Tier      string
	Status    string
	JoinedOn  string // YYYY-MM-DD
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resource represents a library resource row (guides, templates, recordings).
type Resource struct {
	ID          string
	Title       string
	Kind        string
	Category    string
	Author      string
	Status      string
	Downloads   int
	PublishedOn string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Event represents an event row.
type Event struct {
	ID         string
	Title      string
	Location   string
	Format     string
	Status     string
	StartsOn   string
	Capacity   int
	Registered int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (m Member) Record() listing.Record {
	return listing.Record{ID: m.ID, Fields: map[string]string{
		"name":      m.Name,
		"email":     m.Email,
		"country":   m.Country,
		"tier":      m.Tier,
		"status":    m.Status,
		"joined_on": m.JoinedOn,
	}}
}

func (r Resource) Record() listing.Record {
	return listing.Record{ID: r.ID, Fields: map[string]string{
		"title":        r.Title,
		"kind":         r.Kind,
		"category":     r.Category,
		"author":       r.Author,
		"status":       r.Status,
		"downloads":    strconv.Itoa(r.Downloads),
		"published_on": r.PublishedOn,
	}}
}

func (e Event) Record() listing.Record {
	return listing.Record{ID: e.ID, Fields: map[string]string{
		"title":      e.Title,
		"location":   e.Location,
		"format":     e.Format,
		"status":     e.Status,
		"starts_on":  e.StartsOn,
		"capacity":   strconv.Itoa(e.Capacity),
		"registered": strconv.Itoa(e.Registered),
	}}
}
