package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/memberhub/internal/database/repository"
)

// SampleData is the directory a fresh install starts with.
type SampleData struct {
	Members   []repository.Member
	Resources []repository.Resource
	Events    []repository.Event
}

func seedID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

// DefaultSampleData returns the built-in sample directory with stable IDs.
func DefaultSampleData() SampleData {
	members := []repository.Member{
		{Name: "Sarah Kimani", Email: "sarah.kimani@example.org", Country: "Kenya", Tier: "founding", Status: repository.MemberActive, JoinedOn: "2021-03-14"},
		{Name: "Amara Okafor", Email: "amara.okafor@example.org", Country: "Nigeria", Tier: "standard", Status: repository.MemberActive, JoinedOn: "2022-07-02"},
		{Name: "Kwame Mensah", Email: "kwame.mensah@example.org", Country: "Ghana", Tier: "standard", Status: repository.MemberPending, JoinedOn: "2024-01-19"},
		{Name: "Thandiwe Dlamini", Email: "thandi.dlamini@example.org", Country: "South Africa", Tier: "patron", Status: repository.MemberActive, JoinedOn: "2020-11-30"},
		{Name: "Joseph Mwangi", Email: "joseph.mwangi@example.org", Country: "Kenya", Tier: "student", Status: repository.MemberLapsed, JoinedOn: "2019-05-08"},
		{Name: "Fatima Bello", Email: "fatima.bello@example.org", Country: "Nigeria", Tier: "standard", Status: repository.MemberPending, JoinedOn: "2024-02-11"},
		{Name: "Grace Achieng", Email: "grace.achieng@example.org", Country: "Uganda", Tier: "student", Status: repository.MemberActive, JoinedOn: "2023-09-23"},
	}
	for i := range members {
		members[i].ID = seedID("member", members[i].Email)
	}

	resources := []repository.Resource{
		{Title: "Governance Handbook", Kind: "guide", Category: "Governance", Author: "Board", Status: repository.ResourcePublished, Downloads: 412, PublishedOn: "2023-02-01"},
		{Title: "Grant Application Template", Kind: "template", Category: "Funding", Author: "Sarah Kimani", Status: repository.ResourcePublished, Downloads: 958, PublishedOn: "2023-06-15"},
		{Title: "AGM 2023 Recording", Kind: "recording", Category: "Events", Author: "Secretariat", Status: repository.ResourceArchived, Downloads: 77, PublishedOn: "2023-12-09"},
		{Title: "Mentorship Programme Guide", Kind: "guide", Category: "Programmes", Author: "Amara Okafor", Status: repository.ResourceDraft, Downloads: 0, PublishedOn: ""},
		{Title: "Annual Report 2023", Kind: "report", Category: "Governance", Author: "Board", Status: repository.ResourcePublished, Downloads: 233, PublishedOn: "2024-03-30"},
	}
	for i := range resources {
		resources[i].ID = seedID("resource", resources[i].Title)
	}

	events := []repository.Event{
		{Title: "Annual General Meeting", Location: "Nairobi", Format: "in-person", Status: repository.EventScheduled, StartsOn: "2026-11-21", Capacity: 250, Registered: 118},
		{Title: "Fundraising Masterclass", Location: "Online", Format: "virtual", Status: repository.EventFull, StartsOn: "2026-10-30", Capacity: 100, Registered: 100},
		{Title: "Lagos Chapter Meetup", Location: "Lagos", Format: "in-person", Status: repository.EventScheduled, StartsOn: "2026-12-05", Capacity: 60, Registered: 24},
		{Title: "Board Elections Briefing", Location: "Online", Format: "virtual", Status: repository.EventCompleted, StartsOn: "2026-08-14", Capacity: 300, Registered: 187},
		{Title: "Accra Networking Evening", Location: "Accra", Format: "hybrid", Status: repository.EventCancelled, StartsOn: "2026-09-12", Capacity: 80, Registered: 0},
	}
	for i := range events {
		events[i].ID = seedID("event", events[i].Title)
	}
	return SampleData{Members: members, Resources: resources, Events: events}
}

// sampleSeededKey marks a database that has been offered the sample data once.
const sampleSeededKey = "sample_seeded"

// SeedDefaults loads sample data into an empty database on its first start.
// It runs on every startup: an existing directory is left alone, and a
// directory emptied later (memberhub reset) stays empty.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	done, err := Setting(ctx, db, sampleSeededKey)
	if err != nil {
		return err
	}
	if done != "" {
		return nil
	}
	n, err := repository.NewMemberRepo(db).Count(ctx)
	if err != nil {
		return fmt.Errorf("count members: %w", err)
	}
	if n == 0 {
		if err := Seed(ctx, db, DefaultSampleData()); err != nil {
			return err
		}
	}
	return SetSetting(ctx, db, sampleSeededKey, Now().Format(time.RFC3339))
}

// Setting returns the stored value of key, "" when unset.
func Setting(ctx context.Context, db *sql.DB, key string) (string, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read setting %s: %w", key, err)
	}
	return v, nil
}

// SetSetting stores value under key.
func SetSetting(ctx context.Context, db *sql.DB, key, value string) error {
	if _, err := db.ExecContext(ctx, `
		INSERT INTO settings(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value); err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	return nil
}

// Seed upserts data in one transaction.
func Seed(ctx context.Context, db *sql.DB, data SampleData) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, m := range data.Members {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO members(id, name, email, country, tier, status, joined_on)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
				m.ID, m.Name, m.Email, m.Country, m.Tier, m.Status, m.JoinedOn); err != nil {
				return fmt.Errorf("seed member %s: %w", m.Name, err)
			}
		}
		for _, r := range data.Resources {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO resources(id, title, kind, category, author, status, downloads, published_on)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
				r.ID, r.Title, r.Kind, r.Category, r.Author, r.Status, r.Downloads, r.PublishedOn); err != nil {
				return fmt.Errorf("seed resource %s: %w", r.Title, err)
			}
		}
		for _, e := range data.Events {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO events(id, title, location, format, status, starts_on, capacity, registered)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
				e.ID, e.Title, e.Location, e.Format, e.Status, e.StartsOn, e.Capacity, e.Registered); err != nil {
				return fmt.Errorf("seed event %s: %w", e.Title, err)
			}
		}
		return nil
	})
}
