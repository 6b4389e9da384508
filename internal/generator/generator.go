package generator

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jask/memberhub/internal/database"
	"github.com/jask/memberhub/internal/database/repository"
)

// Repos bundles repos used by Seed.
type Repos struct {
	Members   *repository.MemberRepo
	Resources *repository.ResourceRepo
	Events    *repository.EventRepo
}

var (
	firstNames = []string{"Sarah", "Amara", "Kwame", "Thandiwe", "Joseph", "Fatima", "Grace", "Tendai", "Nia", "Chidi", "Zawadi", "Kofi"}
	lastNames  = []string{"Kimani", "Okafor", "Mensah", "Dlamini", "Mwangi", "Bello", "Achieng", "Moyo", "Abebe", "Nwosu", "Banda", "Owusu"}
	countries  = []string{"Kenya", "Nigeria", "Ghana", "South Africa", "Uganda", "Zimbabwe", "Ethiopia"}
	tiers      = []string{"student", "standard", "patron", "founding"}
	statuses   = []string{repository.MemberActive, repository.MemberActive, repository.MemberPending, repository.MemberLapsed}
	kinds      = []string{"guide", "template", "recording", "report"}
	categories = []string{"Governance", "Funding", "Programmes", "Events"}
	cities     = []string{"Nairobi", "Lagos", "Accra", "Kampala", "Online"}
)

// newID draws a stable id from rng so a given seed always produces the same
// rows and a repeated seed upserts instead of duplicating.
func newID(rng *rand.Rand, kind string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+strconv.FormatInt(rng.Int63(), 10))).String()
}

// Members returns n random members drawn from rng.
func Members(rng *rand.Rand, n int, now time.Time) []repository.Member {
	out := make([]repository.Member, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		out = append(out, repository.Member{
			ID:       newID(rng, "member"),
			Name:     first + " " + last,
			Email:    fmt.Sprintf("%s.%s.%d@example.org", first, last, i),
			Country:  countries[rng.Intn(len(countries))],
			Tier:     tiers[rng.Intn(len(tiers))],
			Status:   statuses[rng.Intn(len(statuses))],
			JoinedOn: now.AddDate(0, 0, -rng.Intn(2000)).Format("2006-01-02"),
		})
	}
	return out
}

// Resources returns n random library resources drawn from rng.
func Resources(rng *rand.Rand, n int, now time.Time) []repository.Resource {
	out := make([]repository.Resource, 0, n)
	for i := 0; i < n; i++ {
		kind := kinds[rng.Intn(len(kinds))]
		status := repository.ResourcePublished
		published := now.AddDate(0, 0, -rng.Intn(900)).Format("2006-01-02")
		if rng.Intn(10) < 2 {
			status, published = repository.ResourceDraft, ""
		}
		out = append(out, repository.Resource{
			ID:          newID(rng, "resource"),
			Title:       fmt.Sprintf("%s %s #%d", categories[rng.Intn(len(categories))], kind, i+1),
			Kind:        kind,
			Category:    categories[rng.Intn(len(categories))],
			Author:      firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			Status:      status,
			Downloads:   rng.Intn(1500),
			PublishedOn: published,
		})
	}
	return out
}

// Events returns n random events drawn from rng.
func Events(rng *rand.Rand, n int, now time.Time) []repository.Event {
	out := make([]repository.Event, 0, n)
	for i := 0; i < n; i++ {
		city := cities[rng.Intn(len(cities))]
		format := "in-person"
		if city == "Online" {
			format = "virtual"
		}
		capacity := 20 + rng.Intn(280)
		registered := rng.Intn(capacity + 1)
		status := repository.EventScheduled
		if registered == capacity {
			status = repository.EventFull
		}
		out = append(out, repository.Event{
			ID:         newID(rng, "event"),
			Title:      fmt.Sprintf("%s Chapter Session %d", city, i+1),
			Location:   city,
			Format:     format,
			Status:     status,
			StartsOn:   now.AddDate(0, 0, rng.Intn(180)-30).Format("2006-01-02"),
			Capacity:   capacity,
			Registered: registered,
		})
	}
	return out
}

// Seed inserts n random rows per table.
func Seed(ctx context.Context, repos Repos, rng *rand.Rand, n int) error {
	now := database.Now()
	for _, m := range Members(rng, n, now) {
		if err := repos.Members.Upsert(ctx, m); err != nil {
			return fmt.Errorf("seed member: %w", err)
		}
	}
	for _, r := range Resources(rng, n, now) {
		if err := repos.Resources.Upsert(ctx, r); err != nil {
			return fmt.Errorf("seed resource: %w", err)
		}
	}
	for _, e := range Events(rng, n, now) {
		if err := repos.Events.Upsert(ctx, e); err != nil {
			return fmt.Errorf("seed event: %w", err)
		}
	}
	return nil
}
