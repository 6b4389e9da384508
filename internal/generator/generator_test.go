package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/memberhub/internal/listing"
)

func TestGeneratedRecordsFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	members := Members(rng, 2000, now)
	require.Len(t, members, 2000)

	records := make([]listing.Record, 0, len(members))
	for _, m := range members {
		require.NotEmpty(t, m.ID)
		records = append(records, m.Record())
	}
	p, err := listing.NewPanel([]listing.Field{
		{Name: "name", Mode: listing.MatchSubstring},
		{Name: "country", Mode: listing.MatchExact},
	}, records)
	require.NoError(t, err)

	p.SetFilter("country", "Kenya")
	for _, r := range p.Visible() {
		require.Equal(t, "Kenya", r.Get("country"))
	}
	p.SetSearch("OKAFOR")
	for _, r := range p.Visible() {
		require.Contains(t, r.Get("name"), "Okafor")
	}
}

func TestGeneratedEventsRespectCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, e := range Events(rng, 200, time.Now()) {
		require.LessOrEqual(t, e.Registered, e.Capacity)
		if e.Location == "Online" {
			require.Equal(t, "virtual", e.Format)
		}
	}
	for _, r := range Resources(rng, 200, time.Now()) {
		if r.PublishedOn == "" {
			require.Equal(t, "draft", r.Status)
		}
	}
}

func BenchmarkFilterLargeDirectory(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	members := Members(rng, 10000, time.Now())
	records := make([]listing.Record, 0, len(members))
	for _, m := range members {
		records = append(records, m.Record())
	}
	fields := []listing.Field{
		{Name: "name", Mode: listing.MatchSubstring},
		{Name: "email", Mode: listing.MatchSubstring},
		{Name: "country", Mode: listing.MatchExact},
	}
	state := listing.FilterState{Search: "ka", Selected: map[string]string{"country": "Ghana"}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = listing.Filter(records, fields, state)
	}
}

func TestSameSeedSameRows(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	a := Members(rand.New(rand.NewSource(42)), 50, now)
	b := Members(rand.New(rand.NewSource(42)), 50, now)
	require.Equal(t, a, b)

	c := Members(rand.New(rand.NewSource(43)), 50, now)
	require.NotEqual(t, a[0].ID, c[0].ID)

	seen := map[string]bool{}
	for _, m := range a {
		require.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}
