package repository

import (
	"context"
	"database/sql"

	"github.com/jask/memberhub/internal/listing"
)

// EventRepo handles events.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Upsert(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO events(id, title, location, format, status, starts_on, capacity, registered)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 location=excluded.location,
	 format=excluded.format,
	 status=excluded.status,
	 starts_on=excluded.starts_on,
	 capacity=excluded.capacity,
	 registered=excluded.registered,
	 updated_at=CURRENT_TIMESTAMP;
	`, e.ID, e.Title, e.Location, e.Format, e.Status, e.StartsOn, e.Capacity, e.Registered)
	return err
}

func (r *EventRepo) List(ctx context.Context) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, location, format, status, starts_on, capacity, registered, created_at, updated_at
	FROM events ORDER BY starts_on, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.Format, &e.Status, &e.StartsOn,
			&e.Capacity, &e.Registered, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "events")
}

// Records lists events as list-panel records.
func (r *EventRepo) Records(ctx context.Context) ([]listing.Record, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]listing.Record, 0, len(list))
	for _, e := range list {
		out = append(out, e.Record())
	}
	return out, nil
}
