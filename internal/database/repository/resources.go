package repository

import (
	"context"
	"database/sql"

	"github.com/jask/memberhub/internal/listing"
)

// ResourceRepo handles library resources.
type ResourceRepo struct {
	db *sql.DB
}

func NewResourceRepo(db *sql.DB) *ResourceRepo { return &ResourceRepo{db: db} }

func (r *ResourceRepo) Upsert(ctx context.Context, res Resource) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO resources(id, title, kind, category, author, status, downloads, published_on)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 kind=excluded.kind,
	 category=excluded.category,
	 author=excluded.author,
	 status=excluded.status,
	 downloads=excluded.downloads,
	 published_on=excluded.published_on,
	 updated_at=CURRENT_TIMESTAMP;
	`, res.ID, res.Title, res.Kind, res.Category, res.Author, res.Status, res.Downloads, res.PublishedOn)
	return err
}

func (r *ResourceRepo) List(ctx context.Context) ([]Resource, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, kind, category, author, status, downloads, published_on, created_at, updated_at
	FROM resources ORDER BY published_on DESC, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Resource
	for rows.Next() {
		var res Resource
		if err := rows.Scan(&res.ID, &res.Title, &res.Kind, &res.Category, &res.Author, &res.Status,
			&res.Downloads, &res.PublishedOn, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *ResourceRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "resources")
}

// Records lists resources as list-panel records.
func (r *ResourceRepo) Records(ctx context.Context) ([]listing.Record, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]listing.Record, 0, len(list))
	for _, res := range list {
		out = append(out, res.Record())
	}
	return out, nil
}
