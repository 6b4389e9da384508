package repository

import (
	"context"
	"database/sql"

	"github.com/jask/memberhub/internal/listing"
)

// MemberRepo handles members.
type MemberRepo struct {
	db *sql.DB
}

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{db: db} }

func (r *MemberRepo) Upsert(ctx context.Context, m Member) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO members(id, name, email, country, tier, status, joined_on)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 email=excluded.email,
	 country=excluded.country,
	 tier=excluded.tier,
	 status=excluded.status,
	 joined_on=excluded.joined_on,
	 updated_at=CURRENT_TIMESTAMP;
	`, m.ID, m.Name, m.Email, m.Country, m.Tier, m.Status, m.JoinedOn)
	return err
}

func (r *MemberRepo) List(ctx context.Context) ([]Member, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, email, country, tier, status, joined_on, created_at, updated_at
	FROM members ORDER BY joined_on DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Country, &m.Tier, &m.Status, &m.JoinedOn, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MemberRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "members")
}

// Records lists members as list-panel records.
func (r *MemberRepo) Records(ctx context.Context) ([]listing.Record, error) {
	members, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]listing.Record, 0, len(members))
	for _, m := range members {
		out = append(out, m.Record())
	}
	return out, nil
}

func count(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}
