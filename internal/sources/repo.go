package sources

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a referenced source does not exist.
var ErrNotFound = errors.New("source not found")

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) Create(ctx context.Context, userID, name string, typ Type) (Source, error) {
	var s Source
	err := r.Pool.QueryRow(ctx, `
INSERT INTO sources (user_id, name, type, balance)
VALUES ($1::uuid, $2, $3, 0)
RETURNING id::text, name, type, balance, user_id::text, created_at
`, userID, name, typ).Scan(&s.ID, &s.Name, &s.Type, &s.Balance, &s.UserID, &s.CreatedAt)
	if err != nil {
		return Source{}, err
	}
	return s, nil
}

func (r *Repo) Get(ctx context.Context, id string) (Source, error) {
	var s Source
	err := r.Pool.QueryRow(ctx, `
SELECT id::text, name, type, balance, user_id::text, created_at
FROM sources
WHERE id = $1::uuid
`, id).Scan(&s.ID, &s.Name, &s.Type, &s.Balance, &s.UserID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Source{}, ErrNotFound
	}
	if err != nil {
		return Source{}, err
	}
	return s, nil
}

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Source, error) {
	rows, err := r.Pool.Query(ctx, `
SELECT id::text, name, type, balance, user_id::text, created_at
FROM sources
WHERE user_id = $1::uuid
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Source, 0, 8)
	for rows.Next() {
		var s Source
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.Balance, &s.UserID, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SetBalance overwrites a source's balance with rawCents, sign-adjusted
// for credit cards. Returns the stored value.
func (r *Repo) SetBalance(ctx context.Context, sourceID string, rawCents int64) (int64, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var typ Type
	err = tx.QueryRow(ctx, `SELECT type FROM sources WHERE id = $1::uuid FOR UPDATE`, sourceID).Scan(&typ)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	stored := StoredBalance(typ, rawCents)
	if _, err := tx.Exec(ctx, `UPDATE sources SET balance = $1 WHERE id = $2::uuid`, stored, sourceID); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return stored, nil
}
