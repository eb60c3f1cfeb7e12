package transactions

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BCarroll524/money-tracker-turbo/internal/sources"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

type CreateParams struct {
	Name      string
	Amount    int64
	Label     string
	Type      TxType
	CreatedAt time.Time
	UserID    string
	SourceID  string
}

// Create inserts the transaction and decrements the source balance by
// its amount in one database transaction. The decrement is
// unconditional for every source type; only direct balance sets carry
// the credit-card sign flip.
func (r *Repo) Create(ctx context.Context, p CreateParams) (Transaction, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return Transaction{}, err
	}
	defer tx.Rollback(ctx)

	var out Transaction
	err = tx.QueryRow(ctx, `
INSERT INTO transactions (name, amount, label, type, created_at, user_id, source_id)
VALUES ($1, $2, $3, $4, $5, $6::uuid, $7::uuid)
RETURNING id::text, name, amount, label, type, created_at, user_id::text, source_id::text
`, p.Name, p.Amount, p.Label, p.Type, p.CreatedAt, p.UserID, p.SourceID).
		Scan(&out.ID, &out.Name, &out.Amount, &out.Label, &out.Type, &out.CreatedAt, &out.UserID, &out.SourceID)
	if err != nil {
		return Transaction{}, err
	}

	res, err := tx.Exec(ctx, `UPDATE sources SET balance = balance - $1 WHERE id = $2::uuid`, p.Amount, p.SourceID)
	if err != nil {
		return Transaction{}, err
	}
	if res.RowsAffected() == 0 {
		return Transaction{}, sources.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return Transaction{}, err
	}
	return out, nil
}

// ListByUser returns all of a user's transactions, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx, `
SELECT id::text, name, amount, label, type, created_at, user_id::text, source_id::text
FROM transactions
WHERE user_id = $1::uuid
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0, 32)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Name, &t.Amount, &t.Label, &t.Type, &t.CreatedAt, &t.UserID, &t.SourceID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TotalSpent sums a user's transaction amounts; no history means zero.
func (r *Repo) TotalSpent(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.Pool.QueryRow(ctx, `
SELECT COALESCE(SUM(amount), 0)::bigint
FROM transactions
WHERE user_id = $1::uuid
`, userID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
