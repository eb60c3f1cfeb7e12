package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type Entry struct {
	UserID     *string
	Action     string
	EntityType string
	EntityID   *string
	Metadata   []byte
}

// Log writes audit entries to the audit_logs table. Writes are best
// effort: failures are logged, never returned to the request path.
type Log struct {
	Pool   *pgxpool.Pool
	Logger zerolog.Logger
}

func New(pool *pgxpool.Pool, logger zerolog.Logger) *Log {
	return &Log{Pool: pool, Logger: logger}
}

func (l *Log) Record(ctx context.Context, e Entry) {
	if l == nil || l.Pool == nil {
		return
	}

	var metadata interface{}
	if len(e.Metadata) > 0 {
		metadata = json.RawMessage(e.Metadata)
	}

	_, err := l.Pool.Exec(ctx, `
INSERT INTO audit_logs (user_id, action, entity_type, entity_id, metadata)
VALUES ($1, $2, $3, $4, $5)
`, e.UserID, e.Action, e.EntityType, e.EntityID, metadata)
	if err != nil {
		l.Logger.Warn().Err(err).Str("action", e.Action).Msg("audit write failed")
	}
}
