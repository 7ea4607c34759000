package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SnapshotRepository stores at most one serialized cart per
// (merchant, session) key. Load returns (nil, nil) when no snapshot exists.
type SnapshotRepository interface {
	Load(ctx context.Context, merchantID, sessionID string) ([]byte, error)
	Save(ctx context.Context, merchantID, sessionID string, payload []byte) error
	Delete(ctx context.Context, merchantID, sessionID string) error
}

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to mock the database in tests.
type DBPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PostgresSnapshotRepository struct {
	pool DBPool
}

func NewPostgresSnapshotRepository(pool DBPool) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{pool: pool}
}

func (r *PostgresSnapshotRepository) Load(ctx context.Context, merchantID, sessionID string) ([]byte, error) {
	var payload []byte
	row := r.pool.QueryRow(ctx,
		`SELECT payload FROM cart_snapshots WHERE merchant_id=$1 AND session_id=$2`,
		merchantID, sessionID)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

func (r *PostgresSnapshotRepository) Save(ctx context.Context, merchantID, sessionID string, payload []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cart_snapshots (merchant_id, session_id, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (merchant_id, session_id) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = now()
	`, merchantID, sessionID, payload)
	return err
}

func (r *PostgresSnapshotRepository) Delete(ctx context.Context, merchantID, sessionID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM cart_snapshots WHERE merchant_id=$1 AND session_id=$2`,
		merchantID, sessionID)
	return err
}
