package repository

import (
	"context"
	"fmt"

	"brickset/client/internal/response"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS sets (
	set_id     BIGINT PRIMARY KEY,
	number     TEXT NOT NULL,
	theme      TEXT,
	year       INT,
	data       JSONB NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS minifigs (
	minifig_number TEXT PRIMARY KEY,
	owned_total    INT NOT NULL,
	wanted         BOOLEAN NOT NULL,
	data           JSONB NOT NULL,
	fetched_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// ArchiveRepository stores fetched sets and minifigs so a collection can be
// browsed offline.
type ArchiveRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveSets(ctx context.Context, sets []response.Set) error
	SaveMinifigs(ctx context.Context, minifigs []response.Minifig) error
	CountSets(ctx context.Context) (int, error)
}

type archiveRepository struct {
	db *pgxpool.Pool
}

func NewArchiveRepository(db *pgxpool.Pool) ArchiveRepository {
	return &archiveRepository{
		db: db,
	}
}

func (r *archiveRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}
	return nil
}

func (r *archiveRepository) SaveSets(ctx context.Context, sets []response.Set) error {
	query := `
	INSERT INTO sets (set_id, number, theme, year, data, fetched_at)
	VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (set_id)
	DO UPDATE SET number = $2, theme = $3, year = $4, data = $5, fetched_at = now()`

	batch := &pgx.Batch{}
	for _, set := range sets {
		batch.Queue(query, int64(set.SetID), set.FullNumber(), set.Theme.OrElse(""), set.Year, set)
	}

	if err := r.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to save %d sets: %w", len(sets), err)
	}
	return nil
}

func (r *archiveRepository) SaveMinifigs(ctx context.Context, minifigs []response.Minifig) error {
	query := `
	INSERT INTO minifigs (minifig_number, owned_total, wanted, data, fetched_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (minifig_number)
	DO UPDATE SET owned_total = $2, wanted = $3, data = $4, fetched_at = now()`

	batch := &pgx.Batch{}
	for _, minifig := range minifigs {
		batch.Queue(query, minifig.MinifigNumber, minifig.OwnedTotal, minifig.Wanted, minifig)
	}

	if err := r.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to save %d minifigs: %w", len(minifigs), err)
	}
	return nil
}

func (r *archiveRepository) CountSets(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM sets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sets: %w", err)
	}
	return count, nil
}

func (r *archiveRepository) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	return r.db.SendBatch(ctx, batch).Close()
}
