package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eater-scraper/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a pgx connection pool. The pool is
// safe for concurrent use; each query checks out its own connection, so
// workers never share a session.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the restaurant tables. Note the deliberate lack
// of a UNIQUE constraint on address: the reconciler is the sole
// enforcement point for the one-row-per-address invariant.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		address TEXT NOT NULL,
		source TEXT,
		source_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_restaurants_address ON restaurants(address);
	CREATE INDEX IF NOT EXISTS idx_restaurants_source ON restaurants(source);

	CREATE TABLE IF NOT EXISTS restaurant_llm_info (
		restaurant_id BIGINT PRIMARY KEY REFERENCES restaurants(id) ON DELETE CASCADE ON UPDATE CASCADE,
		cuisine TEXT,
		vibe TEXT,
		llm_model_version TEXT,
		generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

// WithTx runs fn inside a transaction, rolling back on any error or
// panic path and committing otherwise. Callers that need a scoped
// session get the acquire/use/release guarantee here.
func (s *PostgresStore) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const restaurantColumns = `id, name, description, address, source, source_url, created_at, updated_at`

func scanRestaurant(row pgx.Row) (*models.Restaurant, error) {
	var r models.Restaurant
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Address, &r.Source, &r.SourceURL, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *PostgresStore) FindRestaurantByAddress(ctx context.Context, address string) (*models.Restaurant, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE address = $1 LIMIT 1`, address)
	return scanRestaurant(row)
}

func (s *PostgresStore) GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	return scanRestaurant(row)
}

func (s *PostgresStore) CreateRestaurant(ctx context.Context, rec models.Record) (*models.Restaurant, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO restaurants (name, description, address, source, source_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+restaurantColumns,
		rec.Name, rec.Description, rec.Address, rec.Source, rec.SourceURL)

	r, err := scanRestaurant(row)
	if err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) UpdateRestaurant(ctx context.Context, id int64, rec models.Record) (*models.Restaurant, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE restaurants
		SET name = $2, description = $3, address = $4, source = $5, source_url = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING `+restaurantColumns,
		id, rec.Name, rec.Description, rec.Address, rec.Source, rec.SourceURL)

	r, err := scanRestaurant(row)
	if err != nil {
		return nil, fmt.Errorf("update restaurant %d: %w", id, err)
	}
	return r, nil
}

func (s *PostgresStore) DeleteRestaurant(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete restaurant %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

const llmInfoColumns = `restaurant_id, cuisine, vibe, llm_model_version, generated_at`

func scanLLMInfo(row pgx.Row) (*models.RestaurantLLMInfo, error) {
	var info models.RestaurantLLMInfo
	err := row.Scan(&info.RestaurantID, &info.Cuisine, &info.Vibe, &info.LLMModelVersion, &info.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *PostgresStore) UpsertLLMInfo(ctx context.Context, info models.RestaurantLLMInfo) (*models.RestaurantLLMInfo, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO restaurant_llm_info (restaurant_id, cuisine, vibe, llm_model_version)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (restaurant_id) DO UPDATE
		SET cuisine = EXCLUDED.cuisine,
		    vibe = EXCLUDED.vibe,
		    llm_model_version = EXCLUDED.llm_model_version,
		    generated_at = NOW()
		RETURNING `+llmInfoColumns,
		info.RestaurantID, info.Cuisine, info.Vibe, info.LLMModelVersion)

	out, err := scanLLMInfo(row)
	if err != nil {
		return nil, fmt.Errorf("upsert llm info for restaurant %d: %w", info.RestaurantID, err)
	}
	return out, nil
}

func (s *PostgresStore) GetLLMInfo(ctx context.Context, restaurantID int64) (*models.RestaurantLLMInfo, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+llmInfoColumns+` FROM restaurant_llm_info WHERE restaurant_id = $1`, restaurantID)
	return scanLLMInfo(row)
}

func (s *PostgresStore) DeleteLLMInfo(ctx context.Context, restaurantID int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM restaurant_llm_info WHERE restaurant_id = $1`, restaurantID)
	if err != nil {
		return false, fmt.Errorf("delete llm info for restaurant %d: %w", restaurantID, err)
	}
	return tag.RowsAffected() > 0, nil
}
