package taxonomy

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Record is one raw category row as the data source stores it.
// AILabel, Slug and IsActive are nullable; Loader fills the gaps.
type Record struct {
	Name     string
	AILabel  sql.NullString
	Slug     sql.NullString
	Priority int
}

// Store reads category records from Postgres.
type Store struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

// NewStore opens and pings the category database.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, fmt.Errorf("open category db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping category db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS categories (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  ai_label TEXT,
  slug TEXT,
  priority INTEGER NOT NULL DEFAULT 0,
  is_active BOOLEAN
);
CREATE INDEX IF NOT EXISTS idx_categories_priority ON categories (priority DESC);
`)
	})
	return s.schemaErr
}

// ListActive returns eligible category records in descending-priority order.
// A NULL is_active counts as active; only an explicit FALSE excludes a row.
func (s *Store) ListActive(ctx context.Context) ([]Record, error) {
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT name, ai_label, slug, priority
FROM categories
WHERE is_active IS DISTINCT FROM FALSE
ORDER BY priority DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Name, &r.AILabel, &r.Slug, &r.Priority); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// BackfillHypotheses fills empty ai_label columns with "<name> service",
// mirroring what Loader would otherwise synthesize per request. Returns the
// number of rows examined and updated. Used by cmd/backfill only.
func (s *Store) BackfillHypotheses(ctx context.Context, report func(name, label string)) (examined, updated int, err error) {
	if err := s.ensureSchema(); err != nil {
		return 0, 0, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name FROM categories
WHERE ai_label IS NULL OR btrim(ai_label) = ''`)
	if err != nil {
		return 0, 0, err
	}
	type pending struct {
		id   int64
		name string
	}
	var todo []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.id, &p.name); err != nil {
			rows.Close()
			return 0, 0, err
		}
		todo = append(todo, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, 0, err
	}

	for _, p := range todo {
		examined++
		name := strings.TrimSpace(p.name)
		if name == "" {
			continue
		}
		label := name + " service"
		res, err := s.db.ExecContext(ctx,
			`UPDATE categories SET ai_label = $1 WHERE id = $2`, label, p.id)
		if err != nil {
			return examined, updated, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			updated++
			if report != nil {
				report(name, label)
			}
		}
	}
	return examined, updated, nil
}
