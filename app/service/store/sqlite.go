package store

import (
	"context"
	"database/sql"
	"errors"

	"rungoal/app/service/dialog"

	"github.com/samber/oops"
	_ "modernc.org/sqlite"
)

var _ Store = (*SQLiteStore)(nil)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, oops.Errorf("failed to open sqlite database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, oops.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS session_attributes (
		user_id TEXT PRIMARY KEY,
		distance INTEGER NOT NULL,
		duration TEXT NOT NULL,
		state TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Load(ctx context.Context, userID string) (dialog.Attributes, error) {
	query := `
		SELECT distance, duration, state
		FROM session_attributes
		WHERE user_id = ?
	`

	var attrs dialog.Attributes
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&attrs.Distance, &attrs.Duration, &attrs.State)
	if errors.Is(err, sql.ErrNoRows) {
		return dialog.Attributes{}, ErrNotFound
	}
	if err != nil {
		return dialog.Attributes{}, oops.Errorf("failed to load attributes: %w", err)
	}

	return attrs, nil
}

func (s *SQLiteStore) Save(ctx context.Context, userID string, attrs dialog.Attributes) error {
	query := `
		INSERT INTO session_attributes (user_id, distance, duration, state, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			distance = excluded.distance,
			duration = excluded.duration,
			state = excluded.state,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, userID, attrs.Distance, attrs.Duration, attrs.State); err != nil {
		return oops.Errorf("failed to save attributes: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context, userID string) error {
	query := `DELETE FROM session_attributes WHERE user_id = ?`

	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return oops.Errorf("failed to clear attributes: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Shutdown() error {
	return s.db.Close()
}
