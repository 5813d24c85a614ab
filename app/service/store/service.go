// Package store persists one session-attributes record per user
// across skill invocations.
package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"rungoal/app/config"
	"rungoal/app/service/dialog"

	"github.com/samber/do"
	"github.com/samber/oops"
)

// ErrNotFound means no record exists yet for the user.
var ErrNotFound = errors.New("attributes not found")

// Store is the persistence contract the turn dispatcher depends on.
// Save overwrites the user's single record, Clear removes it. Any
// failure is infrastructure-level and fatal for the turn.
type Store interface {
	Load(ctx context.Context, userID string) (dialog.Attributes, error)
	Save(ctx context.Context, userID string, attrs dialog.Attributes) error
	Clear(ctx context.Context, userID string) error
}

// New provides the backend selected by config.
func New(di *do.Injector) (Store, error) {
	cfg := do.MustInvoke[*config.Config](di)

	if dir := filepath.Dir(cfg.Store.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, oops.Errorf("failed to create store directory: %w", err)
		}
	}

	switch cfg.Store.Backend {
	case "file":
		return NewFileStore(cfg.Store.Path)
	default:
		return NewSQLiteStore(cfg.Store.Path)
	}
}
