// Package skill dispatches one recognized turn through the dialogue
// state machine and the attributes store.
package skill

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rungoal/app/config"
	"rungoal/app/service/dialog"
	"rungoal/app/service/store"

	"github.com/samber/do"
	"github.com/samber/oops"
)

type Service struct {
	cfg      *config.Config
	storeSvc store.Store
	machine  *dialog.Machine
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	msgs, err := dialog.LoadCatalog(cfg.Dialog.Messages)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:      cfg,
		storeSvc: do.MustInvoke[store.Store](di),
		machine:  dialog.NewMachine(msgs),
	}, nil
}

// HandleTurn runs one request/response cycle: load the persisted
// attributes, compute the transition, persist the result. Store
// failures abort the turn; the transition itself is pure, so nothing
// is half-written.
func (s *Service) HandleTurn(ctx context.Context, userID string, in dialog.Intent) (dialog.Response, error) {
	start := time.Now()

	attrs, err := s.storeSvc.Load(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		attrs = dialog.Attributes{State: dialog.StateNone}
	} else if err != nil {
		return dialog.Response{}, oops.Errorf("failed to load attributes: %w", err)
	}

	next, resp := s.machine.Next(attrs, in)

	if next.State == dialog.StateNone {
		err = s.storeSvc.Clear(ctx, userID)
	} else {
		err = s.storeSvc.Save(ctx, userID, next)
	}
	if err != nil {
		return dialog.Response{}, oops.Errorf("failed to persist attributes: %w", err)
	}

	slog.Info("Processed turn",
		"intent", in.Name,
		"state", attrs.State,
		"next_state", next.State,
		"session_open", !resp.EndSession,
		"duration", time.Since(start))

	return resp, nil
}
