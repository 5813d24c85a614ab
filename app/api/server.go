// Package api exposes the skill webhook. The voice platform POSTs one
// recognized turn per request and speaks the utterance it gets back.
package api

import (
	"context"
	"errors"
	"log/slog"

	"rungoal/app/config"
	"rungoal/app/service/skill"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

type Server struct {
	cfg      *config.Config
	skillSvc *skill.Service
	validate *validator.Validate

	app *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:      do.MustInvoke[*config.Config](di),
		skillSvc: do.MustInvoke[*skill.Service](di),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "rungoal",
		DisableStartupMessage: true,
	})

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	s.app.Post("/v1/turn", s.handleTurn)

	return s, nil
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.app.Listen(s.cfg.Server.Addr)
	}()

	select {
	case <-ctx.Done():
		if err := s.app.Shutdown(); err != nil {
			slog.Warn("Server shutdown failed", "error", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}
