package api

import (
	"log/slog"
	"time"

	"rungoal/app/service/dialog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TurnRequest is one inbound turn: the platform-recognized intent plus
// raw slot values for the given user.
type TurnRequest struct {
	UserID string            `json:"user_id" validate:"required"`
	Intent string            `json:"intent" validate:"required"`
	Slots  map[string]string `json:"slots"`
}

// TurnResponse is the outgoing turn. SessionOpen tells the platform to
// keep listening for the next utterance.
type TurnResponse struct {
	Utterance   string `json:"utterance"`
	Reprompt    string `json:"reprompt,omitempty"`
	SessionOpen bool   `json:"session_open"`
}

func (s *Server) handleTurn(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	start := time.Now()

	var req TurnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed turn payload",
		})
	}

	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := s.skillSvc.HandleTurn(c.Context(), req.UserID, dialog.Intent{
		Name:  req.Intent,
		Slots: req.Slots,
	})
	if err != nil {
		slog.Error("Turn failed",
			"request_id", requestID,
			"intent", req.Intent,
			"error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "turn failed",
		})
	}

	slog.Debug("Turn served",
		"request_id", requestID,
		"intent", req.Intent,
		"duration", time.Since(start))

	return c.JSON(TurnResponse{
		Utterance:   resp.Text,
		Reprompt:    resp.Reprompt,
		SessionOpen: !resp.EndSession,
	})
}
