// services/errors.go
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elo-board-system/models"
)

// respondError translates a core failure value into the matching HTTP
// response. The distinctions matter to clients: a missing entity is a
// 404, an unsupported play mode or out-of-match scorer is a bad request,
// and scoring a finished match is a conflict.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrTeamPlayUnsupported):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrMatchCompleted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrPlayerNotInMatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
