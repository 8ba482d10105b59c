// services/dart_service.go
package services

import (
	"github.com/gofiber/fiber/v2"

	"elo-board-system/models"
)

type DartService struct {
	Container *models.GameContainer
}

func NewDartService(container *models.GameContainer) *DartService {
	return &DartService{Container: container}
}

type createDartMatchRequest struct {
	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id"`
}

// CreateMatch starts a countdown match on the dart game in the path.
func (s *DartService) CreateMatch(c *fiber.Ctx) error {
	var req createDartMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Player1ID == "" || req.Player2ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "player1_id and player2_id are required"})
	}

	match, err := s.Container.CreateDartMatch(c.Params("id"), req.Player1ID, req.Player2ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(match)
}

// ListMatches returns the dart game's match history, in-progress
// matches included.
func (s *DartService) ListMatches(c *fiber.Ctx) error {
	matches, err := s.Container.DartMatches(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(matches)
}

type recordScoreRequest struct {
	PlayerID    string `json:"player_id"`
	Score       int    `json:"score"`
	DartsThrown int    `json:"darts_thrown"`
}

// RecordScore applies one scoring turn to a match. Winning the match
// also applies the Elo update, and the response carries the changes.
func (s *DartService) RecordScore(c *fiber.Ctx) error {
	var req recordScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.PlayerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "player_id is required"})
	}
	if req.DartsThrown <= 0 {
		req.DartsThrown = 3
	}

	result, err := s.Container.RecordDartScore(c.Params("id"), c.Params("matchId"), req.PlayerID, req.Score, req.DartsThrown)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// PlayerAverage returns the player's mean three-dart average across all
// their matches in the game.
func (s *DartService) PlayerAverage(c *fiber.Ctx) error {
	average, err := s.Container.DartPlayerAverage(c.Params("id"), c.Params("playerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"player_id": c.Params("playerId"),
		"average":   average,
	})
}

// PlayerScores returns the player's full turn-score history for the
// game.
func (s *DartService) PlayerScores(c *fiber.Ctx) error {
	scores, err := s.Container.DartPlayerScores(c.Params("id"), c.Params("playerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"player_id": c.Params("playerId"),
		"scores":    scores,
	})
}
