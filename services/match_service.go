// services/match_service.go
package services

import (
	"github.com/gofiber/fiber/v2"

	"elo-board-system/models"
)

type MatchService struct {
	Container *models.GameContainer
}

func NewMatchService(container *models.GameContainer) *MatchService {
	return &MatchService{Container: container}
}

type recordMatchRequest struct {
	GameID       string   `json:"game_id"`
	WinnerIDs    []string `json:"winner_ids"`
	LoserIDs     []string `json:"loser_ids"`
	WinnerScores []int    `json:"winner_scores"`
	LoserScores  []int    `json:"loser_scores"`
	IsTeamMatch  bool     `json:"is_team_match"`
}

// RecordMatch records one finished match. Team matches build ad-hoc
// teams from the id lists; a scored 1v1 on a table football game lands
// in that game's match history; everything else takes the side-average
// group update. The applied rating changes come back in the response.
func (s *MatchService) RecordMatch(c *fiber.Ctx) error {
	var req recordMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.GameID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "game_id is required"})
	}
	if len(req.WinnerIDs) == 0 && len(req.LoserIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "winner_ids or loser_ids are required"})
	}

	var (
		changes []models.RatingChange
		err     error
	)
	if req.IsTeamMatch {
		changes, err = s.Container.RecordTeamMatchByIDs(req.GameID, req.WinnerIDs, req.LoserIDs)
	} else {
		changes, err = s.Container.RecordGroupMatch(req.GameID, req.WinnerIDs, req.LoserIDs, req.WinnerScores, req.LoserScores)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rating_changes": changes})
}

type recordScoredMatchRequest struct {
	GameID    string `json:"game_id"`
	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id"`
	Score1    int    `json:"player1_score"`
	Score2    int    `json:"player2_score"`
}

// RecordScoredMatch records a plain two-player result from raw scores.
// Winner and loser come from the strict score comparison: equal scores
// credit player 2.
func (s *MatchService) RecordScoredMatch(c *fiber.Ctx) error {
	var req recordScoredMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.GameID == "" || req.Player1ID == "" || req.Player2ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "game_id, player1_id and player2_id are required"})
	}

	changes, err := s.Container.RecordScoredMatch(req.GameID, req.Player1ID, req.Player2ID, req.Score1, req.Score2)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rating_changes": changes})
}
