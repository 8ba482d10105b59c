// services/player_service.go
package services

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"elo-board-system/models"
)

type PlayerService struct {
	Container *models.GameContainer
}

func NewPlayerService(container *models.GameContainer) *PlayerService {
	return &PlayerService{Container: container}
}

// GetAllPlayers lists players; with ?game_id= only those holding a
// recorded rating for that game.
func (s *PlayerService) GetAllPlayers(c *fiber.Ctx) error {
	if gameID := c.Query("game_id"); gameID != "" {
		return c.JSON(s.Container.PlayersByGame(gameID))
	}
	return c.JSON(s.Container.AllPlayers())
}

// GetPlayerByID returns one player or 404.
func (s *PlayerService) GetPlayerByID(c *fiber.Ctx) error {
	player, ok := s.Container.GetPlayer(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "player not found"})
	}
	return c.JSON(player)
}

type playerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreatePlayer registers a new player.
func (s *PlayerService) CreatePlayer(c *fiber.Ctx) error {
	var req playerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	player := s.Container.AddPlayer(models.NewPlayer(req.Name, req.Email))
	return c.Status(fiber.StatusCreated).JSON(player)
}

// UpdatePlayer edits a player's profile fields. Ratings are only ever
// changed by match recording.
func (s *PlayerService) UpdatePlayer(c *fiber.Ctx) error {
	var req playerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	player, err := s.Container.UpdatePlayerProfile(c.Params("id"), req.Name, req.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(player)
}

// DeletePlayer removes a player from the registry.
func (s *PlayerService) DeletePlayer(c *fiber.Ctx) error {
	s.Container.RemovePlayer(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// LeaderboardRow is one leaderboard entry with the rating the player
// ranks at, including the game default for unrated players.
type LeaderboardRow struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Rating   int    `json:"elo_rating"`
}

// GetLeaderboard returns all players for ?game_id= sorted descending by
// rating; ?limit= trims the result.
func (s *PlayerService) GetLeaderboard(c *fiber.Ctx) error {
	gameID := c.Query("game_id")
	if gameID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "game_id is required"})
	}

	players := s.Container.Leaderboard(gameID)
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid limit"})
		}
		if limit < len(players) {
			players = players[:limit]
		}
	}

	initial := s.Container.DefaultRatingFor(gameID)
	rows := make([]LeaderboardRow, 0, len(players))
	for i, p := range players {
		rows = append(rows, LeaderboardRow{
			Rank:     i + 1,
			PlayerID: p.ID,
			Name:     p.Name,
			Rating:   p.RatingOr(gameID, initial),
		})
	}
	return c.JSON(rows)
}
