// services/game_service.go
package services

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"elo-board-system/models"
)

type GameService struct {
	Container *models.GameContainer
}

func NewGameService(container *models.GameContainer) *GameService {
	return &GameService{Container: container}
}

// GameView is the transport shape for a game: shared config plus a type
// discriminator and the variant-specific settings.
type GameView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	InitialRating int    `json:"initial_elo_rating"`
	KFactor       int    `json:"k_factor"`
	Type          string `json:"type"`

	MaxGoals   int  `json:"max_goals,omitempty"`
	AllowTeams bool `json:"allow_teams,omitempty"`

	StartingScore int    `json:"starting_score,omitempty"`
	DoubleOut     bool   `json:"double_out,omitempty"`
	Mode          string `json:"mode,omitempty"`
}

func toGameView(cfg models.GameConfig) GameView {
	view := GameView{
		ID:            cfg.ID,
		Name:          cfg.Name,
		Description:   cfg.Description,
		InitialRating: cfg.InitialRating,
		KFactor:       cfg.KFactor,
		Type:          string(cfg.Kind),
	}
	switch cfg.Kind {
	case models.KindTablefootball:
		view.MaxGoals = cfg.MaxGoals
		view.AllowTeams = cfg.AllowTeams
	case models.KindDart:
		view.StartingScore = cfg.StartingScore
		view.DoubleOut = cfg.DoubleOut
		view.Mode = string(cfg.Mode)
	}
	return view
}

// GetAllGames returns every registered game.
func (s *GameService) GetAllGames(c *fiber.Ctx) error {
	configs := s.Container.GameConfigs()
	views := make([]GameView, 0, len(configs))
	for _, cfg := range configs {
		views = append(views, toGameView(cfg))
	}
	return c.JSON(views)
}

// GetGameByID returns one game or 404.
func (s *GameService) GetGameByID(c *fiber.Ctx) error {
	cfg, ok := s.Container.GameConfigByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	return c.JSON(toGameView(cfg))
}

type createGameRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	InitialRating int    `json:"initial_elo_rating"`
	KFactor       int    `json:"k_factor"`

	MaxGoals   int  `json:"max_goals"`
	AllowTeams bool `json:"allow_teams"`

	StartingScore int    `json:"starting_score"`
	DoubleOut     *bool  `json:"double_out"`
	Mode          string `json:"mode"`
}

// gameID derives a url-friendly id from the display name, falling back
// to a uuid suffix when the slug is taken.
func (s *GameService) gameID(name string) string {
	id := slug.Make(name)
	if id == "" {
		return uuid.NewString()
	}
	if s.Container.HasGame(id) {
		id = id + "-" + uuid.NewString()[:8]
	}
	return id
}

// CreateGame registers a new game of the requested type.
func (s *GameService) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	id := s.gameID(req.Name)

	var game models.Game
	switch strings.ToLower(req.Type) {
	case "tablefootball", "table_football", "":
		table := models.NewTablefootball(id, req.Name, req.Description, req.InitialRating, req.KFactor)
		if req.MaxGoals > 0 {
			table.MaxGoals = req.MaxGoals
		}
		table.AllowTeams = req.AllowTeams
		game = table
	case "dart":
		dart := models.NewDart(id, req.Name, req.Description, req.InitialRating, req.KFactor)
		if req.StartingScore > 0 {
			dart.StartingScore = req.StartingScore
		}
		if req.DoubleOut != nil {
			dart.DoubleOut = *req.DoubleOut
		}
		if req.Mode != "" {
			dart.Mode = models.DartMode(req.Mode)
		}
		game = dart
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported game type: " + req.Type})
	}

	// The view is read before the game is shared with the container.
	view := toGameView(models.ConfigOf(game))
	s.Container.AddGame(game)
	return c.Status(fiber.StatusCreated).JSON(view)
}

type updateGameRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	InitialRating int    `json:"initial_elo_rating"`
	KFactor       int    `json:"k_factor"`
}

// UpdateGame edits shared configuration. Rating parameters only affect
// matches recorded after the update; nothing is recomputed.
func (s *GameService) UpdateGame(c *fiber.Ctx) error {
	var req updateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	cfg, err := s.Container.UpdateGameConfig(c.Params("id"), req.Name, req.Description, req.InitialRating, req.KFactor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toGameView(cfg))
}

// DeleteGame removes a game from the registry.
func (s *GameService) DeleteGame(c *fiber.Ctx) error {
	s.Container.RemoveGame(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
