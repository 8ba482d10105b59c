// services/team_service.go
package services

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"elo-board-system/models"
)

type TeamService struct {
	Container *models.GameContainer
}

func NewTeamService(container *models.GameContainer) *TeamService {
	return &TeamService{Container: container}
}

// TeamView adds the derived team rating to the roster.
type TeamView struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	GameID    string           `json:"game_id"`
	Players   []*models.Player `json:"players"`
	EloRating int              `json:"elo_rating"`
}

func toTeamView(team *models.Team) TeamView {
	return TeamView{
		ID:        team.ID,
		Name:      team.Name,
		GameID:    team.GameID,
		Players:   team.Players,
		EloRating: team.EloRating(),
	}
}

type createTeamRequest struct {
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
}

// CreateTeam registers a team on the table football game in the path.
func (s *TeamService) CreateTeam(c *fiber.Ctx) error {
	var req createTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	team, err := s.Container.CreateTeam(c.Params("id"), req.Name, req.PlayerIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTeamView(team))
}

// ListTeams returns the game's registered teams.
func (s *TeamService) ListTeams(c *fiber.Ctx) error {
	teams, err := s.Container.Teams(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	views := make([]TeamView, 0, len(teams))
	for _, team := range teams {
		views = append(views, toTeamView(team))
	}
	return c.JSON(views)
}

// AddPlayer puts a player on a team. Adding a player twice is reported
// but not an error.
func (s *TeamService) AddPlayer(c *fiber.Ctx) error {
	added, err := s.Container.TeamAddPlayer(c.Params("id"), c.Params("teamId"), c.Params("playerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"added": added})
}

// RemovePlayer takes a player off a team. Removing an absent player is
// a no-op.
func (s *TeamService) RemovePlayer(c *fiber.Ctx) error {
	removed, err := s.Container.TeamRemovePlayer(c.Params("id"), c.Params("teamId"), c.Params("playerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}
