// handlers/team.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"elo-board-system/services"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService) {
	app.Post("/api/games/:id/teams", teamService.CreateTeam)
	app.Get("/api/games/:id/teams", teamService.ListTeams)
	app.Post("/api/games/:id/teams/:teamId/players/:playerId", teamService.AddPlayer)
	app.Delete("/api/games/:id/teams/:teamId/players/:playerId", teamService.RemovePlayer)
}
