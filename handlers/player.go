// handlers/player.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"elo-board-system/services"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService) {
	// The leaderboard route registers before :id so "leaderboard" is
	// not taken for a player id.
	app.Get("/api/players/leaderboard", playerService.GetLeaderboard)

	app.Get("/api/players", playerService.GetAllPlayers)
	app.Get("/api/players/:id", playerService.GetPlayerByID)
	app.Post("/api/players", playerService.CreatePlayer)
	app.Put("/api/players/:id", playerService.UpdatePlayer)
	app.Delete("/api/players/:id", playerService.DeletePlayer)
}
