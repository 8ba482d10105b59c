// handlers/game.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"elo-board-system/services"
)

func SetupGameRoutes(app *fiber.App, gameService *services.GameService) {
	app.Get("/api/games", gameService.GetAllGames)
	app.Get("/api/games/:id", gameService.GetGameByID)
	app.Post("/api/games", gameService.CreateGame)
	app.Put("/api/games/:id", gameService.UpdateGame)
	app.Delete("/api/games/:id", gameService.DeleteGame)
}
