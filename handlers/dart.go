// handlers/dart.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"elo-board-system/services"
)

func SetupDartRoutes(app *fiber.App, dartService *services.DartService) {
	app.Post("/api/games/:id/dart/matches", dartService.CreateMatch)
	app.Get("/api/games/:id/dart/matches", dartService.ListMatches)
	app.Post("/api/games/:id/dart/matches/:matchId/scores", dartService.RecordScore)
	app.Get("/api/games/:id/dart/players/:playerId/average", dartService.PlayerAverage)
	app.Get("/api/games/:id/dart/players/:playerId/scores", dartService.PlayerScores)
}
