// handlers/match.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"elo-board-system/services"
)

func SetupMatchRoutes(app *fiber.App, matchService *services.MatchService) {
	app.Post("/api/matches", matchService.RecordMatch)
	app.Post("/api/matches/scored", matchService.RecordScoredMatch)
}
