// services/seed.go
package services

import (
	"log"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"elo-board-system/models"
)

var seedTitle = cases.Title(language.English)

// SeedSampleData populates an empty container with a few games and
// players through the same public operations the API uses. A container
// that already holds games is left alone.
func SeedSampleData(container *models.GameContainer) {
	if len(container.AllGames()) > 0 {
		return
	}

	chess := models.NewTablefootball("chess", seedTitle.String("chess"), "Classic strategy board game", 1200, 32)
	pingPong := models.NewTablefootball("ping-pong", seedTitle.String("ping pong"), "Table tennis game", 1500, 24)
	foosball := models.NewTablefootball("foosball", seedTitle.String("foosball"), "Office table football", 0, 0)
	foosball.AllowTeams = true

	darts := models.NewDart("darts-501", seedTitle.String("darts 501"), "Standard 501 countdown darts", 0, 0)

	container.AddGame(chess)
	container.AddGame(pingPong)
	container.AddGame(foosball)
	container.AddGame(darts)

	for _, name := range []string{"alice johnson", "bob smith", "charlie davis", "diana evans"} {
		display := seedTitle.String(name)
		container.AddPlayer(models.NewPlayer(display, ""))
	}

	log.Printf("✅ Seeded sample data: %d games, %d players",
		len(container.AllGames()), len(container.AllPlayers()))
}
