package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elo-board-system/models"
)

func newTestApp(t *testing.T) (*fiber.App, *models.GameContainer) {
	t.Helper()

	container := models.NewGameContainer("Test Container")

	gameService := NewGameService(container)
	playerService := NewPlayerService(container)
	matchService := NewMatchService(container)
	dartService := NewDartService(container)
	teamService := NewTeamService(container)

	app := fiber.New()
	app.Get("/api/games", gameService.GetAllGames)
	app.Get("/api/games/:id", gameService.GetGameByID)
	app.Post("/api/games", gameService.CreateGame)
	app.Put("/api/games/:id", gameService.UpdateGame)
	app.Delete("/api/games/:id", gameService.DeleteGame)

	app.Get("/api/players/leaderboard", playerService.GetLeaderboard)
	app.Get("/api/players", playerService.GetAllPlayers)
	app.Get("/api/players/:id", playerService.GetPlayerByID)
	app.Post("/api/players", playerService.CreatePlayer)

	app.Post("/api/matches", matchService.RecordMatch)
	app.Post("/api/matches/scored", matchService.RecordScoredMatch)

	app.Post("/api/games/:id/dart/matches", dartService.CreateMatch)
	app.Post("/api/games/:id/dart/matches/:matchId/scores", dartService.RecordScore)
	app.Get("/api/games/:id/dart/players/:playerId/average", dartService.PlayerAverage)

	app.Post("/api/games/:id/teams", teamService.CreateTeam)
	app.Get("/api/games/:id/teams", teamService.ListTeams)

	return app, container
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func TestCreateGameEndpoint(t *testing.T) {
	app, container := newTestApp(t)

	resp, payload := doJSON(t, app, "POST", "/api/games", fiber.Map{
		"name": "Office Foosball",
		"type": "tablefootball",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var view GameView
	require.NoError(t, json.Unmarshal(payload, &view))
	assert.Equal(t, "office-foosball", view.ID)
	assert.Equal(t, "tablefootball", view.Type)
	assert.Equal(t, 1000, view.InitialRating)
	assert.Equal(t, 32, view.KFactor)
	assert.True(t, container.HasGame("office-foosball"))

	// The slug is taken now, so the same name gets a suffixed id.
	resp, payload = doJSON(t, app, "POST", "/api/games", fiber.Map{
		"name": "Office Foosball",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NoError(t, json.Unmarshal(payload, &view))
	assert.NotEqual(t, "office-foosball", view.ID)

	resp, _ = doJSON(t, app, "POST", "/api/games", fiber.Map{
		"name": "Chess",
		"type": "bridge",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestScoredMatchAndLeaderboardEndpoints(t *testing.T) {
	app, container := newTestApp(t)
	container.AddGame(models.NewTablefootball("foos", "Foosball", "", 1000, 32))
	a := container.AddPlayer(models.NewPlayer("Alice", "alice@example.com"))
	b := container.AddPlayer(models.NewPlayer("Bob", "bob@example.com"))

	resp, payload := doJSON(t, app, "POST", "/api/matches/scored", fiber.Map{
		"game_id":       "foos",
		"player1_id":    a.ID,
		"player2_id":    b.ID,
		"player1_score": 10,
		"player2_score": 7,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		RatingChanges []models.RatingChange `json:"rating_changes"`
	}
	require.NoError(t, json.Unmarshal(payload, &result))
	require.Len(t, result.RatingChanges, 2)
	assert.Equal(t, 1016, result.RatingChanges[0].NewRating)

	resp, payload = doJSON(t, app, "GET", "/api/players/leaderboard?game_id=foos", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []LeaderboardRow
	require.NoError(t, json.Unmarshal(payload, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, a.ID, rows[0].PlayerID)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 1016, rows[0].Rating)
	assert.Equal(t, 984, rows[1].Rating)

	// Unknown game id on the match route maps to 404.
	resp, _ = doJSON(t, app, "POST", "/api/matches/scored", fiber.Map{
		"game_id":       "nope",
		"player1_id":    a.ID,
		"player2_id":    b.ID,
		"player1_score": 1,
		"player2_score": 0,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGroupMatchEndpoint(t *testing.T) {
	app, container := newTestApp(t)
	container.AddGame(models.NewTablefootball("foos", "Foosball", "", 1000, 32))
	a := container.AddPlayer(models.NewPlayer("Alice", "alice@example.com"))
	b := container.AddPlayer(models.NewPlayer("Bob", "bob@example.com"))
	d := container.AddPlayer(models.NewPlayer("Carol", "carol@example.com"))

	resp, payload := doJSON(t, app, "POST", "/api/matches", fiber.Map{
		"game_id":    "foos",
		"winner_ids": []string{a.ID, b.ID},
		"loser_ids":  []string{d.ID},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		RatingChanges []models.RatingChange `json:"rating_changes"`
	}
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Len(t, result.RatingChanges, 3)
}

func TestUpdateGameEndpointAppliesToFutureMatchesOnly(t *testing.T) {
	app, container := newTestApp(t)
	container.AddGame(models.NewTablefootball("foos", "Foosball", "", 1000, 32))
	a := container.AddPlayer(models.NewPlayer("Alice", "alice@example.com"))
	b := container.AddPlayer(models.NewPlayer("Bob", "bob@example.com"))

	resp, payload := doJSON(t, app, "POST", "/api/matches/scored", fiber.Map{
		"game_id":       "foos",
		"player1_id":    a.ID,
		"player2_id":    b.ID,
		"player1_score": 10,
		"player2_score": 7,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		RatingChanges []models.RatingChange `json:"rating_changes"`
	}
	require.NoError(t, json.Unmarshal(payload, &result))
	require.Len(t, result.RatingChanges, 2)
	assert.Equal(t, 16, result.RatingChanges[0].Delta)

	resp, payload = doJSON(t, app, "PUT", "/api/games/foos", fiber.Map{
		"k_factor": 16,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var view GameView
	require.NoError(t, json.Unmarshal(payload, &view))
	assert.Equal(t, 16, view.KFactor)

	// Ratings from the earlier match are untouched; the next match is
	// scored with the new K-factor.
	resp, payload = doJSON(t, app, "POST", "/api/matches/scored", fiber.Map{
		"game_id":       "foos",
		"player1_id":    a.ID,
		"player2_id":    b.ID,
		"player1_score": 10,
		"player2_score": 8,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NoError(t, json.Unmarshal(payload, &result))
	require.Len(t, result.RatingChanges, 2)
	assert.Equal(t, 7, result.RatingChanges[0].Delta)
	assert.Equal(t, 1023, result.RatingChanges[0].NewRating)

	resp, payload = doJSON(t, app, "GET", "/api/players/leaderboard?game_id=foos", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rows []LeaderboardRow
	require.NoError(t, json.Unmarshal(payload, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 1023, rows[0].Rating)
	assert.Equal(t, 977, rows[1].Rating)
}

func TestDartEndpoints(t *testing.T) {
	app, container := newTestApp(t)
	container.AddGame(models.NewDart("darts", "Darts", "", 1000, 32))
	a := container.AddPlayer(models.NewPlayer("Alice", "alice@example.com"))
	b := container.AddPlayer(models.NewPlayer("Bob", "bob@example.com"))

	resp, payload := doJSON(t, app, "POST", "/api/games/darts/dart/matches", fiber.Map{
		"player1_id": a.ID,
		"player2_id": b.ID,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var match models.DartMatch
	require.NoError(t, json.Unmarshal(payload, &match))
	assert.Equal(t, 501, match.Player1Remaining)

	scoresPath := "/api/games/darts/dart/matches/" + match.ID + "/scores"
	resp, payload = doJSON(t, app, "POST", scoresPath, fiber.Map{
		"player_id": a.ID,
		"score":     180,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result models.DartScoreResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.False(t, result.Won)
	assert.Equal(t, 321, result.Match.Player1Remaining)

	resp, payload = doJSON(t, app, "POST", scoresPath, fiber.Map{
		"player_id":    a.ID,
		"score":        321,
		"darts_thrown": 9,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.True(t, result.Won)
	require.Len(t, result.Changes, 2)
	assert.Equal(t, 16, result.Changes[0].Delta)

	// A finished match refuses further turns with 409.
	resp, _ = doJSON(t, app, "POST", scoresPath, fiber.Map{
		"player_id": b.ID,
		"score":     60,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, payload = doJSON(t, app, "GET", "/api/games/darts/dart/players/"+a.ID+"/average", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var avg struct {
		Average float64 `json:"average"`
	}
	require.NoError(t, json.Unmarshal(payload, &avg))
	assert.InDelta(t, 125.25, avg.Average, 0.001)
}

func TestTeamEndpoints(t *testing.T) {
	app, container := newTestApp(t)
	foos := models.NewTablefootball("foos", "Foosball", "", 1000, 32)
	foos.AllowTeams = true
	container.AddGame(foos)
	a := container.AddPlayer(models.NewPlayer("Alice", "alice@example.com"))

	resp, payload := doJSON(t, app, "POST", "/api/games/foos/teams", fiber.Map{
		"name":       "Reds",
		"player_ids": []string{a.ID},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var view TeamView
	require.NoError(t, json.Unmarshal(payload, &view))
	assert.Equal(t, "Reds", view.Name)
	assert.Equal(t, 1000, view.EloRating)

	resp, payload = doJSON(t, app, "GET", "/api/games/foos/teams", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var views []TeamView
	require.NoError(t, json.Unmarshal(payload, &views))
	assert.Len(t, views, 1)

	// Dart games have no team registry.
	container.AddGame(models.NewDart("darts", "Darts", "", 1000, 32))
	resp, _ = doJSON(t, app, "GET", "/api/games/darts/teams", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
