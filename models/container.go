// models/container.go
package models

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"elo-board-system/elo"
)

// GameContainer is the authoritative in-process registry of games and
// players. Every entity is referenced by opaque id, never shared by raw
// pointer across the API boundary, and all operations are serialized by
// the container's mutex: a rating update is a read-modify-write on a
// shared map entry, so concurrent recordings over the same player and
// game must not interleave.
type GameContainer struct {
	mu sync.Mutex

	Name string

	games       map[string]Game
	gameOrder   []string
	players     map[string]*Player
	playerOrder []string
}

// NewGameContainer creates an empty registry.
func NewGameContainer(name string) *GameContainer {
	return &GameContainer{
		Name:    name,
		games:   make(map[string]Game),
		players: make(map[string]*Player),
	}
}

// AddGame registers a game under its id.
func (c *GameContainer) AddGame(game Game) Game {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := game.Info().ID
	if _, ok := c.games[id]; !ok {
		c.gameOrder = append(c.gameOrder, id)
	}
	c.games[id] = game
	return game
}

// RemoveGame drops a game. Returns false when the id is unknown.
func (c *GameContainer) RemoveGame(gameID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.games[gameID]; !ok {
		return false
	}
	delete(c.games, gameID)
	for i, id := range c.gameOrder {
		if id == gameID {
			c.gameOrder = append(c.gameOrder[:i], c.gameOrder[i+1:]...)
			break
		}
	}
	return true
}

// GetGame resolves a game id to the live game instance. Mutations must
// go through container operations; for a lock-free read of the
// configuration use GameConfigByID.
func (c *GameContainer) GetGame(gameID string) (Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	game, ok := c.games[gameID]
	return game, ok
}

// GameConfigByID returns a copy of a game's configuration.
func (c *GameContainer) GameConfigByID(gameID string) (GameConfig, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, ok := c.games[gameID]
	if !ok {
		return GameConfig{}, false
	}
	return ConfigOf(game), true
}

// GameConfigs lists every game's configuration in insertion order.
func (c *GameContainer) GameConfigs() []GameConfig {
	c.mu.Lock()
	defer c.mu.Unlock()

	configs := make([]GameConfig, 0, len(c.gameOrder))
	for _, id := range c.gameOrder {
		configs = append(configs, ConfigOf(c.games[id]))
	}
	return configs
}

// UpdateGameConfig edits a game's shared configuration under the
// container lock. Empty or non-positive fields keep their current
// value. Rating parameters only affect matches recorded afterwards;
// applied ratings are never recomputed.
func (c *GameContainer) UpdateGameConfig(gameID, name, description string, initialRating, kFactor int) (GameConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.gameLocked(gameID)
	if err != nil {
		return GameConfig{}, err
	}

	info := game.Info()
	if strings.TrimSpace(name) != "" {
		info.Name = name
	}
	if description != "" {
		info.Description = description
	}
	if initialRating > 0 {
		info.InitialRating = initialRating
	}
	if kFactor > 0 {
		info.KFactor = kFactor
	}
	return ConfigOf(game), nil
}

// HasGame reports whether an id is registered.
func (c *GameContainer) HasGame(gameID string) bool {
	_, ok := c.GetGame(gameID)
	return ok
}

// AllGames lists games in insertion order.
func (c *GameContainer) AllGames() []Game {
	c.mu.Lock()
	defer c.mu.Unlock()

	games := make([]Game, 0, len(c.gameOrder))
	for _, id := range c.gameOrder {
		games = append(games, c.games[id])
	}
	return games
}

// AddPlayer registers a player under their id. The container keeps its
// own copy, so later changes to the argument do not leak into the
// registry; the returned clone reflects the stored state.
func (c *GameContainer) AddPlayer(player *Player) *Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.players[player.ID]; !ok {
		c.playerOrder = append(c.playerOrder, player.ID)
	}
	stored := player.Clone()
	c.players[player.ID] = stored
	return stored.Clone()
}

// UpdatePlayerProfile edits a player's profile fields under the
// container lock. Empty fields keep their current value; ratings are
// only ever changed by match recording.
func (c *GameContainer) UpdatePlayerProfile(playerID, name, email string) (*Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, err := c.playerLocked(playerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) != "" {
		player.Name = name
	}
	if email != "" {
		player.Email = email
	}
	return player.Clone(), nil
}

// RemovePlayer drops a player. Returns false when the id is unknown.
func (c *GameContainer) RemovePlayer(playerID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.players[playerID]; !ok {
		return false
	}
	delete(c.players, playerID)
	for i, id := range c.playerOrder {
		if id == playerID {
			c.playerOrder = append(c.playerOrder[:i], c.playerOrder[i+1:]...)
			break
		}
	}
	return true
}

// GetPlayer resolves a player id to a clone of the stored player.
func (c *GameContainer) GetPlayer(playerID string) (*Player, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, ok := c.players[playerID]
	if !ok {
		return nil, false
	}
	return player.Clone(), true
}

// PlayerByName finds a player by display name, case-insensitively.
func (c *GameContainer) PlayerByName(name string) (*Player, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.playerOrder {
		if strings.EqualFold(c.players[id].Name, name) {
			return c.players[id].Clone(), true
		}
	}
	return nil, false
}

// PlayerByEmail finds a player by email, case-insensitively.
func (c *GameContainer) PlayerByEmail(email string) (*Player, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.playerOrder {
		if strings.EqualFold(c.players[id].Email, email) {
			return c.players[id].Clone(), true
		}
	}
	return nil, false
}

// AllPlayers lists cloned players in insertion order.
func (c *GameContainer) AllPlayers() []*Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clonePlayers(c.allPlayersLocked())
}

func clonePlayers(players []*Player) []*Player {
	clones := make([]*Player, 0, len(players))
	for _, p := range players {
		clones = append(clones, p.Clone())
	}
	return clones
}

func (c *GameContainer) allPlayersLocked() []*Player {
	players := make([]*Player, 0, len(c.playerOrder))
	for _, id := range c.playerOrder {
		players = append(players, c.players[id])
	}
	return players
}

// PlayersByGame lists players holding a recorded rating for the game.
func (c *GameContainer) PlayersByGame(gameID string) []*Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	players := make([]*Player, 0)
	for _, id := range c.playerOrder {
		if c.players[id].HasRating(gameID) {
			players = append(players, c.players[id].Clone())
		}
	}
	return players
}

// DefaultRatingFor returns the rating an unrated player ranks at for the
// game: the game's configured initial rating, or the global default when
// the game id is unknown.
func (c *GameContainer) DefaultRatingFor(gameID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.defaultRatingLocked(gameID)
}

func (c *GameContainer) defaultRatingLocked(gameID string) int {
	if game, ok := c.games[gameID]; ok {
		return game.Info().InitialRating
	}
	return elo.DefaultRating
}

// Leaderboard returns every known player sorted descending by rating for
// the game. Players without a recorded rating rank at the game's default
// rating rather than being excluded; ties keep insertion order.
func (c *GameContainer) Leaderboard(gameID string) []*Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	initial := c.defaultRatingLocked(gameID)
	players := c.allPlayersLocked()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].RatingOr(gameID, initial) > players[j].RatingOr(gameID, initial)
	})
	return clonePlayers(players)
}

// TopPlayers returns the first n leaderboard entries. A negative n is
// treated as zero.
func (c *GameContainer) TopPlayers(gameID string, n int) []*Player {
	if n < 0 {
		n = 0
	}
	players := c.Leaderboard(gameID)
	if n < len(players) {
		players = players[:n]
	}
	return players
}

// PlayersAboveRating lists players at or above the threshold for the game.
func (c *GameContainer) PlayersAboveRating(gameID string, minRating int) []*Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	initial := c.defaultRatingLocked(gameID)
	players := make([]*Player, 0)
	for _, id := range c.playerOrder {
		if c.players[id].RatingOr(gameID, initial) >= minRating {
			players = append(players, c.players[id].Clone())
		}
	}
	return players
}

func (c *GameContainer) gameLocked(gameID string) (Game, error) {
	game, ok := c.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}
	return game, nil
}

func (c *GameContainer) playerLocked(playerID string) (*Player, error) {
	player, ok := c.players[playerID]
	if !ok {
		return nil, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}
	return player, nil
}

func (c *GameContainer) playersLocked(playerIDs []string) ([]*Player, error) {
	players := make([]*Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		player, err := c.playerLocked(id)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// RecordScoredMatch records a two-player result from raw scores. Table
// football games keep the match in their history; any other variant only
// gets the rating update, with winner and loser decided by the strict
// score comparison (equal scores credit player 2).
func (c *GameContainer) RecordScoredMatch(gameID, player1ID, player2ID string, score1, score2 int) ([]RatingChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.gameLocked(gameID)
	if err != nil {
		return nil, err
	}
	player1, err := c.playerLocked(player1ID)
	if err != nil {
		return nil, err
	}
	player2, err := c.playerLocked(player2ID)
	if err != nil {
		return nil, err
	}

	if table, ok := game.(*Tablefootball); ok {
		_, changes := table.RecordScoredMatch(player1, player2, score1, score2)
		return changes, nil
	}

	winner, loser := player1, player2
	if score1 <= score2 {
		winner, loser = player2, player1
	}
	winnerChange, loserChange := game.RecordMatch(winner, loser)
	return []RatingChange{winnerChange, loserChange}, nil
}

// RecordGroupMatch records a many-vs-many result by player ids. A scored
// 1v1 on a table football game goes through the scored path so the match
// lands in the history; everything else uses the side-average update.
func (c *GameContainer) RecordGroupMatch(gameID string, winnerIDs, loserIDs []string, winnerScores, loserScores []int) ([]RatingChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.gameLocked(gameID)
	if err != nil {
		return nil, err
	}
	winners, err := c.playersLocked(winnerIDs)
	if err != nil {
		return nil, err
	}
	losers, err := c.playersLocked(loserIDs)
	if err != nil {
		return nil, err
	}

	if table, ok := game.(*Tablefootball); ok &&
		len(winners) == 1 && len(losers) == 1 &&
		len(winnerScores) > 0 && len(loserScores) > 0 {
		_, changes := table.RecordScoredMatch(winners[0], losers[0], winnerScores[0], loserScores[0])
		return changes, nil
	}

	return game.RecordGroupMatch(winners, losers), nil
}

// RecordTeamMatchByIDs builds ad-hoc teams from the id lists and records
// a team result. Variants without team play return
// ErrTeamPlayUnsupported.
func (c *GameContainer) RecordTeamMatchByIDs(gameID string, winnerIDs, loserIDs []string) ([]RatingChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.gameLocked(gameID)
	if err != nil {
		return nil, err
	}
	winners, err := c.playersLocked(winnerIDs)
	if err != nil {
		return nil, err
	}
	losers, err := c.playersLocked(loserIDs)
	if err != nil {
		return nil, err
	}

	winnerTeam := NewTeam("Winner Team", gameID, winners...)
	loserTeam := NewTeam("Loser Team", gameID, losers...)
	return game.RecordTeamMatch(winnerTeam, loserTeam)
}

func (c *GameContainer) dartLocked(gameID string) (*Dart, error) {
	game, err := c.gameLocked(gameID)
	if err != nil {
		return nil, err
	}
	dart, ok := game.(*Dart)
	if !ok {
		return nil, fmt.Errorf("game %s is not a dart game: %w", gameID, ErrNotFound)
	}
	return dart, nil
}

// CreateDartMatch starts a countdown match between two players.
func (c *GameContainer) CreateDartMatch(gameID, player1ID, player2ID string) (*DartMatch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dart, err := c.dartLocked(gameID)
	if err != nil {
		return nil, err
	}
	player1, err := c.playerLocked(player1ID)
	if err != nil {
		return nil, err
	}
	player2, err := c.playerLocked(player2ID)
	if err != nil {
		return nil, err
	}

	return dart.CreateMatch(player1, player2).Clone(), nil
}

// DartScoreResult is what one scoring turn produced.
type DartScoreResult struct {
	Match   *DartMatch     `json:"match"`
	Won     bool           `json:"won"`
	Changes []RatingChange `json:"rating_changes,omitempty"`
}

// RecordDartScore applies one scoring turn. The opponent is the match
// participant on the other side of the scorer; a scorer outside the
// match fails with ErrPlayerNotInMatch before any state changes.
func (c *GameContainer) RecordDartScore(gameID, matchID, scorerID string, score, dartsThrown int) (*DartScoreResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dart, err := c.dartLocked(gameID)
	if err != nil {
		return nil, err
	}
	match, ok := dart.Match(matchID)
	if !ok {
		return nil, fmt.Errorf("match %s: %w", matchID, ErrNotFound)
	}
	scorer, err := c.playerLocked(scorerID)
	if err != nil {
		return nil, err
	}

	var opponent *Player
	switch scorerID {
	case match.Player1ID:
		opponent, err = c.playerLocked(match.Player2ID)
	case match.Player2ID:
		opponent, err = c.playerLocked(match.Player1ID)
	}
	if err != nil {
		return nil, err
	}

	won, changes, err := dart.RecordScore(match, scorer, opponent, score, dartsThrown)
	if err != nil {
		return nil, err
	}
	return &DartScoreResult{Match: match.Clone(), Won: won, Changes: changes}, nil
}

// CreateTeam builds and registers a team on a table football game.
func (c *GameContainer) CreateTeam(gameID, name string, playerIDs []string) (*Team, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, err := c.tableLocked(gameID)
	if err != nil {
		return nil, err
	}
	players, err := c.playersLocked(playerIDs)
	if err != nil {
		return nil, err
	}
	return table.CreateTeam(name, players).Clone(), nil
}

// Teams lists the registered teams of a table football game.
func (c *GameContainer) Teams(gameID string) ([]*Team, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, err := c.tableLocked(gameID)
	if err != nil {
		return nil, err
	}
	teams := make([]*Team, 0)
	for _, team := range table.AllTeams() {
		teams = append(teams, team.Clone())
	}
	return teams, nil
}

// TeamAddPlayer puts a player on a registered team. Returns false when
// the player was already on it.
func (c *GameContainer) TeamAddPlayer(gameID, teamID, playerID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, err := c.tableLocked(gameID)
	if err != nil {
		return false, err
	}
	team, ok := table.Team(teamID)
	if !ok {
		return false, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}
	player, err := c.playerLocked(playerID)
	if err != nil {
		return false, err
	}
	return team.AddPlayer(player), nil
}

// TeamRemovePlayer takes a player off a registered team. Removing an
// absent player is a no-op.
func (c *GameContainer) TeamRemovePlayer(gameID, teamID, playerID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, err := c.tableLocked(gameID)
	if err != nil {
		return false, err
	}
	team, ok := table.Team(teamID)
	if !ok {
		return false, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}
	return team.RemovePlayer(playerID), nil
}

// DartMatches lists a dart game's matches, newest last.
func (c *GameContainer) DartMatches(gameID string) ([]*DartMatch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dart, err := c.dartLocked(gameID)
	if err != nil {
		return nil, err
	}
	matches := make([]*DartMatch, 0, len(dart.Matches))
	for _, m := range dart.Matches {
		matches = append(matches, m.Clone())
	}
	return matches, nil
}

// DartPlayerAverage returns a player's mean three-dart average across
// all their matches in the game.
func (c *GameContainer) DartPlayerAverage(gameID, playerID string) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dart, err := c.dartLocked(gameID)
	if err != nil {
		return 0, err
	}
	if _, err := c.playerLocked(playerID); err != nil {
		return 0, err
	}
	return dart.PlayerAverageScore(playerID), nil
}

// DartPlayerScores returns a player's global turn-score history for the
// game.
func (c *GameContainer) DartPlayerScores(gameID, playerID string) ([]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dart, err := c.dartLocked(gameID)
	if err != nil {
		return nil, err
	}
	if _, err := c.playerLocked(playerID); err != nil {
		return nil, err
	}
	return append([]int(nil), dart.PlayerScoreHistory(playerID)...), nil
}

func (c *GameContainer) tableLocked(gameID string) (*Tablefootball, error) {
	game, err := c.gameLocked(gameID)
	if err != nil {
		return nil, err
	}
	table, ok := game.(*Tablefootball)
	if !ok {
		return nil, fmt.Errorf("game %s has no team registry: %w", gameID, ErrTeamPlayUnsupported)
	}
	return table, nil
}
