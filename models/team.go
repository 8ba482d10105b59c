// models/team.go
package models

import (
	"github.com/google/uuid"

	"elo-board-system/elo"
)

// Team is an ordered group of players tied to one game. Teams borrow
// players; the container owns them, and a player may sit on any number
// of teams.
type Team struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	GameID  string    `json:"game_id"`
	Players []*Player `json:"players"`
}

// NewTeam creates a team for a game. Initial players go through AddPlayer
// so duplicates are dropped.
func NewTeam(name, gameID string, players ...*Player) *Team {
	team := &Team{
		ID:     uuid.NewString(),
		Name:   name,
		GameID: gameID,
	}
	for _, p := range players {
		team.AddPlayer(p)
	}
	return team
}

// Clone returns an independent copy with cloned players.
func (t *Team) Clone() *Team {
	players := make([]*Player, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, p.Clone())
	}
	return &Team{
		ID:      t.ID,
		Name:    t.Name,
		GameID:  t.GameID,
		Players: players,
	}
}

// AddPlayer appends a player to the roster. Returns false without
// modifying the team when the player is already on it.
func (t *Team) AddPlayer(player *Player) bool {
	if t.HasPlayer(player.ID) {
		return false
	}
	t.Players = append(t.Players, player)
	return true
}

// RemovePlayer drops a player from the roster. Removing a player who is
// not on the team is a no-op, never an error.
func (t *Team) RemovePlayer(playerID string) bool {
	for i, p := range t.Players {
		if p.ID == playerID {
			t.Players = append(t.Players[:i], t.Players[i+1:]...)
			return true
		}
	}
	return false
}

// HasPlayer reports whether the player is on the roster.
func (t *Team) HasPlayer(playerID string) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// AverageRating returns the integer mean of the members' ratings for the
// game, or exactly 1000 for an empty team.
func (t *Team) AverageRating(gameID string) int {
	if len(t.Players) == 0 {
		return elo.DefaultRating
	}
	total := 0
	for _, p := range t.Players {
		total += p.Rating(gameID)
	}
	return total / len(t.Players)
}

// EloRating returns the team's rating for its own game.
func (t *Team) EloRating() int {
	return t.AverageRating(t.GameID)
}
