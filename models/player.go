// models/player.go
package models

import (
	"github.com/google/uuid"

	"elo-board-system/elo"
)

// Player participates in any number of games and carries one Elo rating
// per game id.
type Player struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email,omitempty"`
	Ratings map[string]int `json:"elo_ratings"`
}

// NewPlayer creates a player with a generated id and an empty rating map.
func NewPlayer(name, email string) *Player {
	return &Player{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Ratings: make(map[string]int),
	}
}

// Clone returns an independent copy, ratings map included. Container
// reads hand out clones so callers can serialize them without holding
// the container lock.
func (p *Player) Clone() *Player {
	ratings := make(map[string]int, len(p.Ratings))
	for id, rating := range p.Ratings {
		ratings[id] = rating
	}
	return &Player{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Ratings: ratings,
	}
}

// Rating returns the player's rating for a game, or the global default
// (1000) when the player has never been rated for it.
func (p *Player) Rating(gameID string) int {
	return p.RatingOr(gameID, elo.DefaultRating)
}

// RatingOr returns the player's rating for a game, or the supplied
// fallback; games pass their configured initial rating here.
func (p *Player) RatingOr(gameID string, initial int) int {
	if rating, ok := p.Ratings[gameID]; ok {
		return rating
	}
	return initial
}

// HasRating reports whether the player has a recorded rating for the game.
func (p *Player) HasRating(gameID string) bool {
	_, ok := p.Ratings[gameID]
	return ok
}

// SetRating overwrites the player's rating for a game.
func (p *Player) SetRating(gameID string, rating int) {
	if p.Ratings == nil {
		p.Ratings = make(map[string]int)
	}
	p.Ratings[gameID] = rating
}

// UpdateRating applies a delta on top of the current rating. The read uses
// the supplied initial as fallback so a player's first match starts from
// the game's configured baseline.
func (p *Player) UpdateRating(gameID string, delta, initial int) int {
	next := p.RatingOr(gameID, initial) + delta
	p.SetRating(gameID, next)
	return next
}
