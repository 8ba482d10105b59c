// models/game.go
package models

import (
	"github.com/google/uuid"

	"elo-board-system/elo"
)

// GameKind discriminates the game variants. It replaces subclassing:
// each variant is its own struct embedding GameInfo, and behavior that
// differs per variant is dispatched through the Game interface.
type GameKind string

const (
	KindTablefootball GameKind = "tablefootball"
	KindDart          GameKind = "dart"
)

// RatingChange is one applied rating update. Match-recording operations
// return the changes they applied so callers and tests can audit the
// deltas independently of the mutation.
type RatingChange struct {
	PlayerID  string `json:"player_id"`
	Delta     int    `json:"delta"`
	NewRating int    `json:"new_rating"`
}

// Game is the contract every variant implements.
type Game interface {
	Info() *GameInfo
	Kind() GameKind

	// RecordMatch applies a two-player result: winner scored 1.0 against
	// the loser, loser 0.0 against the winner, both deltas computed from
	// the pre-match ratings.
	RecordMatch(winner, loser *Player) (RatingChange, RatingChange)

	// RecordGroupMatch applies a many-vs-many result. Each individual is
	// compared against the opposing side's average rating, not pairwise.
	RecordGroupMatch(winners, losers []*Player) []RatingChange

	// RecordTeamMatch applies a team result, or refuses with
	// ErrTeamPlayUnsupported for variants without team play.
	RecordTeamMatch(winnerTeam, loserTeam *Team) ([]RatingChange, error)
}

// GameInfo is the configuration shared by every variant. Changes to
// InitialRating or KFactor only affect matches recorded afterwards;
// ratings already applied are never recomputed.
type GameInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	InitialRating int    `json:"initial_elo_rating"`
	KFactor       int    `json:"k_factor"`
}

// GameConfig is a point-in-time copy of a game's configuration, safe to
// hold and serialize without coordinating with the registry. Variant
// fields are zero for the kinds they do not apply to.
type GameConfig struct {
	ID            string
	Name          string
	Description   string
	Kind          GameKind
	InitialRating int
	KFactor       int

	// Table football
	MaxGoals   int
	AllowTeams bool

	// Dart
	StartingScore int
	DoubleOut     bool
	Mode          DartMode
}

// ConfigOf snapshots a game's configuration. For games already handed
// to a container, use the container's config accessors so the read
// happens under its lock.
func ConfigOf(game Game) GameConfig {
	info := game.Info()
	cfg := GameConfig{
		ID:            info.ID,
		Name:          info.Name,
		Description:   info.Description,
		Kind:          game.Kind(),
		InitialRating: info.InitialRating,
		KFactor:       info.KFactor,
	}
	switch g := game.(type) {
	case *Tablefootball:
		cfg.MaxGoals = g.MaxGoals
		cfg.AllowTeams = g.AllowTeams
	case *Dart:
		cfg.StartingScore = g.StartingScore
		cfg.DoubleOut = g.DoubleOut
		cfg.Mode = g.Mode
	}
	return cfg
}

// NewGameInfo fills in defaults (1000 / 32) for zero values. An empty id
// gets a generated one; callers may pass their own opaque id.
func NewGameInfo(id, name, description string, initialRating, kFactor int) GameInfo {
	if id == "" {
		id = uuid.NewString()
	}
	if initialRating <= 0 {
		initialRating = elo.DefaultRating
	}
	if kFactor <= 0 {
		kFactor = elo.DefaultKFactor
	}
	return GameInfo{
		ID:            id,
		Name:          name,
		Description:   description,
		InitialRating: initialRating,
		KFactor:       kFactor,
	}
}

func (g *GameInfo) Info() *GameInfo { return g }

// CalculateEloChange returns the rating delta for one side of a result
// using this game's K-factor.
func (g *GameInfo) CalculateEloChange(playerRating, opponentRating int, score float64) int {
	return elo.Delta(playerRating, opponentRating, score, g.KFactor)
}

// PlayerRating reads a player's rating for this game, falling back to the
// game's configured initial rating.
func (g *GameInfo) PlayerRating(p *Player) int {
	return p.RatingOr(g.ID, g.InitialRating)
}

func (g *GameInfo) apply(p *Player, delta int) RatingChange {
	next := p.UpdateRating(g.ID, delta, g.InitialRating)
	return RatingChange{PlayerID: p.ID, Delta: delta, NewRating: next}
}

// RecordMatch is the shared two-player update. Both ratings are read
// before either delta is applied.
func (g *GameInfo) RecordMatch(winner, loser *Player) (RatingChange, RatingChange) {
	winnerRating := g.PlayerRating(winner)
	loserRating := g.PlayerRating(loser)

	winnerDelta := g.CalculateEloChange(winnerRating, loserRating, 1.0)
	loserDelta := g.CalculateEloChange(loserRating, winnerRating, 0.0)

	return g.apply(winner, winnerDelta), g.apply(loser, loserDelta)
}

// RecordGroupMatch is the default many-vs-many update. Side averages are
// fixed before any rating is written, and every individual is scored
// against the opposing side's average; an empty side averages to the
// game's initial rating.
func (g *GameInfo) RecordGroupMatch(winners, losers []*Player) []RatingChange {
	avgWinnerRating := g.AverageRating(winners)
	avgLoserRating := g.AverageRating(losers)

	changes := make([]RatingChange, 0, len(winners)+len(losers))
	for _, winner := range winners {
		delta := g.CalculateEloChange(g.PlayerRating(winner), avgLoserRating, 1.0)
		changes = append(changes, g.apply(winner, delta))
	}
	for _, loser := range losers {
		delta := g.CalculateEloChange(g.PlayerRating(loser), avgWinnerRating, 0.0)
		changes = append(changes, g.apply(loser, delta))
	}
	return changes
}

// RecordTeamMatch is the default team update: the teams' rosters are fed
// through the group path. Variants without team play override this.
func (g *GameInfo) RecordTeamMatch(winnerTeam, loserTeam *Team) ([]RatingChange, error) {
	return g.RecordGroupMatch(winnerTeam.Players, loserTeam.Players), nil
}

// AverageRating returns the integer mean rating of the players for this
// game; an empty list yields the game's initial rating.
func (g *GameInfo) AverageRating(players []*Player) int {
	if len(players) == 0 {
		return g.InitialRating
	}
	total := 0
	for _, p := range players {
		total += g.PlayerRating(p)
	}
	return total / len(players)
}
