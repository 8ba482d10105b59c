// models/snapshot.go
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot rows are the persisted form of the container: every game's
// configuration, every player's rating map and, for dart, the full
// in-progress match state, so a restarted process can resume matches.

// GameRecord persists one game's configuration. Variant-specific columns
// are only meaningful for the matching kind.
type GameRecord struct {
	ID            string `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"not null"`
	Description   string `json:"description"`
	Kind          string `json:"kind" gorm:"not null"`
	InitialRating int    `json:"initial_elo_rating"`
	KFactor       int    `json:"k_factor"`

	// Table football
	MaxGoals   int  `json:"max_goals"`
	AllowTeams bool `json:"allow_teams"`

	// Dart
	StartingScore int    `json:"starting_score"`
	DoubleOut     bool   `json:"double_out"`
	Mode          string `json:"mode"`
	ScoreHistory  string `json:"score_history" gorm:"type:text"` // player id -> turn scores, JSON

	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerRecord persists one player and their full rating map.
type PlayerRecord struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email"`
	Ratings   string    `json:"ratings" gorm:"type:text"` // game id -> rating, JSON
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamRecord persists a registered team's roster by player id.
type TeamRecord struct {
	ID        string `json:"id" gorm:"primaryKey"`
	GameID    string `json:"game_id" gorm:"index;not null"`
	Name      string `json:"name"`
	PlayerIDs string `json:"player_ids" gorm:"type:text"` // JSON list, order preserved
}

// TableMatchRecord persists one table football result.
type TableMatchRecord struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	GameID      string    `json:"game_id" gorm:"index;not null"`
	Team1ID     string    `json:"team1_id"`
	Team2ID     string    `json:"team2_id"`
	Team1Score  int       `json:"team1_score"`
	Team2Score  int       `json:"team2_score"`
	WinnerID    string    `json:"winner_id"`
	IsTeamMatch bool      `json:"is_team_match"`
	PlayedAt    time.Time `json:"played_at"`
}

// DartMatchRecord persists a dart match, including in-progress state.
type DartMatchRecord struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	GameID           string    `json:"game_id" gorm:"index;not null"`
	Player1ID        string    `json:"player1_id"`
	Player2ID        string    `json:"player2_id"`
	Player1Scores    string    `json:"player1_scores" gorm:"type:text"` // JSON list
	Player2Scores    string    `json:"player2_scores" gorm:"type:text"` // JSON list
	Player1Remaining int       `json:"player1_remaining_score"`
	Player2Remaining int       `json:"player2_remaining_score"`
	Player1Darts     int       `json:"player1_darts"`
	Player2Darts     int       `json:"player2_darts"`
	WinnerID         string    `json:"winner_id"`
	Completed        bool      `json:"completed"`
	StartingScore    int       `json:"starting_score"`
	Mode             string    `json:"mode"`
	StartedAt        time.Time `json:"started_at"`
}

// Snapshot is one consistent copy of the container state.
type Snapshot struct {
	Games        []GameRecord      `json:"games"`
	Players      []PlayerRecord    `json:"players"`
	Teams        []TeamRecord      `json:"teams"`
	TableMatches []TableMatchRecord `json:"table_matches"`
	DartMatches  []DartMatchRecord  `json:"dart_matches"`
}

// Snapshot exports the container under its lock.
func (c *GameContainer) Snapshot() (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := &Snapshot{}

	for _, id := range c.playerOrder {
		p := c.players[id]
		ratings, err := json.Marshal(p.Ratings)
		if err != nil {
			return nil, fmt.Errorf("marshal ratings for player %s: %w", p.ID, err)
		}
		snap.Players = append(snap.Players, PlayerRecord{
			ID:      p.ID,
			Name:    p.Name,
			Email:   p.Email,
			Ratings: string(ratings),
		})
	}

	for _, id := range c.gameOrder {
		game := c.games[id]
		info := game.Info()
		record := GameRecord{
			ID:            info.ID,
			Name:          info.Name,
			Description:   info.Description,
			Kind:          string(game.Kind()),
			InitialRating: info.InitialRating,
			KFactor:       info.KFactor,
		}

		switch g := game.(type) {
		case *Tablefootball:
			record.MaxGoals = g.MaxGoals
			record.AllowTeams = g.AllowTeams
			for _, team := range g.AllTeams() {
				ids := make([]string, 0, len(team.Players))
				for _, p := range team.Players {
					ids = append(ids, p.ID)
				}
				encoded, err := json.Marshal(ids)
				if err != nil {
					return nil, fmt.Errorf("marshal roster for team %s: %w", team.ID, err)
				}
				snap.Teams = append(snap.Teams, TeamRecord{
					ID:        team.ID,
					GameID:    info.ID,
					Name:      team.Name,
					PlayerIDs: string(encoded),
				})
			}
			for _, m := range g.MatchHistory {
				snap.TableMatches = append(snap.TableMatches, TableMatchRecord{
					ID:          m.ID,
					GameID:      info.ID,
					Team1ID:     m.Team1ID,
					Team2ID:     m.Team2ID,
					Team1Score:  m.Team1Score,
					Team2Score:  m.Team2Score,
					WinnerID:    m.WinnerID,
					IsTeamMatch: m.IsTeamMatch,
					PlayedAt:    m.PlayedAt,
				})
			}
		case *Dart:
			record.StartingScore = g.StartingScore
			record.DoubleOut = g.DoubleOut
			record.Mode = string(g.Mode)
			history, err := json.Marshal(g.ScoreHistory)
			if err != nil {
				return nil, fmt.Errorf("marshal score history for game %s: %w", info.ID, err)
			}
			record.ScoreHistory = string(history)
			for _, m := range g.Matches {
				p1Scores, err := json.Marshal(m.Player1Scores)
				if err != nil {
					return nil, fmt.Errorf("marshal scores for match %s: %w", m.ID, err)
				}
				p2Scores, err := json.Marshal(m.Player2Scores)
				if err != nil {
					return nil, fmt.Errorf("marshal scores for match %s: %w", m.ID, err)
				}
				snap.DartMatches = append(snap.DartMatches, DartMatchRecord{
					ID:               m.ID,
					GameID:           info.ID,
					Player1ID:        m.Player1ID,
					Player2ID:        m.Player2ID,
					Player1Scores:    string(p1Scores),
					Player2Scores:    string(p2Scores),
					Player1Remaining: m.Player1Remaining,
					Player2Remaining: m.Player2Remaining,
					Player1Darts:     m.Player1Darts,
					Player2Darts:     m.Player2Darts,
					WinnerID:         m.WinnerID,
					Completed:        m.Completed,
					StartingScore:    m.StartingScore,
					Mode:             string(m.Mode),
					StartedAt:        m.StartedAt,
				})
			}
		}

		snap.Games = append(snap.Games, record)
	}

	return snap, nil
}

// Restore replaces the container contents with the snapshot. Players are
// rebuilt first so teams and matches can resolve their references.
func (c *GameContainer) Restore(snap *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.games = make(map[string]Game)
	c.gameOrder = nil
	c.players = make(map[string]*Player)
	c.playerOrder = nil

	for _, r := range snap.Players {
		ratings := make(map[string]int)
		if r.Ratings != "" {
			if err := json.Unmarshal([]byte(r.Ratings), &ratings); err != nil {
				return fmt.Errorf("unmarshal ratings for player %s: %w", r.ID, err)
			}
		}
		c.players[r.ID] = &Player{ID: r.ID, Name: r.Name, Email: r.Email, Ratings: ratings}
		c.playerOrder = append(c.playerOrder, r.ID)
	}

	for _, r := range snap.Games {
		switch GameKind(r.Kind) {
		case KindTablefootball:
			table := NewTablefootball(r.ID, r.Name, r.Description, r.InitialRating, r.KFactor)
			table.MaxGoals = r.MaxGoals
			table.AllowTeams = r.AllowTeams
			c.games[r.ID] = table
		case KindDart:
			dart := NewDart(r.ID, r.Name, r.Description, r.InitialRating, r.KFactor)
			dart.StartingScore = r.StartingScore
			dart.DoubleOut = r.DoubleOut
			if r.Mode != "" {
				dart.Mode = DartMode(r.Mode)
			}
			if r.ScoreHistory != "" {
				if err := json.Unmarshal([]byte(r.ScoreHistory), &dart.ScoreHistory); err != nil {
					return fmt.Errorf("unmarshal score history for game %s: %w", r.ID, err)
				}
			}
			c.games[r.ID] = dart
		default:
			return fmt.Errorf("unknown game kind %q for game %s", r.Kind, r.ID)
		}
		c.gameOrder = append(c.gameOrder, r.ID)
	}

	for _, r := range snap.Teams {
		game, ok := c.games[r.GameID]
		if !ok {
			return fmt.Errorf("team %s references game %s: %w", r.ID, r.GameID, ErrNotFound)
		}
		table, ok := game.(*Tablefootball)
		if !ok {
			return fmt.Errorf("team %s references non-table game %s", r.ID, r.GameID)
		}
		var ids []string
		if r.PlayerIDs != "" {
			if err := json.Unmarshal([]byte(r.PlayerIDs), &ids); err != nil {
				return fmt.Errorf("unmarshal roster for team %s: %w", r.ID, err)
			}
		}
		team := &Team{ID: r.ID, Name: r.Name, GameID: r.GameID}
		for _, id := range ids {
			player, ok := c.players[id]
			if !ok {
				return fmt.Errorf("team %s references player %s: %w", r.ID, id, ErrNotFound)
			}
			team.AddPlayer(player)
		}
		table.RegisterTeam(team)
	}

	for _, r := range snap.TableMatches {
		game, ok := c.games[r.GameID]
		if !ok {
			return fmt.Errorf("match %s references game %s: %w", r.ID, r.GameID, ErrNotFound)
		}
		table, ok := game.(*Tablefootball)
		if !ok {
			return fmt.Errorf("match %s references non-table game %s", r.ID, r.GameID)
		}
		table.MatchHistory = append(table.MatchHistory, &TableMatch{
			ID:          r.ID,
			Team1ID:     r.Team1ID,
			Team2ID:     r.Team2ID,
			Team1Score:  r.Team1Score,
			Team2Score:  r.Team2Score,
			WinnerID:    r.WinnerID,
			IsTeamMatch: r.IsTeamMatch,
			PlayedAt:    r.PlayedAt,
		})
	}

	for _, r := range snap.DartMatches {
		game, ok := c.games[r.GameID]
		if !ok {
			return fmt.Errorf("match %s references game %s: %w", r.ID, r.GameID, ErrNotFound)
		}
		dart, ok := game.(*Dart)
		if !ok {
			return fmt.Errorf("match %s references non-dart game %s", r.ID, r.GameID)
		}
		var p1Scores, p2Scores []int
		if r.Player1Scores != "" {
			if err := json.Unmarshal([]byte(r.Player1Scores), &p1Scores); err != nil {
				return fmt.Errorf("unmarshal scores for match %s: %w", r.ID, err)
			}
		}
		if r.Player2Scores != "" {
			if err := json.Unmarshal([]byte(r.Player2Scores), &p2Scores); err != nil {
				return fmt.Errorf("unmarshal scores for match %s: %w", r.ID, err)
			}
		}
		dart.Matches = append(dart.Matches, &DartMatch{
			ID:               r.ID,
			Player1ID:        r.Player1ID,
			Player2ID:        r.Player2ID,
			Player1Scores:    p1Scores,
			Player2Scores:    p2Scores,
			Player1Remaining: r.Player1Remaining,
			Player2Remaining: r.Player2Remaining,
			Player1Darts:     r.Player1Darts,
			Player2Darts:     r.Player2Darts,
			WinnerID:         r.WinnerID,
			Completed:        r.Completed,
			StartingScore:    r.StartingScore,
			Mode:             DartMode(r.Mode),
			StartedAt:        r.StartedAt,
		})
	}

	return nil
}
