// models/tablefootball.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// TableMatch is one recorded table football result. The two sides are
// either player ids or team ids depending on IsTeamMatch.
type TableMatch struct {
	ID          string    `json:"id"`
	Team1ID     string    `json:"team1_id"`
	Team2ID     string    `json:"team2_id"`
	Team1Score  int       `json:"team1_score"`
	Team2Score  int       `json:"team2_score"`
	WinnerID    string    `json:"winner_id"`
	IsTeamMatch bool      `json:"is_team_match"`
	PlayedAt    time.Time `json:"played_at"`
}

func newTableMatch(side1ID, side2ID string, score1, score2 int, teamMatch bool) *TableMatch {
	match := &TableMatch{
		ID:          uuid.NewString(),
		Team1ID:     side1ID,
		Team2ID:     side2ID,
		Team1Score:  score1,
		Team2Score:  score2,
		IsTeamMatch: teamMatch,
		PlayedAt:    time.Now(),
	}
	match.updateWinner()
	return match
}

// updateWinner keeps the strict score1 > score2 rule: on equal scores
// side 2 is recorded as the winner. Callers rely on this tie-break.
func (m *TableMatch) updateWinner() {
	if m.Team1Score > m.Team2Score {
		m.WinnerID = m.Team1ID
	} else {
		m.WinnerID = m.Team2ID
	}
}

// Tablefootball is the scored one-shot variant: a match is a single
// submission of two scores, no in-progress state.
type Tablefootball struct {
	GameInfo
	MaxGoals     int              `json:"max_goals"`
	AllowTeams   bool             `json:"allow_teams"`
	MatchHistory []*TableMatch    `json:"match_history"`
	Teams        map[string]*Team `json:"-"`
}

// NewTablefootball creates a table football game with default settings
// (10 goals, no teams).
func NewTablefootball(id, name, description string, initialRating, kFactor int) *Tablefootball {
	return &Tablefootball{
		GameInfo: NewGameInfo(id, name, description, initialRating, kFactor),
		MaxGoals: 10,
		Teams:    make(map[string]*Team),
	}
}

func (g *Tablefootball) Kind() GameKind { return KindTablefootball }

// RecordScoredMatch appends the match to the history and applies the
// two-player rating update. Winner and loser come from the strict score
// comparison, so equal scores credit player 2.
func (g *Tablefootball) RecordScoredMatch(player1, player2 *Player, score1, score2 int) (*TableMatch, []RatingChange) {
	match := newTableMatch(player1.ID, player2.ID, score1, score2, false)
	g.MatchHistory = append(g.MatchHistory, match)

	winner, loser := player1, player2
	if score1 <= score2 {
		winner, loser = player2, player1
	}

	winnerChange, loserChange := g.RecordMatch(winner, loser)
	return match, []RatingChange{winnerChange, loserChange}
}

// RecordScoredTeamMatch registers both teams if unseen, appends a team
// match record and updates every member against the opposing team's
// average rating.
func (g *Tablefootball) RecordScoredTeamMatch(team1, team2 *Team, score1, score2 int) (*TableMatch, []RatingChange) {
	g.RegisterTeam(team1)
	g.RegisterTeam(team2)

	match := newTableMatch(team1.ID, team2.ID, score1, score2, true)
	g.MatchHistory = append(g.MatchHistory, match)

	winnerTeam, loserTeam := team1, team2
	if score1 <= score2 {
		winnerTeam, loserTeam = team2, team1
	}

	return match, g.recordTeamResult(winnerTeam, loserTeam)
}

// recordTeamResult scores each member against the other team's average,
// both averages fixed before any rating is written.
func (g *Tablefootball) recordTeamResult(winnerTeam, loserTeam *Team) []RatingChange {
	winnerTeamRating := winnerTeam.AverageRating(g.ID)
	loserTeamRating := loserTeam.AverageRating(g.ID)

	changes := make([]RatingChange, 0, len(winnerTeam.Players)+len(loserTeam.Players))
	for _, p := range winnerTeam.Players {
		delta := g.CalculateEloChange(g.PlayerRating(p), loserTeamRating, 1.0)
		changes = append(changes, g.apply(p, delta))
	}
	for _, p := range loserTeam.Players {
		delta := g.CalculateEloChange(g.PlayerRating(p), winnerTeamRating, 0.0)
		changes = append(changes, g.apply(p, delta))
	}
	return changes
}

// CreateTeam builds a team for this game and registers it.
func (g *Tablefootball) CreateTeam(name string, players []*Player) *Team {
	team := NewTeam(name, g.ID, players...)
	g.Teams[team.ID] = team
	return team
}

// RegisterTeam adds an existing team to the registry. Registering the
// same id twice is a no-op.
func (g *Tablefootball) RegisterTeam(team *Team) *Team {
	if _, ok := g.Teams[team.ID]; !ok {
		g.Teams[team.ID] = team
	}
	return team
}

// Team returns a registered team by id.
func (g *Tablefootball) Team(teamID string) (*Team, bool) {
	team, ok := g.Teams[teamID]
	return team, ok
}

// AllTeams lists every registered team.
func (g *Tablefootball) AllTeams() []*Team {
	teams := make([]*Team, 0, len(g.Teams))
	for _, team := range g.Teams {
		teams = append(teams, team)
	}
	return teams
}
