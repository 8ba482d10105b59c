// models/dart.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// DartMode selects the dart sub-game. Only X01 countdown scoring is
// implemented; the other modes are accepted as configuration and score
// like X01 until they get rules of their own.
type DartMode string

const (
	DartModeX01            DartMode = "x01"
	DartModeCricket        DartMode = "cricket"
	DartModeAroundTheClock DartMode = "around_the_clock"
	DartModeShanghai       DartMode = "shanghai"
	DartModeKiller         DartMode = "killer"
)

// DartMatch is an in-progress (or finished) countdown match between two
// players. Remaining scores count down from StartingScore; reaching
// exactly 0 wins. There is no bust rule: remaining may go negative.
type DartMatch struct {
	ID               string    `json:"id"`
	Player1ID        string    `json:"player1_id"`
	Player2ID        string    `json:"player2_id"`
	Player1Scores    []int     `json:"player1_scores"`
	Player2Scores    []int     `json:"player2_scores"`
	Player1Remaining int       `json:"player1_remaining_score"`
	Player2Remaining int       `json:"player2_remaining_score"`
	Player1Darts     int       `json:"player1_darts"`
	Player2Darts     int       `json:"player2_darts"`
	WinnerID         string    `json:"winner_id,omitempty"`
	Completed        bool      `json:"completed"`
	StartingScore    int       `json:"starting_score"`
	Mode             DartMode  `json:"mode"`
	StartedAt        time.Time `json:"started_at"`
}

func newDartMatch(player1ID, player2ID string, startingScore int, mode DartMode) *DartMatch {
	return &DartMatch{
		ID:               uuid.NewString(),
		Player1ID:        player1ID,
		Player2ID:        player2ID,
		Player1Remaining: startingScore,
		Player2Remaining: startingScore,
		StartingScore:    startingScore,
		Mode:             mode,
		StartedAt:        time.Now(),
	}
}

// Clone returns an independent copy of the match state.
func (m *DartMatch) Clone() *DartMatch {
	clone := *m
	clone.Player1Scores = append([]int(nil), m.Player1Scores...)
	clone.Player2Scores = append([]int(nil), m.Player2Scores...)
	return &clone
}

func (m *DartMatch) recordPlayer1Score(score, dartsThrown int) bool {
	m.Player1Scores = append(m.Player1Scores, score)
	m.Player1Darts += dartsThrown
	m.Player1Remaining -= score

	if m.Player1Remaining == 0 {
		m.WinnerID = m.Player1ID
		m.Completed = true
		return true
	}
	return false
}

func (m *DartMatch) recordPlayer2Score(score, dartsThrown int) bool {
	m.Player2Scores = append(m.Player2Scores, score)
	m.Player2Darts += dartsThrown
	m.Player2Remaining -= score

	if m.Player2Remaining == 0 {
		m.WinnerID = m.Player2ID
		m.Completed = true
		return true
	}
	return false
}

// Player1Average is the standard three-dart average for player 1, 0 when
// no darts have been thrown.
func (m *DartMatch) Player1Average() float64 {
	if m.Player1Darts == 0 {
		return 0
	}
	scored := m.StartingScore - m.Player1Remaining
	return float64(scored) / float64(m.Player1Darts) * 3
}

// Player2Average is the standard three-dart average for player 2.
func (m *DartMatch) Player2Average() float64 {
	if m.Player2Darts == 0 {
		return 0
	}
	scored := m.StartingScore - m.Player2Remaining
	return float64(scored) / float64(m.Player2Darts) * 3
}

// Dart is the stateful variant: matches progress turn by turn until one
// player counts down to zero, at which point the rating update fires.
type Dart struct {
	GameInfo
	StartingScore int              `json:"starting_score"`
	DoubleOut     bool             `json:"double_out"`
	Mode          DartMode         `json:"mode"`
	Matches       []*DartMatch     `json:"matches"`
	ScoreHistory  map[string][]int `json:"player_score_history"`
}

// NewDart creates a dart game with default settings (501, double out,
// X01).
func NewDart(id, name, description string, initialRating, kFactor int) *Dart {
	return &Dart{
		GameInfo:      NewGameInfo(id, name, description, initialRating, kFactor),
		StartingScore: 501,
		DoubleOut:     true,
		Mode:          DartModeX01,
		ScoreHistory:  make(map[string][]int),
	}
}

func (d *Dart) Kind() GameKind { return KindDart }

// RecordTeamMatch always refuses: dart is strictly one on one.
func (d *Dart) RecordTeamMatch(winnerTeam, loserTeam *Team) ([]RatingChange, error) {
	return nil, ErrTeamPlayUnsupported
}

// CreateMatch starts a countdown match between two players and makes
// sure both have a score-history entry. Entries are created once and
// never reset by later matches.
func (d *Dart) CreateMatch(player1, player2 *Player) *DartMatch {
	match := newDartMatch(player1.ID, player2.ID, d.StartingScore, d.Mode)
	d.Matches = append(d.Matches, match)

	if _, ok := d.ScoreHistory[player1.ID]; !ok {
		d.ScoreHistory[player1.ID] = []int{}
	}
	if _, ok := d.ScoreHistory[player2.ID]; !ok {
		d.ScoreHistory[player2.ID] = []int{}
	}
	return match
}

// RecordScore applies one turn for the scorer. The scorer must be a
// match participant and the match must still be running; both checks
// happen before any state is touched. When the turn wins the match the
// two-player rating update is applied as part of this call and the
// resulting changes are returned.
func (d *Dart) RecordScore(match *DartMatch, scorer, opponent *Player, score, dartsThrown int) (bool, []RatingChange, error) {
	if match.Completed {
		return false, nil, ErrMatchCompleted
	}
	if scorer.ID != match.Player1ID && scorer.ID != match.Player2ID {
		return false, nil, ErrPlayerNotInMatch
	}

	d.ScoreHistory[scorer.ID] = append(d.ScoreHistory[scorer.ID], score)

	var won bool
	if scorer.ID == match.Player1ID {
		won = match.recordPlayer1Score(score, dartsThrown)
	} else {
		won = match.recordPlayer2Score(score, dartsThrown)
	}

	if !won {
		return false, nil, nil
	}

	winnerChange, loserChange := d.RecordMatch(scorer, opponent)
	return true, []RatingChange{winnerChange, loserChange}, nil
}

// Match returns a match by id.
func (d *Dart) Match(matchID string) (*DartMatch, bool) {
	for _, m := range d.Matches {
		if m.ID == matchID {
			return m, true
		}
	}
	return nil, false
}

// PlayerMatches lists every match the player appears in, on either side.
func (d *Dart) PlayerMatches(playerID string) []*DartMatch {
	matches := make([]*DartMatch, 0)
	for _, m := range d.Matches {
		if m.Player1ID == playerID || m.Player2ID == playerID {
			matches = append(matches, m)
		}
	}
	return matches
}

// PlayerScoreHistory returns every turn score the player has recorded in
// this game, across all matches.
func (d *Dart) PlayerScoreHistory(playerID string) []int {
	if history, ok := d.ScoreHistory[playerID]; ok {
		return history
	}
	return []int{}
}

// PlayerAverageScore is the mean of the player's per-match three-dart
// averages, 0 when the player has no matches.
func (d *Dart) PlayerAverageScore(playerID string) float64 {
	total := 0.0
	count := 0
	for _, m := range d.PlayerMatches(playerID) {
		switch playerID {
		case m.Player1ID:
			total += m.Player1Average()
			count++
		case m.Player2ID:
			total += m.Player2Average()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
