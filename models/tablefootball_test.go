package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablefootballDefaults(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 0, 0)

	assert.Equal(t, 10, game.MaxGoals)
	assert.False(t, game.AllowTeams)
	assert.Equal(t, KindTablefootball, game.Kind())
}

func TestRecordScoredMatch(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1000, 32)
	p1 := NewPlayer("Alice", "alice@example.com")
	p2 := NewPlayer("Bob", "bob@example.com")

	match, changes := game.RecordScoredMatch(p1, p2, 10, 7)
	require.Len(t, changes, 2)

	assert.Equal(t, p1.ID, match.WinnerID)
	assert.False(t, match.IsTeamMatch)
	assert.Len(t, game.MatchHistory, 1)
	assert.Equal(t, 1016, p1.Rating("foos"))
	assert.Equal(t, 984, p2.Rating("foos"))
}

func TestRecordScoredMatchTieCreditsPlayer2(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1000, 32)
	p1 := NewPlayer("Alice", "alice@example.com")
	p2 := NewPlayer("Bob", "bob@example.com")

	match, changes := game.RecordScoredMatch(p1, p2, 5, 5)
	require.Len(t, changes, 2)

	assert.Equal(t, p2.ID, match.WinnerID)
	assert.Equal(t, p2.ID, changes[0].PlayerID)
	assert.Equal(t, 1016, p2.Rating("foos"))
	assert.Equal(t, 984, p1.Rating("foos"))
}

func TestRecordScoredTeamMatch(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1000, 32)
	game.AllowTeams = true

	a := NewPlayer("Alice", "alice@example.com")
	a.SetRating("foos", 1200)
	b := NewPlayer("Bob", "bob@example.com")
	b.SetRating("foos", 1300)
	c := NewPlayer("Carol", "carol@example.com")
	d := NewPlayer("Dave", "dave@example.com")

	reds := NewTeam("Reds", "foos", a, b)
	blues := NewTeam("Blues", "foos", c, d)

	match, changes := game.RecordScoredTeamMatch(reds, blues, 10, 4)
	require.Len(t, changes, 4)

	assert.True(t, match.IsTeamMatch)
	assert.Equal(t, reds.ID, match.WinnerID)

	// Winners score against the blue average of 1000, losers against the
	// red average of 1250.
	assert.Equal(t, 1208, a.Rating("foos"))
	assert.Equal(t, 1305, b.Rating("foos"))
	assert.Equal(t, 994, c.Rating("foos"))
	assert.Equal(t, 994, d.Rating("foos"))

	// Both teams got registered as a side effect.
	_, ok := game.Team(reds.ID)
	assert.True(t, ok)
	_, ok = game.Team(blues.ID)
	assert.True(t, ok)
	assert.Len(t, game.AllTeams(), 2)
}

func TestRegisterTeamIdempotent(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1000, 32)
	a := NewPlayer("Alice", "alice@example.com")

	team := game.CreateTeam("Reds", []*Player{a})
	game.RegisterTeam(team)

	assert.Len(t, game.AllTeams(), 1)
}
