package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameInfoDefaults(t *testing.T) {
	info := NewGameInfo("", "Chess", "", 0, 0)

	assert.NotEmpty(t, info.ID)
	assert.Equal(t, 1000, info.InitialRating)
	assert.Equal(t, 32, info.KFactor)

	custom := NewGameInfo("chess", "Chess", "classic", 1200, 24)
	assert.Equal(t, "chess", custom.ID)
	assert.Equal(t, 1200, custom.InitialRating)
	assert.Equal(t, 24, custom.KFactor)
}

func TestRecordMatchEqualRatings(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1000, 32)
	winner := NewPlayer("Alice", "alice@example.com")
	loser := NewPlayer("Bob", "bob@example.com")

	winnerChange, loserChange := game.RecordMatch(winner, loser)

	assert.Equal(t, 16, winnerChange.Delta)
	assert.Equal(t, 1016, winnerChange.NewRating)
	assert.Equal(t, -16, loserChange.Delta)
	assert.Equal(t, 984, loserChange.NewRating)

	assert.Equal(t, 1016, winner.Rating("foos"))
	assert.Equal(t, 984, loser.Rating("foos"))
}

func TestRecordMatchUnderdogWin(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1000, 32)
	underdog := NewPlayer("Alice", "alice@example.com")
	favorite := NewPlayer("Bob", "bob@example.com")
	favorite.SetRating("foos", 1400)

	winnerChange, loserChange := game.RecordMatch(underdog, favorite)

	// Both deltas come from the pre-match ratings.
	assert.Equal(t, 29, winnerChange.Delta)
	assert.Equal(t, -29, loserChange.Delta)
	assert.Equal(t, 1029, underdog.Rating("foos"))
	assert.Equal(t, 1371, favorite.Rating("foos"))
}

func TestRecordGroupMatchSideAverages(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1000, 32)
	a := NewPlayer("Alice", "alice@example.com")
	a.SetRating("foos", 1200)
	b := NewPlayer("Bob", "bob@example.com")
	b.SetRating("foos", 1300)
	c := NewPlayer("Carol", "carol@example.com")
	c.SetRating("foos", 1000)

	changes := game.RecordGroupMatch([]*Player{a, b}, []*Player{c})
	require.Len(t, changes, 3)

	// Winners score against the loser-side average of 1000, the loser
	// against the winner-side average of 1250, all fixed up front.
	assert.Equal(t, RatingChange{PlayerID: a.ID, Delta: 8, NewRating: 1208}, changes[0])
	assert.Equal(t, RatingChange{PlayerID: b.ID, Delta: 5, NewRating: 1305}, changes[1])
	assert.Equal(t, RatingChange{PlayerID: c.ID, Delta: -6, NewRating: 994}, changes[2])
}

func TestRecordGroupMatchEmptySide(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1200, 32)
	c := NewPlayer("Carol", "carol@example.com")

	// An empty winner side averages to the game's initial rating, and an
	// unrated loser starts from it too.
	changes := game.RecordGroupMatch(nil, []*Player{c})
	require.Len(t, changes, 1)
	assert.Equal(t, -16, changes[0].Delta)
	assert.Equal(t, 1184, changes[0].NewRating)
}

func TestAverageRating(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1500, 32)
	a := NewPlayer("Alice", "alice@example.com")
	a.SetRating("foos", 1200)
	b := NewPlayer("Bob", "bob@example.com")
	b.SetRating("foos", 1301)

	assert.Equal(t, 1500, game.AverageRating(nil))
	assert.Equal(t, 1250, game.AverageRating([]*Player{a, b}))

	// Unrated players count at the game's initial rating.
	c := NewPlayer("Carol", "carol@example.com")
	assert.Equal(t, 1333, game.AverageRating([]*Player{a, b, c}))
}

func TestRecordTeamMatchDefaultsToGroupUpdate(t *testing.T) {
	game := NewTablefootball("foos", "Foosball", "", 1000, 32)
	a := NewPlayer("Alice", "alice@example.com")
	b := NewPlayer("Bob", "bob@example.com")

	winners := NewTeam("Reds", "foos", a)
	losers := NewTeam("Blues", "foos", b)

	changes, err := game.GameInfo.RecordTeamMatch(winners, losers)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, 16, changes[0].Delta)
	assert.Equal(t, -16, changes[1].Delta)
}
