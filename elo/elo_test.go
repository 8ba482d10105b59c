package elo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedScoreEqualRatings(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1500, 1500), 1e-9)
}

func TestExpectedScoreFavorsHigherRating(t *testing.T) {
	stronger := ExpectedScore(1700, 1300)
	weaker := ExpectedScore(1300, 1700)

	assert.Greater(t, stronger, 0.9)
	assert.InDelta(t, 1.0, stronger+weaker, 1e-9)
}

func TestDeltaEqualRatings(t *testing.T) {
	assert.Equal(t, 16, Delta(1500, 1500, 1.0, 32))
	assert.Equal(t, -16, Delta(1500, 1500, 0.0, 32))
	assert.Equal(t, 0, Delta(1500, 1500, 0.5, 32))
}

// The rounding rule is floor(x+0.5): a -12.5 raw delta rounds to -12.
func TestDeltaRoundingHalfTowardPositive(t *testing.T) {
	assert.Equal(t, -12, Delta(1500, 1500, 0.0, 25))
	assert.Equal(t, 13, Delta(1500, 1500, 1.0, 25))
}

func TestDeltaSymmetricAtEqualRatings(t *testing.T) {
	for _, k := range []int{16, 24, 32, 40} {
		win := Delta(1200, 1200, 1.0, k)
		loss := Delta(1200, 1200, 0.0, k)
		assert.Equal(t, -loss, win, "K=%d", k)
	}
}

func TestDeltaUnderdogWinsBig(t *testing.T) {
	// A 1000-rated player beating a 1400-rated one gains close to the
	// full K; the favorite gains almost nothing for winning.
	assert.Equal(t, 29, Delta(1000, 1400, 1.0, 32))
	assert.Equal(t, 3, Delta(1400, 1000, 1.0, 32))
}
