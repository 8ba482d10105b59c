// elo/elo.go
package elo

import "math"

const (
	// DefaultRating is the rating assigned to a player with no recorded
	// rating for a game.
	DefaultRating = 1000

	// DefaultKFactor controls how much a single match moves a rating.
	DefaultKFactor = 32
)

// ExpectedScore returns the probability-like expected score for a player
// against an opponent, on the standard 400-point logistic curve.
func ExpectedScore(rating, opponent int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(opponent-rating)/400.0))
}

// Delta returns the rating change for one side of a match.
// score is 1 for a win, 0.5 for a draw and 0 for a loss.
//
// The result is rounded half toward +infinity (floor(x+0.5)), so an
// equal-rating loss with K=25 yields -12, not -13. Clients depend on the
// exact values, keep the rounding rule stable.
func Delta(rating, opponent int, score float64, kFactor int) int {
	expected := ExpectedScore(rating, opponent)
	return int(math.Floor(float64(kFactor)*(score-expected) + 0.5))
}
