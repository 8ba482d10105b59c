package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerRatingDefaults(t *testing.T) {
	p := NewPlayer("Alice", "alice@example.com")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 1000, p.Rating("chess"))
	assert.Equal(t, 1200, p.RatingOr("chess", 1200))
	assert.False(t, p.HasRating("chess"))

	p.SetRating("chess", 1350)
	assert.True(t, p.HasRating("chess"))
	assert.Equal(t, 1350, p.Rating("chess"))
	assert.Equal(t, 1350, p.RatingOr("chess", 1200))
}

func TestPlayerUpdateRating(t *testing.T) {
	p := NewPlayer("Alice", "alice@example.com")

	// The first update starts from the provided initial rating.
	assert.Equal(t, 1216, p.UpdateRating("chess", 16, 1200))
	assert.Equal(t, 1200, p.UpdateRating("chess", -16, 1200))

	// Ratings are per game.
	assert.Equal(t, 1000, p.Rating("darts"))
}
