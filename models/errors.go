// models/errors.go
package models

import "errors"

// Failure values returned by container and game operations. Handlers map
// these to HTTP statuses with errors.Is, so callers can tell a missing
// entity apart from an unsupported play mode.
var (
	// ErrNotFound: a referenced game, player, team or match id is unknown.
	ErrNotFound = errors.New("not found")

	// ErrTeamPlayUnsupported: the game variant refuses team matches.
	ErrTeamPlayUnsupported = errors.New("team play is not supported for this game")

	// ErrMatchCompleted: scoring attempted on a finished match.
	ErrMatchCompleted = errors.New("match is already completed")

	// ErrPlayerNotInMatch: the scorer is not one of the match participants.
	ErrPlayerNotInMatch = errors.New("player is not part of this match")
)
