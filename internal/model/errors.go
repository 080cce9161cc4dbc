package model

import "errors"

// Common errors used across the application
var (
	// Lookup errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrLeagueNotFound = errors.New("league not found")

	// Validation errors
	ErrInvalidName     = errors.New("name is invalid")
	ErrInvalidEmail    = errors.New("email is invalid")
	ErrInvalidGameType = errors.New("game type is invalid")

	// Uniqueness errors
	ErrDuplicateEmail      = errors.New("email is already in use")
	ErrDuplicateLeagueName = errors.New("league name is already in use")

	// Invariant errors
	ErrNoActiveInvite = errors.New("no active invitation")
	ErrNotAMember     = errors.New("player is not a member of the league")
	ErrNotAnOwner     = errors.New("player is not an owner of the league")
	ErrLastOwner      = errors.New("cannot remove the last owner of the league")
	ErrLeagueClosed   = errors.New("league is already closed")
)
