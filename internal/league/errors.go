package league

import "errors"

var (
	// ErrInvalidTeamName covers empty, non-alphabetic and duplicate team names.
	ErrInvalidTeamName     = errors.New("team name must be unique and contain only letters")
	ErrQuotaExceeded       = errors.New("not enough players for more teams")
	ErrTeamFull            = errors.New("team is full")
	ErrPlayerNotUnassigned = errors.New("player is not unassigned")
	ErrPlayerNotOnTeam     = errors.New("player is not on team")
	ErrUnknownTeam         = errors.New("team does not belong to this league")
	ErrDuplicatePlayer     = errors.New("duplicate player")
	ErrNothingToAssign     = errors.New("there are no unassigned players")
	ErrSelectionOutOfRange = errors.New("selection out of range")
)
