package score

import (
	"errors"
	"fmt"
)

// ErrDuplicateMatchTeam marks a second score row for the same match-team entry.
var ErrDuplicateMatchTeam = errors.New("score already exists for this match team")

// MatchScore is one innings total recorded against a match-team entry.
type MatchScore struct {
	ID          int64
	MatchTeamID int64
	Runs        int
	Wickets     int
	Overs       float64
}

func (s MatchScore) Validate() error {
	if s.MatchTeamID <= 0 {
		return fmt.Errorf("score match team id is required")
	}
	if s.Runs < 0 {
		return fmt.Errorf("score runs must be non-negative")
	}
	if s.Wickets < 0 {
		return fmt.Errorf("score wickets must be non-negative")
	}
	if s.Overs <= 0 {
		return fmt.Errorf("score overs must be greater than zero")
	}

	return nil
}
