package performance

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicate marks a second performance row for the same (match, player) pair.
// The pair is covered by a unique constraint; inserts never pre-check.
var ErrDuplicate = errors.New("performance already exists for this match and player")

// Performance is one player's batting/bowling record in one match.
type Performance struct {
	ID           int64
	MatchID      int64
	PlayerID     int64
	RunsScored   int
	WicketsTaken int
}

func (p Performance) Validate() error {
	if p.MatchID <= 0 {
		return fmt.Errorf("performance match id is required")
	}
	if p.PlayerID <= 0 {
		return fmt.Errorf("performance player id is required")
	}
	if p.RunsScored < 0 {
		return fmt.Errorf("performance runs scored must be non-negative")
	}
	if p.WicketsTaken < 0 {
		return fmt.Errorf("performance wickets taken must be non-negative")
	}

	return nil
}

// PlayerTotal is the aggregate of runs scored by one player across all matches.
type PlayerTotal struct {
	PlayerID   int64
	PlayerName string
	TotalRuns  int
}

// SummaryRow is one line of the joined match/player/team performance view.
type SummaryRow struct {
	MatchID      int64
	MatchDate    time.Time
	Venue        string
	PlayerName   string
	TeamName     string
	RunsScored   int
	WicketsTaken int
}
