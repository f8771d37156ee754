package result

import (
	"errors"
	"fmt"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/score"
)

// ErrDuplicate marks a second result row for the same match. The match id is
// covered by a unique constraint; inserts never pre-check.
var ErrDuplicate = errors.New("match result already exists for this match")

// MatchResult is the derived outcome of a match. WinningTeamID is nil for a
// tied match or a result recorded without a winner.
type MatchResult struct {
	ID            int64
	MatchID       int64
	WinningTeamID *int64
	ResultSummary *string
	CreatedAt     time.Time
}

func (r MatchResult) Validate() error {
	if r.MatchID <= 0 {
		return fmt.Errorf("match result match id is required")
	}
	if r.WinningTeamID != nil && *r.WinningTeamID <= 0 {
		return fmt.Errorf("match result winning team id must be positive")
	}

	return nil
}

// Recording bundles the two innings scores and the derived result so the
// store can persist them in a single transaction. A partial failure rolls
// back everything; no orphaned score rows survive.
type Recording struct {
	Result MatchResult
	Scores []score.MatchScore
}
