package result

import (
	"context"

	"github.com/wicketline/cricket-stats/internal/domain/score"
)

type Filter struct {
	Limit         int
	Offset        int
	MatchID       int64
	WinningTeamID int64
}

// Repository describes match-result persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]MatchResult, error)
	GetByID(ctx context.Context, id int64) (MatchResult, bool, error)
	Create(ctx context.Context, item MatchResult) (MatchResult, error)
	Update(ctx context.Context, item MatchResult) (MatchResult, bool, error)
	Delete(ctx context.Context, id int64) (MatchResult, bool, error)

	// Record persists both innings scores and the derived result atomically.
	Record(ctx context.Context, rec Recording) (MatchResult, []score.MatchScore, error)
}
