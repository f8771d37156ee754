package score

import "context"

type Filter struct {
	Limit       int
	Offset      int
	MatchTeamID int64
}

// Repository describes match-score persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]MatchScore, error)
	GetByID(ctx context.Context, id int64) (MatchScore, bool, error)
	Create(ctx context.Context, item MatchScore) (MatchScore, error)
	Update(ctx context.Context, item MatchScore) (MatchScore, bool, error)
	Delete(ctx context.Context, id int64) (MatchScore, bool, error)
}
