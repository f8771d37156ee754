package performance

import "context"

type Filter struct {
	Limit    int
	Offset   int
	MatchID  int64
	PlayerID int64
}

// SummaryFilter narrows the joined performance view.
type SummaryFilter struct {
	Limit    int
	Offset   int
	MatchID  int64
	PlayerID int64
}

// Repository describes performance persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Performance, error)
	GetByID(ctx context.Context, id int64) (Performance, bool, error)
	Create(ctx context.Context, item Performance) (Performance, error)
	Update(ctx context.Context, item Performance) (Performance, bool, error)
	Delete(ctx context.Context, id int64) (Performance, bool, error)

	// TotalRuns aggregates runs for one player; players with no performance
	// rows report zero, they are not absent.
	TotalRuns(ctx context.Context, playerID int64) (PlayerTotal, bool, error)
	Summary(ctx context.Context, filter SummaryFilter) ([]SummaryRow, error)
}
