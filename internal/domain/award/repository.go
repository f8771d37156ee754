package award

import "context"

// Filter narrows award List results. Search matches the award name as a substring.
type Filter struct {
	Limit    int
	Offset   int
	Search   string
	Category Category
}

// PlayerAwardFilter narrows player-award List results.
type PlayerAwardFilter struct {
	Limit    int
	Offset   int
	PlayerID int64
	AwardID  int64
	Year     int
}

// Repository describes award and player-award persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Award, error)
	GetByID(ctx context.Context, id int64) (Award, bool, error)
	Create(ctx context.Context, item Award) (Award, error)
	Update(ctx context.Context, item Award) (Award, bool, error)
	Delete(ctx context.Context, id int64) (Award, bool, error)

	ListPlayerAwards(ctx context.Context, filter PlayerAwardFilter) ([]PlayerAward, error)
	GetPlayerAwardByID(ctx context.Context, id int64) (PlayerAward, bool, error)
	CreatePlayerAward(ctx context.Context, item PlayerAward) (PlayerAward, error)
	UpdatePlayerAward(ctx context.Context, item PlayerAward) (PlayerAward, bool, error)
	DeletePlayerAward(ctx context.Context, id int64) (PlayerAward, bool, error)
}
