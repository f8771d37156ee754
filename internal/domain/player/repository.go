package player

import "context"

// Filter narrows List results. Search matches the player name as a substring.
type Filter struct {
	Limit  int
	Offset int
	Search string
	TeamID int64
	Role   Role
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) (Player, bool, error)
	Delete(ctx context.Context, id int64) (Player, bool, error)
}
