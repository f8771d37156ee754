package team

import "context"

// Filter narrows List results. Search matches name or country as a substring.
type Filter struct {
	Limit  int
	Offset int
	Search string
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) (Team, bool, error)
	Delete(ctx context.Context, id int64) (Team, bool, error)
}
