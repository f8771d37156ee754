package match

import "context"

// Filter narrows match List results. Search matches the venue as a substring.
type Filter struct {
	Limit     int
	Offset    int
	Search    string
	MatchType Type
}

// EntryFilter narrows team-entry List results.
type EntryFilter struct {
	Limit   int
	Offset  int
	MatchID int64
	TeamID  int64
}

// Repository describes match and match-team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	Update(ctx context.Context, item Match) (Match, bool, error)
	Delete(ctx context.Context, id int64) (Match, bool, error)

	ListEntries(ctx context.Context, filter EntryFilter) ([]TeamEntry, error)
	GetEntryByID(ctx context.Context, id int64) (TeamEntry, bool, error)
	CreateEntry(ctx context.Context, item TeamEntry) (TeamEntry, error)
	DeleteEntry(ctx context.Context, id int64) (TeamEntry, bool, error)
}
