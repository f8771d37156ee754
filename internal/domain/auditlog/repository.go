package auditlog

import "context"

// Filter narrows audit List results. Search matches the statement text as a substring.
type Filter struct {
	Limit         int
	Offset        int
	Search        string
	Status        Status
	TableName     string
	OperationType string
}

// Repository describes audit-log persistence. The log is append-only:
// entries are created, listed and pruned, never updated.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Entry, error)
	GetByID(ctx context.Context, id int64) (Entry, bool, error)
	Append(ctx context.Context, item Entry) (Entry, error)
	Delete(ctx context.Context, id int64) (Entry, bool, error)
}
