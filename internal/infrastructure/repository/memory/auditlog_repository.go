package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/auditlog"
)

type AuditLogRepository struct {
	db *DB
}

func NewAuditLogRepository(db *DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) List(_ context.Context, filter auditlog.Filter) ([]auditlog.Entry, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]auditlog.Entry, 0, len(r.db.auditLogs))
	for _, id := range sortedIDs(r.db.auditLogs) {
		item := r.db.auditLogs[id]
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Statement), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.TableName != "" && item.TableName != filter.TableName {
			continue
		}
		if filter.OperationType != "" && item.OperationType != filter.OperationType {
			continue
		}
		out = append(out, item)
	}
	// Newest first, matching the Postgres ordering.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ExecutedAt.Equal(out[j].ExecutedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].ExecutedAt.After(out[j].ExecutedAt)
	})
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *AuditLogRepository) GetByID(_ context.Context, id int64) (auditlog.Entry, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.auditLogs[id]
	return item, ok, nil
}

func (r *AuditLogRepository) Append(_ context.Context, item auditlog.Entry) (auditlog.Entry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item.ID = r.db.nextID("sql_logs")
	if item.ExecutedAt.IsZero() {
		item.ExecutedAt = time.Now().UTC()
	}
	r.db.auditLogs[item.ID] = item
	return item, nil
}

func (r *AuditLogRepository) Delete(_ context.Context, id int64) (auditlog.Entry, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.auditLogs[id]
	if !ok {
		return auditlog.Entry{}, false, nil
	}

	delete(r.db.auditLogs, id)
	return item, true, nil
}
