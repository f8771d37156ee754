package memory

import (
	"context"
	"sort"

	"github.com/wicketline/cricket-stats/internal/domain/performance"
)

type PerformanceRepository struct {
	db *DB
}

func NewPerformanceRepository(db *DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

func (r *PerformanceRepository) List(_ context.Context, filter performance.Filter) ([]performance.Performance, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]performance.Performance, 0, len(r.db.performances))
	for _, id := range sortedIDs(r.db.performances) {
		item := r.db.performances[id]
		if filter.MatchID > 0 && item.MatchID != filter.MatchID {
			continue
		}
		if filter.PlayerID > 0 && item.PlayerID != filter.PlayerID {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *PerformanceRepository) GetByID(_ context.Context, id int64) (performance.Performance, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.performances[id]
	return item, ok, nil
}

func (r *PerformanceRepository) Create(_ context.Context, item performance.Performance) (performance.Performance, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if performanceExists(r.db, item.MatchID, item.PlayerID, 0) {
		return performance.Performance{}, performance.ErrDuplicate
	}

	item.ID = r.db.nextID("performance")
	r.db.performances[item.ID] = item
	return item, nil
}

func (r *PerformanceRepository) Update(_ context.Context, item performance.Performance) (performance.Performance, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.performances[item.ID]; !ok {
		return performance.Performance{}, false, nil
	}
	if performanceExists(r.db, item.MatchID, item.PlayerID, item.ID) {
		return performance.Performance{}, false, performance.ErrDuplicate
	}

	r.db.performances[item.ID] = item
	return item, true, nil
}

func (r *PerformanceRepository) Delete(_ context.Context, id int64) (performance.Performance, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.performances[id]
	if !ok {
		return performance.Performance{}, false, nil
	}

	delete(r.db.performances, id)
	return item, true, nil
}

func (r *PerformanceRepository) TotalRuns(_ context.Context, playerID int64) (performance.PlayerTotal, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.players[playerID]
	if !ok {
		return performance.PlayerTotal{}, false, nil
	}

	total := performance.PlayerTotal{PlayerID: p.ID, PlayerName: p.Name}
	for _, perf := range r.db.performances {
		if perf.PlayerID == playerID {
			total.TotalRuns += perf.RunsScored
		}
	}
	return total, true, nil
}

func (r *PerformanceRepository) Summary(_ context.Context, filter performance.SummaryFilter) ([]performance.SummaryRow, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]performance.SummaryRow, 0, len(r.db.performances))
	for _, id := range sortedIDs(r.db.performances) {
		perf := r.db.performances[id]
		if filter.MatchID > 0 && perf.MatchID != filter.MatchID {
			continue
		}
		if filter.PlayerID > 0 && perf.PlayerID != filter.PlayerID {
			continue
		}

		m, ok := r.db.matches[perf.MatchID]
		if !ok {
			continue
		}
		p, ok := r.db.players[perf.PlayerID]
		if !ok {
			continue
		}
		t, ok := r.db.teams[p.TeamID]
		if !ok {
			continue
		}

		out = append(out, performance.SummaryRow{
			MatchID:      m.ID,
			MatchDate:    m.MatchDate,
			Venue:        m.Venue,
			PlayerName:   p.Name,
			TeamName:     t.Name,
			RunsScored:   perf.RunsScored,
			WicketsTaken: perf.WicketsTaken,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchDate.After(out[j].MatchDate) })
	return paginate(out, filter.Limit, filter.Offset), nil
}

func performanceExists(db *DB, matchID, playerID, excludeID int64) bool {
	for _, existing := range db.performances {
		if existing.ID != excludeID && existing.MatchID == matchID && existing.PlayerID == playerID {
			return true
		}
	}
	return false
}
