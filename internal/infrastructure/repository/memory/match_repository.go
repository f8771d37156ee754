package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/match"
)

type MatchRepository struct {
	db *DB
}

func NewMatchRepository(db *DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]match.Match, 0, len(r.db.matches))
	for _, id := range sortedIDs(r.db.matches) {
		item := r.db.matches[id]
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Venue), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.MatchType != "" && item.MatchType != filter.MatchType {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchDate.After(out[j].MatchDate) })
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.matches[id]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item.ID = r.db.nextID("matches")
	item.CreatedAt = time.Now().UTC()
	r.db.matches[item.ID] = item
	return item, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) (match.Match, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.matches[item.ID]
	if !ok {
		return match.Match{}, false, nil
	}

	item.CreatedAt = existing.CreatedAt
	r.db.matches[item.ID] = item
	return item, true, nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (match.Match, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.matches[id]
	if !ok {
		return match.Match{}, false, nil
	}
	if matchReferenced(r.db, id) {
		return match.Match{}, false, match.ErrInUse
	}

	delete(r.db.matches, id)
	return item, true, nil
}

func (r *MatchRepository) ListEntries(_ context.Context, filter match.EntryFilter) ([]match.TeamEntry, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]match.TeamEntry, 0, len(r.db.matchTeams))
	for _, id := range sortedIDs(r.db.matchTeams) {
		item := r.db.matchTeams[id]
		if filter.MatchID > 0 && item.MatchID != filter.MatchID {
			continue
		}
		if filter.TeamID > 0 && item.TeamID != filter.TeamID {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *MatchRepository) GetEntryByID(_ context.Context, id int64) (match.TeamEntry, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.matchTeams[id]
	return item, ok, nil
}

func (r *MatchRepository) CreateEntry(_ context.Context, item match.TeamEntry) (match.TeamEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.matchTeams {
		if existing.MatchID == item.MatchID && existing.TeamID == item.TeamID {
			return match.TeamEntry{}, match.ErrDuplicateEntry
		}
	}

	item.ID = r.db.nextID("match_teams")
	r.db.matchTeams[item.ID] = item
	return item, nil
}

func (r *MatchRepository) DeleteEntry(_ context.Context, id int64) (match.TeamEntry, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.matchTeams[id]
	if !ok {
		return match.TeamEntry{}, false, nil
	}
	for _, s := range r.db.scores {
		if s.MatchTeamID == id {
			return match.TeamEntry{}, false, match.ErrEntryInUse
		}
	}

	delete(r.db.matchTeams, id)
	return item, true, nil
}

func matchReferenced(db *DB, matchID int64) bool {
	for _, entry := range db.matchTeams {
		if entry.MatchID == matchID {
			return true
		}
	}
	for _, perf := range db.performances {
		if perf.MatchID == matchID {
			return true
		}
	}
	for _, res := range db.results {
		if res.MatchID == matchID {
			return true
		}
	}
	return false
}
