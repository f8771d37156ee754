package memory

import (
	"context"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/result"
	"github.com/wicketline/cricket-stats/internal/domain/score"
)

type MatchResultRepository struct {
	db *DB
}

func NewMatchResultRepository(db *DB) *MatchResultRepository {
	return &MatchResultRepository{db: db}
}

func (r *MatchResultRepository) List(_ context.Context, filter result.Filter) ([]result.MatchResult, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]result.MatchResult, 0, len(r.db.results))
	for _, id := range sortedIDs(r.db.results) {
		item := r.db.results[id]
		if filter.MatchID > 0 && item.MatchID != filter.MatchID {
			continue
		}
		if filter.WinningTeamID > 0 && (item.WinningTeamID == nil || *item.WinningTeamID != filter.WinningTeamID) {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *MatchResultRepository) GetByID(_ context.Context, id int64) (result.MatchResult, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.results[id]
	return item, ok, nil
}

func (r *MatchResultRepository) Create(_ context.Context, item result.MatchResult) (result.MatchResult, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if resultExistsForMatch(r.db, item.MatchID, 0) {
		return result.MatchResult{}, result.ErrDuplicate
	}

	item.ID = r.db.nextID("match_results")
	item.CreatedAt = time.Now().UTC()
	r.db.results[item.ID] = item
	return item, nil
}

func (r *MatchResultRepository) Update(_ context.Context, item result.MatchResult) (result.MatchResult, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.results[item.ID]
	if !ok {
		return result.MatchResult{}, false, nil
	}
	if resultExistsForMatch(r.db, item.MatchID, item.ID) {
		return result.MatchResult{}, false, result.ErrDuplicate
	}

	item.CreatedAt = existing.CreatedAt
	r.db.results[item.ID] = item
	return item, true, nil
}

func (r *MatchResultRepository) Delete(_ context.Context, id int64) (result.MatchResult, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.results[id]
	if !ok {
		return result.MatchResult{}, false, nil
	}

	delete(r.db.results, id)
	return item, true, nil
}

// Record mirrors the transactional Postgres implementation: either every
// score row and the result row land, or the store is left untouched.
func (r *MatchResultRepository) Record(_ context.Context, rec result.Recording) (result.MatchResult, []score.MatchScore, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if resultExistsForMatch(r.db, rec.Result.MatchID, 0) {
		return result.MatchResult{}, nil, result.ErrDuplicate
	}
	seen := make(map[int64]struct{}, len(rec.Scores))
	for _, s := range rec.Scores {
		if _, dup := seen[s.MatchTeamID]; dup {
			return result.MatchResult{}, nil, score.ErrDuplicateMatchTeam
		}
		seen[s.MatchTeamID] = struct{}{}
		if scoreExistsForMatchTeam(r.db, s.MatchTeamID, 0) {
			return result.MatchResult{}, nil, score.ErrDuplicateMatchTeam
		}
	}

	scores := make([]score.MatchScore, 0, len(rec.Scores))
	for _, s := range rec.Scores {
		s.ID = r.db.nextID("match_scores")
		r.db.scores[s.ID] = s
		scores = append(scores, s)
	}

	item := rec.Result
	item.ID = r.db.nextID("match_results")
	item.CreatedAt = time.Now().UTC()
	r.db.results[item.ID] = item

	return item, scores, nil
}

func resultExistsForMatch(db *DB, matchID, excludeID int64) bool {
	for _, existing := range db.results {
		if existing.ID != excludeID && existing.MatchID == matchID {
			return true
		}
	}
	return false
}
