package memory

import (
	"context"

	"github.com/wicketline/cricket-stats/internal/domain/score"
)

type MatchScoreRepository struct {
	db *DB
}

func NewMatchScoreRepository(db *DB) *MatchScoreRepository {
	return &MatchScoreRepository{db: db}
}

func (r *MatchScoreRepository) List(_ context.Context, filter score.Filter) ([]score.MatchScore, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]score.MatchScore, 0, len(r.db.scores))
	for _, id := range sortedIDs(r.db.scores) {
		item := r.db.scores[id]
		if filter.MatchTeamID > 0 && item.MatchTeamID != filter.MatchTeamID {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *MatchScoreRepository) GetByID(_ context.Context, id int64) (score.MatchScore, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.scores[id]
	return item, ok, nil
}

func (r *MatchScoreRepository) Create(_ context.Context, item score.MatchScore) (score.MatchScore, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if scoreExistsForMatchTeam(r.db, item.MatchTeamID, 0) {
		return score.MatchScore{}, score.ErrDuplicateMatchTeam
	}

	item.ID = r.db.nextID("match_scores")
	r.db.scores[item.ID] = item
	return item, nil
}

func (r *MatchScoreRepository) Update(_ context.Context, item score.MatchScore) (score.MatchScore, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.scores[item.ID]; !ok {
		return score.MatchScore{}, false, nil
	}
	if scoreExistsForMatchTeam(r.db, item.MatchTeamID, item.ID) {
		return score.MatchScore{}, false, score.ErrDuplicateMatchTeam
	}

	r.db.scores[item.ID] = item
	return item, true, nil
}

func (r *MatchScoreRepository) Delete(_ context.Context, id int64) (score.MatchScore, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.scores[id]
	if !ok {
		return score.MatchScore{}, false, nil
	}

	delete(r.db.scores, id)
	return item, true, nil
}

func scoreExistsForMatchTeam(db *DB, matchTeamID, excludeID int64) bool {
	for _, existing := range db.scores {
		if existing.ID != excludeID && existing.MatchTeamID == matchTeamID {
			return true
		}
	}
	return false
}
