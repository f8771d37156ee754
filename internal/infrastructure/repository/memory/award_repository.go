package memory

import (
	"context"
	"strings"

	"github.com/wicketline/cricket-stats/internal/domain/award"
)

type AwardRepository struct {
	db *DB
}

func NewAwardRepository(db *DB) *AwardRepository {
	return &AwardRepository{db: db}
}

func (r *AwardRepository) List(_ context.Context, filter award.Filter) ([]award.Award, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]award.Award, 0, len(r.db.awards))
	for _, id := range sortedIDs(r.db.awards) {
		item := r.db.awards[id]
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *AwardRepository) GetByID(_ context.Context, id int64) (award.Award, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.awards[id]
	return item, ok, nil
}

func (r *AwardRepository) Create(_ context.Context, item award.Award) (award.Award, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if awardNameExists(r.db, item.Name, 0) {
		return award.Award{}, award.ErrNameTaken
	}

	item.ID = r.db.nextID("awards")
	r.db.awards[item.ID] = item
	return item, nil
}

func (r *AwardRepository) Update(_ context.Context, item award.Award) (award.Award, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.awards[item.ID]; !ok {
		return award.Award{}, false, nil
	}
	if awardNameExists(r.db, item.Name, item.ID) {
		return award.Award{}, false, award.ErrNameTaken
	}

	r.db.awards[item.ID] = item
	return item, true, nil
}

func (r *AwardRepository) Delete(_ context.Context, id int64) (award.Award, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.awards[id]
	if !ok {
		return award.Award{}, false, nil
	}
	for _, pa := range r.db.playerAwards {
		if pa.AwardID == id {
			return award.Award{}, false, award.ErrInUse
		}
	}

	delete(r.db.awards, id)
	return item, true, nil
}

func awardNameExists(db *DB, name string, excludeID int64) bool {
	for _, existing := range db.awards {
		if existing.ID != excludeID && existing.Name == name {
			return true
		}
	}
	return false
}

func (r *AwardRepository) ListPlayerAwards(_ context.Context, filter award.PlayerAwardFilter) ([]award.PlayerAward, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]award.PlayerAward, 0, len(r.db.playerAwards))
	for _, id := range sortedIDs(r.db.playerAwards) {
		item := r.db.playerAwards[id]
		if filter.PlayerID > 0 && item.PlayerID != filter.PlayerID {
			continue
		}
		if filter.AwardID > 0 && item.AwardID != filter.AwardID {
			continue
		}
		if filter.Year > 0 && item.Year != filter.Year {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *AwardRepository) GetPlayerAwardByID(_ context.Context, id int64) (award.PlayerAward, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.playerAwards[id]
	return item, ok, nil
}

func (r *AwardRepository) CreatePlayerAward(_ context.Context, item award.PlayerAward) (award.PlayerAward, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item.ID = r.db.nextID("player_awards")
	r.db.playerAwards[item.ID] = item
	return item, nil
}

func (r *AwardRepository) UpdatePlayerAward(_ context.Context, item award.PlayerAward) (award.PlayerAward, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.playerAwards[item.ID]; !ok {
		return award.PlayerAward{}, false, nil
	}

	r.db.playerAwards[item.ID] = item
	return item, true, nil
}

func (r *AwardRepository) DeletePlayerAward(_ context.Context, id int64) (award.PlayerAward, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.playerAwards[id]
	if !ok {
		return award.PlayerAward{}, false, nil
	}

	delete(r.db.playerAwards, id)
	return item, true, nil
}
