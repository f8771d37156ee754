package memory

import (
	"context"
	"strings"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/player"
)

type PlayerRepository struct {
	db *DB
}

func NewPlayerRepository(db *DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]player.Player, 0, len(r.db.players))
	for _, id := range sortedIDs(r.db.players) {
		item := r.db.players[id]
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.TeamID > 0 && item.TeamID != filter.TeamID {
			continue
		}
		if filter.Role != "" && item.Role != filter.Role {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.players[id]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item.ID = r.db.nextID("players")
	item.CreatedAt = time.Now().UTC()
	r.db.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (player.Player, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.players[item.ID]
	if !ok {
		return player.Player{}, false, nil
	}

	item.CreatedAt = existing.CreatedAt
	r.db.players[item.ID] = item
	return item, true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (player.Player, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.players[id]
	if !ok {
		return player.Player{}, false, nil
	}
	if playerReferenced(r.db, id) {
		return player.Player{}, false, player.ErrInUse
	}

	delete(r.db.players, id)
	return item, true, nil
}

func playerReferenced(db *DB, playerID int64) bool {
	for _, perf := range db.performances {
		if perf.PlayerID == playerID {
			return true
		}
	}
	for _, pa := range db.playerAwards {
		if pa.PlayerID == playerID {
			return true
		}
	}
	return false
}
