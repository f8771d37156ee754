package memory

import (
	"context"
	"strings"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/team"
)

type TeamRepository struct {
	db *DB
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(_ context.Context, filter team.Filter) ([]team.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]team.Team, 0, len(r.db.teams))
	for _, id := range sortedIDs(r.db.teams) {
		item := r.db.teams[id]
		if filter.Search != "" && !matchesTeamSearch(item, filter.Search) {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.teams[id]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if teamNameExists(r.db, item.Name, 0) {
		return team.Team{}, team.ErrNameTaken
	}

	item.ID = r.db.nextID("teams")
	item.CreatedAt = time.Now().UTC()
	r.db.teams[item.ID] = item
	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (team.Team, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.teams[item.ID]
	if !ok {
		return team.Team{}, false, nil
	}
	if teamNameExists(r.db, item.Name, item.ID) {
		return team.Team{}, false, team.ErrNameTaken
	}

	item.CreatedAt = existing.CreatedAt
	r.db.teams[item.ID] = item
	return item, true, nil
}

func (r *TeamRepository) Delete(_ context.Context, id int64) (team.Team, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.teams[id]
	if !ok {
		return team.Team{}, false, nil
	}
	if teamReferenced(r.db, id) {
		return team.Team{}, false, team.ErrInUse
	}

	delete(r.db.teams, id)
	return item, true, nil
}

func matchesTeamSearch(item team.Team, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Country), needle)
}

func teamNameExists(db *DB, name string, excludeID int64) bool {
	for _, existing := range db.teams {
		if existing.ID != excludeID && existing.Name == name {
			return true
		}
	}
	return false
}

func teamReferenced(db *DB, teamID int64) bool {
	for _, p := range db.players {
		if p.TeamID == teamID {
			return true
		}
	}
	for _, entry := range db.matchTeams {
		if entry.TeamID == teamID {
			return true
		}
	}
	for _, res := range db.results {
		if res.WinningTeamID != nil && *res.WinningTeamID == teamID {
			return true
		}
	}
	return false
}
