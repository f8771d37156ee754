package memory

import (
	"sort"
	"sync"

	"github.com/wicketline/cricket-stats/internal/domain/auditlog"
	"github.com/wicketline/cricket-stats/internal/domain/award"
	"github.com/wicketline/cricket-stats/internal/domain/match"
	"github.com/wicketline/cricket-stats/internal/domain/performance"
	"github.com/wicketline/cricket-stats/internal/domain/player"
	"github.com/wicketline/cricket-stats/internal/domain/result"
	"github.com/wicketline/cricket-stats/internal/domain/score"
	"github.com/wicketline/cricket-stats/internal/domain/team"
)

// DB is the shared in-memory store behind all memory repositories. A single
// store lets repositories enforce the cross-table invariants the Postgres
// schema enforces with unique and foreign key constraints.
type DB struct {
	mu sync.RWMutex

	teams        map[int64]team.Team
	players      map[int64]player.Player
	matches      map[int64]match.Match
	matchTeams   map[int64]match.TeamEntry
	scores       map[int64]score.MatchScore
	performances map[int64]performance.Performance
	awards       map[int64]award.Award
	playerAwards map[int64]award.PlayerAward
	results      map[int64]result.MatchResult
	auditLogs    map[int64]auditlog.Entry

	seq map[string]int64
}

func NewDB() *DB {
	return &DB{
		teams:        make(map[int64]team.Team),
		players:      make(map[int64]player.Player),
		matches:      make(map[int64]match.Match),
		matchTeams:   make(map[int64]match.TeamEntry),
		scores:       make(map[int64]score.MatchScore),
		performances: make(map[int64]performance.Performance),
		awards:       make(map[int64]award.Award),
		playerAwards: make(map[int64]award.PlayerAward),
		results:      make(map[int64]result.MatchResult),
		auditLogs:    make(map[int64]auditlog.Entry),
		seq:          make(map[string]int64),
	}
}

func (d *DB) nextID(table string) int64 {
	d.seq[table]++
	return d.seq[table]
}

func sortedIDs[T any](items map[int64]T) []int64 {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// paginate applies limit/offset the way a LIMIT/OFFSET clause would. A zero
// or negative limit means no cap.
func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
