package memory

import (
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/match"
	"github.com/wicketline/cricket-stats/internal/domain/player"
	"github.com/wicketline/cricket-stats/internal/domain/team"
)

// SeedDB returns a store pre-loaded with a small set of international sides,
// squads and fixtures. Used by the in-memory wiring and tests.
func SeedDB() *DB {
	db := NewDB()
	now := time.Now().UTC()

	teams := []team.Team{
		{Name: "India", Country: "India"},
		{Name: "Australia", Country: "Australia"},
		{Name: "England", Country: "England"},
		{Name: "New Zealand", Country: "New Zealand"},
	}
	for _, t := range teams {
		t.ID = db.nextID("teams")
		t.CreatedAt = now
		db.teams[t.ID] = t
	}

	players := []player.Player{
		{Name: "Rohit Sharma", TeamID: 1, Role: player.RoleBatsman},
		{Name: "Jasprit Bumrah", TeamID: 1, Role: player.RoleBowler},
		{Name: "Pat Cummins", TeamID: 2, Role: player.RoleBowler},
		{Name: "Travis Head", TeamID: 2, Role: player.RoleBatsman},
		{Name: "Joe Root", TeamID: 3, Role: player.RoleBatsman},
		{Name: "Ben Stokes", TeamID: 3, Role: player.RoleAllRounder},
		{Name: "Kane Williamson", TeamID: 4, Role: player.RoleBatsman},
		{Name: "Tom Latham", TeamID: 4, Role: player.RoleWicketKeeper},
	}
	for _, p := range players {
		p.ID = db.nextID("players")
		p.CreatedAt = now
		db.players[p.ID] = p
	}

	matches := []match.Match{
		{Venue: "Wankhede Stadium", MatchDate: now.AddDate(0, -2, 0), MatchType: match.TypeODI},
		{Venue: "Melbourne Cricket Ground", MatchDate: now.AddDate(0, -1, 0), MatchType: match.TypeT20},
	}
	for _, m := range matches {
		m.ID = db.nextID("matches")
		m.CreatedAt = now
		db.matches[m.ID] = m
	}

	entries := []match.TeamEntry{
		{MatchID: 1, TeamID: 1},
		{MatchID: 1, TeamID: 2},
		{MatchID: 2, TeamID: 3},
		{MatchID: 2, TeamID: 4},
	}
	for _, e := range entries {
		e.ID = db.nextID("match_teams")
		db.matchTeams[e.ID] = e
	}

	return db
}
