package postgres

import (
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/performance"
)

type performanceTableModel struct {
	ID           int64 `db:"id"`
	MatchID      int64 `db:"match_id"`
	PlayerID     int64 `db:"player_id"`
	RunsScored   int   `db:"runs_scored"`
	WicketsTaken int   `db:"wickets_taken"`
}

func (m performanceTableModel) toDomain() performance.Performance {
	return performance.Performance{
		ID:           m.ID,
		MatchID:      m.MatchID,
		PlayerID:     m.PlayerID,
		RunsScored:   m.RunsScored,
		WicketsTaken: m.WicketsTaken,
	}
}

type playerTotalRowModel struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	TotalRuns  int    `db:"total_runs"`
}

type summaryRowModel struct {
	MatchID      int64     `db:"match_id"`
	MatchDate    time.Time `db:"match_date"`
	Venue        string    `db:"venue"`
	PlayerName   string    `db:"player_name"`
	TeamName     string    `db:"team_name"`
	RunsScored   int       `db:"runs_scored"`
	WicketsTaken int       `db:"wickets_taken"`
}
