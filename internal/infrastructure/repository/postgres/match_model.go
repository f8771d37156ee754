package postgres

import (
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/match"
)

type matchTableModel struct {
	ID        int64     `db:"id"`
	Venue     string    `db:"venue"`
	MatchDate time.Time `db:"match_date"`
	MatchType string    `db:"match_type"`
	CreatedAt time.Time `db:"created_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:        m.ID,
		Venue:     m.Venue,
		MatchDate: m.MatchDate,
		MatchType: match.Type(m.MatchType),
		CreatedAt: m.CreatedAt,
	}
}

type matchTeamTableModel struct {
	ID      int64 `db:"id"`
	MatchID int64 `db:"match_id"`
	TeamID  int64 `db:"team_id"`
}

func (m matchTeamTableModel) toDomain() match.TeamEntry {
	return match.TeamEntry{
		ID:      m.ID,
		MatchID: m.MatchID,
		TeamID:  m.TeamID,
	}
}
