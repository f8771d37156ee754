package postgres

import (
	"database/sql"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/result"
)

type matchResultTableModel struct {
	ID            int64          `db:"id"`
	MatchID       int64          `db:"match_id"`
	WinningTeamID sql.NullInt64  `db:"winning_team_id"`
	ResultSummary sql.NullString `db:"result_summary"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (m matchResultTableModel) toDomain() result.MatchResult {
	out := result.MatchResult{
		ID:        m.ID,
		MatchID:   m.MatchID,
		CreatedAt: m.CreatedAt,
	}
	if m.WinningTeamID.Valid {
		winner := m.WinningTeamID.Int64
		out.WinningTeamID = &winner
	}
	if m.ResultSummary.Valid {
		summary := m.ResultSummary.String
		out.ResultSummary = &summary
	}
	return out
}

func nullInt64FromPtr(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullStringFromPtr(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
