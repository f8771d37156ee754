package postgres

import "github.com/wicketline/cricket-stats/internal/domain/score"

type matchScoreTableModel struct {
	ID          int64   `db:"id"`
	MatchTeamID int64   `db:"match_team_id"`
	Runs        int     `db:"runs"`
	Wickets     int     `db:"wickets"`
	Overs       float64 `db:"overs"`
}

func (m matchScoreTableModel) toDomain() score.MatchScore {
	return score.MatchScore{
		ID:          m.ID,
		MatchTeamID: m.MatchTeamID,
		Runs:        m.Runs,
		Wickets:     m.Wickets,
		Overs:       m.Overs,
	}
}
