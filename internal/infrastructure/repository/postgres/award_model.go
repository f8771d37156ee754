package postgres

import "github.com/wicketline/cricket-stats/internal/domain/award"

type awardTableModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"award_name"`
	Category string `db:"award_category"`
}

func (m awardTableModel) toDomain() award.Award {
	return award.Award{
		ID:       m.ID,
		Name:     m.Name,
		Category: award.Category(m.Category),
	}
}

type playerAwardTableModel struct {
	ID       int64 `db:"id"`
	PlayerID int64 `db:"player_id"`
	AwardID  int64 `db:"award_id"`
	Year     int   `db:"award_year"`
}

func (m playerAwardTableModel) toDomain() award.PlayerAward {
	return award.PlayerAward{
		ID:       m.ID,
		PlayerID: m.PlayerID,
		AwardID:  m.AwardID,
		Year:     m.Year,
	}
}
