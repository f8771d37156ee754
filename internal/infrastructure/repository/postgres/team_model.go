package postgres

import (
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/team"
)

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	CreatedAt time.Time `db:"created_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		Country:   m.Country,
		CreatedAt: m.CreatedAt,
	}
}
