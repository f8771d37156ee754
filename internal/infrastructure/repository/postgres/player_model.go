package postgres

import (
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/player"
)

type playerTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	TeamID    int64     `db:"team_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		TeamID:    m.TeamID,
		Role:      player.Role(m.Role),
		CreatedAt: m.CreatedAt,
	}
}
