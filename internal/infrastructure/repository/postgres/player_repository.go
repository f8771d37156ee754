package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketline/cricket-stats/internal/domain/player"
	qb "github.com/wicketline/cricket-stats/internal/platform/querybuilder"
)

const playerColumns = "id, name, team_id, role, created_at"

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	builder := qb.Select(playerColumns).From("players")
	if filter.Search != "" {
		builder = builder.Where(qb.ILike("name", filter.Search))
	}
	if filter.TeamID > 0 {
		builder = builder.Where(qb.Eq("team_id", filter.TeamID))
	}
	if filter.Role != "" {
		builder = builder.Where(qb.Eq("role", string(filter.Role)))
	}
	query, args, err := builder.
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns).From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertInto("players").
		Columns("name", "team_id", "role").
		Values(item.Name, item.TeamID, string(item.Role)).
		Suffix("RETURNING " + playerColumns).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, bool, error) {
	query, args, err := qb.Update("players").
		Set("name", item.Name).
		Set("team_id", item.TeamID).
		Set("role", string(item.Role)).
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + playerColumns).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build update player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("update player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + playerColumns).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build delete player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("delete player: %w", markConstraintError(err, nil, player.ErrInUse))
	}
	return row.toDomain(), true, nil
}
