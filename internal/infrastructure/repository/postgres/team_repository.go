package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketline/cricket-stats/internal/domain/team"
	qb "github.com/wicketline/cricket-stats/internal/platform/querybuilder"
)

const teamColumns = "id, name, country, created_at"

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	builder := qb.Select(teamColumns).From("teams")
	if filter.Search != "" {
		builder = builder.Where(qb.Or(
			qb.ILike("name", filter.Search),
			qb.ILike("country", filter.Search),
		))
	}
	query, args, err := builder.
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns).From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertInto("teams").
		Columns("name", "country").
		Values(item.Name, item.Country).
		Suffix("RETURNING " + teamColumns).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", markConstraintError(err, team.ErrNameTaken, nil))
	}
	return row.toDomain(), nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, bool, error) {
	query, args, err := qb.Update("teams").
		Set("name", item.Name).
		Set("country", item.Country).
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + teamColumns).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("update team: %w", markConstraintError(err, team.ErrNameTaken, nil))
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.DeleteFrom("teams").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + teamColumns).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build delete team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("delete team: %w", markConstraintError(err, nil, team.ErrInUse))
	}
	return row.toDomain(), true, nil
}
