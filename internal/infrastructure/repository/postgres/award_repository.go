package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketline/cricket-stats/internal/domain/award"
	qb "github.com/wicketline/cricket-stats/internal/platform/querybuilder"
)

const (
	awardColumns       = "id, award_name, award_category"
	playerAwardColumns = "id, player_id, award_id, award_year"
)

type AwardRepository struct {
	db *sqlx.DB
}

func NewAwardRepository(db *sqlx.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

func (r *AwardRepository) List(ctx context.Context, filter award.Filter) ([]award.Award, error) {
	builder := qb.Select(awardColumns).From("awards")
	if filter.Search != "" {
		builder = builder.Where(qb.ILike("award_name", filter.Search))
	}
	if filter.Category != "" {
		builder = builder.Where(qb.Eq("award_category", string(filter.Category)))
	}
	query, args, err := builder.
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select awards query: %w", err)
	}

	var rows []awardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select awards: %w", err)
	}

	out := make([]award.Award, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AwardRepository) GetByID(ctx context.Context, id int64) (award.Award, bool, error) {
	query, args, err := qb.Select(awardColumns).From("awards").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return award.Award{}, false, fmt.Errorf("build select award query: %w", err)
	}

	var row awardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return award.Award{}, false, nil
		}
		return award.Award{}, false, fmt.Errorf("get award: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *AwardRepository) Create(ctx context.Context, item award.Award) (award.Award, error) {
	query, args, err := qb.InsertInto("awards").
		Columns("award_name", "award_category").
		Values(item.Name, string(item.Category)).
		Suffix("RETURNING " + awardColumns).
		ToSQL()
	if err != nil {
		return award.Award{}, fmt.Errorf("build insert award query: %w", err)
	}

	var row awardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return award.Award{}, fmt.Errorf("insert award: %w", markConstraintError(err, award.ErrNameTaken, nil))
	}
	return row.toDomain(), nil
}

func (r *AwardRepository) Update(ctx context.Context, item award.Award) (award.Award, bool, error) {
	query, args, err := qb.Update("awards").
		Set("award_name", item.Name).
		Set("award_category", string(item.Category)).
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + awardColumns).
		ToSQL()
	if err != nil {
		return award.Award{}, false, fmt.Errorf("build update award query: %w", err)
	}

	var row awardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return award.Award{}, false, nil
		}
		return award.Award{}, false, fmt.Errorf("update award: %w", markConstraintError(err, award.ErrNameTaken, nil))
	}
	return row.toDomain(), true, nil
}

func (r *AwardRepository) Delete(ctx context.Context, id int64) (award.Award, bool, error) {
	query, args, err := qb.DeleteFrom("awards").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + awardColumns).
		ToSQL()
	if err != nil {
		return award.Award{}, false, fmt.Errorf("build delete award query: %w", err)
	}

	var row awardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return award.Award{}, false, nil
		}
		return award.Award{}, false, fmt.Errorf("delete award: %w", markConstraintError(err, nil, award.ErrInUse))
	}
	return row.toDomain(), true, nil
}

func (r *AwardRepository) ListPlayerAwards(ctx context.Context, filter award.PlayerAwardFilter) ([]award.PlayerAward, error) {
	builder := qb.Select(playerAwardColumns).From("player_awards")
	if filter.PlayerID > 0 {
		builder = builder.Where(qb.Eq("player_id", filter.PlayerID))
	}
	if filter.AwardID > 0 {
		builder = builder.Where(qb.Eq("award_id", filter.AwardID))
	}
	if filter.Year > 0 {
		builder = builder.Where(qb.Eq("award_year", filter.Year))
	}
	query, args, err := builder.
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player awards query: %w", err)
	}

	var rows []playerAwardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player awards: %w", err)
	}

	out := make([]award.PlayerAward, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AwardRepository) GetPlayerAwardByID(ctx context.Context, id int64) (award.PlayerAward, bool, error) {
	query, args, err := qb.Select(playerAwardColumns).From("player_awards").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return award.PlayerAward{}, false, fmt.Errorf("build select player award query: %w", err)
	}

	var row playerAwardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return award.PlayerAward{}, false, nil
		}
		return award.PlayerAward{}, false, fmt.Errorf("get player award: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *AwardRepository) CreatePlayerAward(ctx context.Context, item award.PlayerAward) (award.PlayerAward, error) {
	query, args, err := qb.InsertInto("player_awards").
		Columns("player_id", "award_id", "award_year").
		Values(item.PlayerID, item.AwardID, item.Year).
		Suffix("RETURNING " + playerAwardColumns).
		ToSQL()
	if err != nil {
		return award.PlayerAward{}, fmt.Errorf("build insert player award query: %w", err)
	}

	var row playerAwardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return award.PlayerAward{}, fmt.Errorf("insert player award: %w", err)
	}
	return row.toDomain(), nil
}

func (r *AwardRepository) UpdatePlayerAward(ctx context.Context, item award.PlayerAward) (award.PlayerAward, bool, error) {
	query, args, err := qb.Update("player_awards").
		Set("player_id", item.PlayerID).
		Set("award_id", item.AwardID).
		Set("award_year", item.Year).
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + playerAwardColumns).
		ToSQL()
	if err != nil {
		return award.PlayerAward{}, false, fmt.Errorf("build update player award query: %w", err)
	}

	var row playerAwardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return award.PlayerAward{}, false, nil
		}
		return award.PlayerAward{}, false, fmt.Errorf("update player award: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *AwardRepository) DeletePlayerAward(ctx context.Context, id int64) (award.PlayerAward, bool, error) {
	query, args, err := qb.DeleteFrom("player_awards").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + playerAwardColumns).
		ToSQL()
	if err != nil {
		return award.PlayerAward{}, false, fmt.Errorf("build delete player award query: %w", err)
	}

	var row playerAwardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return award.PlayerAward{}, false, nil
		}
		return award.PlayerAward{}, false, fmt.Errorf("delete player award: %w", err)
	}
	return row.toDomain(), true, nil
}
