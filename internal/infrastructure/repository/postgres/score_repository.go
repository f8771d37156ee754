package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketline/cricket-stats/internal/domain/score"
	qb "github.com/wicketline/cricket-stats/internal/platform/querybuilder"
)

const matchScoreColumns = "id, match_team_id, runs, wickets, overs"

type MatchScoreRepository struct {
	db *sqlx.DB
}

func NewMatchScoreRepository(db *sqlx.DB) *MatchScoreRepository {
	return &MatchScoreRepository{db: db}
}

func (r *MatchScoreRepository) List(ctx context.Context, filter score.Filter) ([]score.MatchScore, error) {
	builder := qb.Select(matchScoreColumns).From("match_scores")
	if filter.MatchTeamID > 0 {
		builder = builder.Where(qb.Eq("match_team_id", filter.MatchTeamID))
	}
	query, args, err := builder.
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match scores query: %w", err)
	}

	var rows []matchScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match scores: %w", err)
	}

	out := make([]score.MatchScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchScoreRepository) GetByID(ctx context.Context, id int64) (score.MatchScore, bool, error) {
	query, args, err := qb.Select(matchScoreColumns).From("match_scores").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return score.MatchScore{}, false, fmt.Errorf("build select match score query: %w", err)
	}

	var row matchScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return score.MatchScore{}, false, nil
		}
		return score.MatchScore{}, false, fmt.Errorf("get match score: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchScoreRepository) Create(ctx context.Context, item score.MatchScore) (score.MatchScore, error) {
	query, args, err := qb.InsertInto("match_scores").
		Columns("match_team_id", "runs", "wickets", "overs").
		Values(item.MatchTeamID, item.Runs, item.Wickets, item.Overs).
		Suffix("RETURNING " + matchScoreColumns).
		ToSQL()
	if err != nil {
		return score.MatchScore{}, fmt.Errorf("build insert match score query: %w", err)
	}

	var row matchScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return score.MatchScore{}, fmt.Errorf("insert match score: %w", markConstraintError(err, score.ErrDuplicateMatchTeam, nil))
	}
	return row.toDomain(), nil
}

func (r *MatchScoreRepository) Update(ctx context.Context, item score.MatchScore) (score.MatchScore, bool, error) {
	query, args, err := qb.Update("match_scores").
		Set("match_team_id", item.MatchTeamID).
		Set("runs", item.Runs).
		Set("wickets", item.Wickets).
		Set("overs", item.Overs).
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + matchScoreColumns).
		ToSQL()
	if err != nil {
		return score.MatchScore{}, false, fmt.Errorf("build update match score query: %w", err)
	}

	var row matchScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return score.MatchScore{}, false, nil
		}
		return score.MatchScore{}, false, fmt.Errorf("update match score: %w", markConstraintError(err, score.ErrDuplicateMatchTeam, nil))
	}
	return row.toDomain(), true, nil
}

func (r *MatchScoreRepository) Delete(ctx context.Context, id int64) (score.MatchScore, bool, error) {
	query, args, err := qb.DeleteFrom("match_scores").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + matchScoreColumns).
		ToSQL()
	if err != nil {
		return score.MatchScore{}, false, fmt.Errorf("build delete match score query: %w", err)
	}

	var row matchScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return score.MatchScore{}, false, nil
		}
		return score.MatchScore{}, false, fmt.Errorf("delete match score: %w", err)
	}
	return row.toDomain(), true, nil
}
