package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketline/cricket-stats/internal/domain/result"
	"github.com/wicketline/cricket-stats/internal/domain/score"
	qb "github.com/wicketline/cricket-stats/internal/platform/querybuilder"
)

const matchResultColumns = "id, match_id, winning_team_id, result_summary, created_at"

type MatchResultRepository struct {
	db *sqlx.DB
}

func NewMatchResultRepository(db *sqlx.DB) *MatchResultRepository {
	return &MatchResultRepository{db: db}
}

func (r *MatchResultRepository) List(ctx context.Context, filter result.Filter) ([]result.MatchResult, error) {
	builder := qb.Select(matchResultColumns).From("match_results")
	if filter.MatchID > 0 {
		builder = builder.Where(qb.Eq("match_id", filter.MatchID))
	}
	if filter.WinningTeamID > 0 {
		builder = builder.Where(qb.Eq("winning_team_id", filter.WinningTeamID))
	}
	query, args, err := builder.
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match results query: %w", err)
	}

	var rows []matchResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match results: %w", err)
	}

	out := make([]result.MatchResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchResultRepository) GetByID(ctx context.Context, id int64) (result.MatchResult, bool, error) {
	query, args, err := qb.Select(matchResultColumns).From("match_results").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return result.MatchResult{}, false, fmt.Errorf("build select match result query: %w", err)
	}

	var row matchResultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.MatchResult{}, false, nil
		}
		return result.MatchResult{}, false, fmt.Errorf("get match result: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchResultRepository) Create(ctx context.Context, item result.MatchResult) (result.MatchResult, error) {
	query, args, err := qb.InsertInto("match_results").
		Columns("match_id", "winning_team_id", "result_summary").
		Values(item.MatchID, nullInt64FromPtr(item.WinningTeamID), nullStringFromPtr(item.ResultSummary)).
		Suffix("RETURNING " + matchResultColumns).
		ToSQL()
	if err != nil {
		return result.MatchResult{}, fmt.Errorf("build insert match result query: %w", err)
	}

	var row matchResultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return result.MatchResult{}, fmt.Errorf("insert match result: %w", markConstraintError(err, result.ErrDuplicate, nil))
	}
	return row.toDomain(), nil
}

func (r *MatchResultRepository) Update(ctx context.Context, item result.MatchResult) (result.MatchResult, bool, error) {
	query, args, err := qb.Update("match_results").
		Set("match_id", item.MatchID).
		Set("winning_team_id", nullInt64FromPtr(item.WinningTeamID)).
		Set("result_summary", nullStringFromPtr(item.ResultSummary)).
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + matchResultColumns).
		ToSQL()
	if err != nil {
		return result.MatchResult{}, false, fmt.Errorf("build update match result query: %w", err)
	}

	var row matchResultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.MatchResult{}, false, nil
		}
		return result.MatchResult{}, false, fmt.Errorf("update match result: %w", markConstraintError(err, result.ErrDuplicate, nil))
	}
	return row.toDomain(), true, nil
}

func (r *MatchResultRepository) Delete(ctx context.Context, id int64) (result.MatchResult, bool, error) {
	query, args, err := qb.DeleteFrom("match_results").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + matchResultColumns).
		ToSQL()
	if err != nil {
		return result.MatchResult{}, false, fmt.Errorf("build delete match result query: %w", err)
	}

	var row matchResultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.MatchResult{}, false, nil
		}
		return result.MatchResult{}, false, fmt.Errorf("delete match result: %w", err)
	}
	return row.toDomain(), true, nil
}

// Record inserts the innings scores and the derived result in one
// transaction. Any constraint failure rolls the whole recording back.
func (r *MatchResultRepository) Record(ctx context.Context, rec result.Recording) (result.MatchResult, []score.MatchScore, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return result.MatchResult{}, nil, fmt.Errorf("begin tx for result recording: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertScoreQuery = `
INSERT INTO match_scores (match_team_id, runs, wickets, overs)
VALUES (:match_team_id, :runs, :wickets, :overs)
RETURNING id, match_team_id, runs, wickets, overs`

	scores := make([]score.MatchScore, 0, len(rec.Scores))
	for _, s := range rec.Scores {
		scoreSQL, scoreArgs, err := sqlx.Named(insertScoreQuery, map[string]any{
			"match_team_id": s.MatchTeamID,
			"runs":          s.Runs,
			"wickets":       s.Wickets,
			"overs":         s.Overs,
		})
		if err != nil {
			return result.MatchResult{}, nil, fmt.Errorf("bind insert score match_team=%d query: %w", s.MatchTeamID, err)
		}
		scoreSQL = tx.Rebind(scoreSQL)

		var scoreRow matchScoreTableModel
		if err := tx.GetContext(ctx, &scoreRow, scoreSQL, scoreArgs...); err != nil {
			return result.MatchResult{}, nil, fmt.Errorf("insert score match_team=%d: %w",
				s.MatchTeamID, markConstraintError(err, score.ErrDuplicateMatchTeam, nil))
		}
		scores = append(scores, scoreRow.toDomain())
	}

	const insertResultQuery = `
INSERT INTO match_results (match_id, winning_team_id, result_summary)
VALUES (:match_id, :winning_team_id, :result_summary)
RETURNING id, match_id, winning_team_id, result_summary, created_at`

	resultSQL, resultArgs, err := sqlx.Named(insertResultQuery, map[string]any{
		"match_id":        rec.Result.MatchID,
		"winning_team_id": nullInt64FromPtr(rec.Result.WinningTeamID),
		"result_summary":  nullStringFromPtr(rec.Result.ResultSummary),
	})
	if err != nil {
		return result.MatchResult{}, nil, fmt.Errorf("bind insert match result query: %w", err)
	}
	resultSQL = tx.Rebind(resultSQL)

	var resultRow matchResultTableModel
	if err := tx.GetContext(ctx, &resultRow, resultSQL, resultArgs...); err != nil {
		return result.MatchResult{}, nil, fmt.Errorf("insert match result: %w", markConstraintError(err, result.ErrDuplicate, nil))
	}

	if err := tx.Commit(); err != nil {
		return result.MatchResult{}, nil, fmt.Errorf("commit result recording tx: %w", err)
	}

	return resultRow.toDomain(), scores, nil
}
