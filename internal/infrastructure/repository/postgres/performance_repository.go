package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketline/cricket-stats/internal/domain/performance"
	qb "github.com/wicketline/cricket-stats/internal/platform/querybuilder"
)

const performanceColumns = "id, match_id, player_id, runs_scored, wickets_taken"

type PerformanceRepository struct {
	db *sqlx.DB
}

func NewPerformanceRepository(db *sqlx.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

func (r *PerformanceRepository) List(ctx context.Context, filter performance.Filter) ([]performance.Performance, error) {
	builder := qb.Select(performanceColumns).From("performance")
	if filter.MatchID > 0 {
		builder = builder.Where(qb.Eq("match_id", filter.MatchID))
	}
	if filter.PlayerID > 0 {
		builder = builder.Where(qb.Eq("player_id", filter.PlayerID))
	}
	query, args, err := builder.
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select performances query: %w", err)
	}

	var rows []performanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select performances: %w", err)
	}

	out := make([]performance.Performance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PerformanceRepository) GetByID(ctx context.Context, id int64) (performance.Performance, bool, error) {
	query, args, err := qb.Select(performanceColumns).From("performance").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return performance.Performance{}, false, fmt.Errorf("build select performance query: %w", err)
	}

	var row performanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return performance.Performance{}, false, nil
		}
		return performance.Performance{}, false, fmt.Errorf("get performance: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PerformanceRepository) Create(ctx context.Context, item performance.Performance) (performance.Performance, error) {
	query, args, err := qb.InsertInto("performance").
		Columns("match_id", "player_id", "runs_scored", "wickets_taken").
		Values(item.MatchID, item.PlayerID, item.RunsScored, item.WicketsTaken).
		Suffix("RETURNING " + performanceColumns).
		ToSQL()
	if err != nil {
		return performance.Performance{}, fmt.Errorf("build insert performance query: %w", err)
	}

	var row performanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return performance.Performance{}, fmt.Errorf("insert performance: %w", markConstraintError(err, performance.ErrDuplicate, nil))
	}
	return row.toDomain(), nil
}

func (r *PerformanceRepository) Update(ctx context.Context, item performance.Performance) (performance.Performance, bool, error) {
	query, args, err := qb.Update("performance").
		Set("match_id", item.MatchID).
		Set("player_id", item.PlayerID).
		Set("runs_scored", item.RunsScored).
		Set("wickets_taken", item.WicketsTaken).
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + performanceColumns).
		ToSQL()
	if err != nil {
		return performance.Performance{}, false, fmt.Errorf("build update performance query: %w", err)
	}

	var row performanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return performance.Performance{}, false, nil
		}
		return performance.Performance{}, false, fmt.Errorf("update performance: %w", markConstraintError(err, performance.ErrDuplicate, nil))
	}
	return row.toDomain(), true, nil
}

func (r *PerformanceRepository) Delete(ctx context.Context, id int64) (performance.Performance, bool, error) {
	query, args, err := qb.DeleteFrom("performance").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + performanceColumns).
		ToSQL()
	if err != nil {
		return performance.Performance{}, false, fmt.Errorf("build delete performance query: %w", err)
	}

	var row performanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return performance.Performance{}, false, nil
		}
		return performance.Performance{}, false, fmt.Errorf("delete performance: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PerformanceRepository) TotalRuns(ctx context.Context, playerID int64) (performance.PlayerTotal, bool, error) {
	const query = `
SELECT p.id AS player_id,
       p.name AS player_name,
       COALESCE(SUM(perf.runs_scored), 0) AS total_runs
FROM players p
LEFT JOIN performance perf ON perf.player_id = p.id
WHERE p.id = $1
GROUP BY p.id, p.name`

	var row playerTotalRowModel
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return performance.PlayerTotal{}, false, nil
		}
		return performance.PlayerTotal{}, false, fmt.Errorf("get player total runs: %w", err)
	}

	return performance.PlayerTotal{
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
		TotalRuns:  row.TotalRuns,
	}, true, nil
}

func (r *PerformanceRepository) Summary(ctx context.Context, filter performance.SummaryFilter) ([]performance.SummaryRow, error) {
	builder := qb.Select(
		"m.id AS match_id",
		"m.match_date",
		"m.venue",
		"p.name AS player_name",
		"t.name AS team_name",
		"perf.runs_scored",
		"perf.wickets_taken",
	).
		From("performance perf").
		Join("JOIN matches m ON m.id = perf.match_id").
		Join("JOIN players p ON p.id = perf.player_id").
		Join("JOIN teams t ON t.id = p.team_id")
	if filter.MatchID > 0 {
		builder = builder.Where(qb.Eq("perf.match_id", filter.MatchID))
	}
	if filter.PlayerID > 0 {
		builder = builder.Where(qb.Eq("perf.player_id", filter.PlayerID))
	}
	query, args, err := builder.
		OrderBy("m.match_date DESC", "perf.id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select performance summary query: %w", err)
	}

	var rows []summaryRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select performance summary: %w", err)
	}

	out := make([]performance.SummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, performance.SummaryRow{
			MatchID:      row.MatchID,
			MatchDate:    row.MatchDate,
			Venue:        row.Venue,
			PlayerName:   row.PlayerName,
			TeamName:     row.TeamName,
			RunsScored:   row.RunsScored,
			WicketsTaken: row.WicketsTaken,
		})
	}
	return out, nil
}
