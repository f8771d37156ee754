package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketline/cricket-stats/internal/domain/match"
	qb "github.com/wicketline/cricket-stats/internal/platform/querybuilder"
)

const (
	matchColumns     = "id, venue, match_date, match_type, created_at"
	matchTeamColumns = "id, match_id, team_id"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	builder := qb.Select(matchColumns).From("matches")
	if filter.Search != "" {
		builder = builder.Where(qb.ILike("venue", filter.Search))
	}
	if filter.MatchType != "" {
		builder = builder.Where(qb.Eq("match_type", string(filter.MatchType)))
	}
	query, args, err := builder.
		OrderBy("match_date DESC", "id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns).From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertInto("matches").
		Columns("venue", "match_date", "match_type").
		Values(item.Venue, item.MatchDate, string(item.MatchType)).
		Suffix("RETURNING " + matchColumns).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return row.toDomain(), nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) (match.Match, bool, error) {
	query, args, err := qb.Update("matches").
		Set("venue", item.Venue).
		Set("match_date", item.MatchDate).
		Set("match_type", string(item.MatchType)).
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + matchColumns).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build update match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("update match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + matchColumns).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build delete match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("delete match: %w", markConstraintError(err, nil, match.ErrInUse))
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListEntries(ctx context.Context, filter match.EntryFilter) ([]match.TeamEntry, error) {
	builder := qb.Select(matchTeamColumns).From("match_teams")
	if filter.MatchID > 0 {
		builder = builder.Where(qb.Eq("match_id", filter.MatchID))
	}
	if filter.TeamID > 0 {
		builder = builder.Where(qb.Eq("team_id", filter.TeamID))
	}
	query, args, err := builder.
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match teams query: %w", err)
	}

	var rows []matchTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match teams: %w", err)
	}

	out := make([]match.TeamEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetEntryByID(ctx context.Context, id int64) (match.TeamEntry, bool, error) {
	query, args, err := qb.Select(matchTeamColumns).From("match_teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.TeamEntry{}, false, fmt.Errorf("build select match team query: %w", err)
	}

	var row matchTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.TeamEntry{}, false, nil
		}
		return match.TeamEntry{}, false, fmt.Errorf("get match team: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) CreateEntry(ctx context.Context, item match.TeamEntry) (match.TeamEntry, error) {
	query, args, err := qb.InsertInto("match_teams").
		Columns("match_id", "team_id").
		Values(item.MatchID, item.TeamID).
		Suffix("RETURNING " + matchTeamColumns).
		ToSQL()
	if err != nil {
		return match.TeamEntry{}, fmt.Errorf("build insert match team query: %w", err)
	}

	var row matchTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.TeamEntry{}, fmt.Errorf("insert match team: %w", markConstraintError(err, match.ErrDuplicateEntry, nil))
	}
	return row.toDomain(), nil
}

func (r *MatchRepository) DeleteEntry(ctx context.Context, id int64) (match.TeamEntry, bool, error) {
	query, args, err := qb.DeleteFrom("match_teams").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + matchTeamColumns).
		ToSQL()
	if err != nil {
		return match.TeamEntry{}, false, fmt.Errorf("build delete match team query: %w", err)
	}

	var row matchTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.TeamEntry{}, false, nil
		}
		return match.TeamEntry{}, false, fmt.Errorf("delete match team: %w", markConstraintError(err, nil, match.ErrEntryInUse))
	}
	return row.toDomain(), true, nil
}
