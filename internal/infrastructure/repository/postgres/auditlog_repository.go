package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wicketline/cricket-stats/internal/domain/auditlog"
	qb "github.com/wicketline/cricket-stats/internal/platform/querybuilder"
)

const auditLogColumns = "id, operation_type, table_name, sql_statement, executed_at, status, error_message"

type AuditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) List(ctx context.Context, filter auditlog.Filter) ([]auditlog.Entry, error) {
	builder := qb.Select(auditLogColumns).From("sql_logs")
	if filter.Search != "" {
		builder = builder.Where(qb.ILike("sql_statement", filter.Search))
	}
	if filter.Status != "" {
		builder = builder.Where(qb.Eq("status", string(filter.Status)))
	}
	if filter.TableName != "" {
		builder = builder.Where(qb.Eq("table_name", filter.TableName))
	}
	if filter.OperationType != "" {
		builder = builder.Where(qb.Eq("operation_type", filter.OperationType))
	}
	query, args, err := builder.
		OrderBy("executed_at DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sql logs query: %w", err)
	}

	var rows []auditLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sql logs: %w", err)
	}

	out := make([]auditlog.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AuditLogRepository) GetByID(ctx context.Context, id int64) (auditlog.Entry, bool, error) {
	query, args, err := qb.Select(auditLogColumns).From("sql_logs").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return auditlog.Entry{}, false, fmt.Errorf("build select sql log query: %w", err)
	}

	var row auditLogTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return auditlog.Entry{}, false, nil
		}
		return auditlog.Entry{}, false, fmt.Errorf("get sql log: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *AuditLogRepository) Append(ctx context.Context, item auditlog.Entry) (auditlog.Entry, error) {
	row := auditLogInsertModel{
		OperationType: item.OperationType,
		TableName:     item.TableName,
		Statement:     item.Statement,
		Status:        string(item.Status),
	}
	if item.ErrorMessage != "" {
		row.ErrorMessage = sql.NullString{String: item.ErrorMessage, Valid: true}
	}

	query, args, err := qb.InsertModel("sql_logs", row, "RETURNING "+auditLogColumns)
	if err != nil {
		return auditlog.Entry{}, fmt.Errorf("build insert sql log query: %w", err)
	}

	var created auditLogTableModel
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return auditlog.Entry{}, fmt.Errorf("insert sql log: %w", err)
	}
	return created.toDomain(), nil
}

func (r *AuditLogRepository) Delete(ctx context.Context, id int64) (auditlog.Entry, bool, error) {
	query, args, err := qb.DeleteFrom("sql_logs").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + auditLogColumns).
		ToSQL()
	if err != nil {
		return auditlog.Entry{}, false, fmt.Errorf("build delete sql log query: %w", err)
	}

	var row auditLogTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return auditlog.Entry{}, false, nil
		}
		return auditlog.Entry{}, false, fmt.Errorf("delete sql log: %w", err)
	}
	return row.toDomain(), true, nil
}
