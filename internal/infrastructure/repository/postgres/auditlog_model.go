package postgres

import (
	"database/sql"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/auditlog"
)

type auditLogTableModel struct {
	ID            int64          `db:"id"`
	OperationType string         `db:"operation_type"`
	TableName     string         `db:"table_name"`
	Statement     string         `db:"sql_statement"`
	ExecutedAt    time.Time      `db:"executed_at"`
	Status        string         `db:"status"`
	ErrorMessage  sql.NullString `db:"error_message"`
}

// auditLogInsertModel carries only the writable columns; id and executed_at
// are DB-assigned.
type auditLogInsertModel struct {
	OperationType string         `db:"operation_type"`
	TableName     string         `db:"table_name"`
	Statement     string         `db:"sql_statement"`
	Status        string         `db:"status"`
	ErrorMessage  sql.NullString `db:"error_message"`
}

func (m auditLogTableModel) toDomain() auditlog.Entry {
	return auditlog.Entry{
		ID:            m.ID,
		OperationType: m.OperationType,
		TableName:     m.TableName,
		Statement:     m.Statement,
		ExecutedAt:    m.ExecutedAt,
		Status:        auditlog.Status(m.Status),
		ErrorMessage:  m.ErrorMessage.String,
	}
}
