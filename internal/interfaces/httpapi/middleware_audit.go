package httpapi

import (
	"net/http"
	"strings"

	"github.com/valyala/bytebufferpool"
	"github.com/wicketline/cricket-stats/internal/domain/auditlog"
	"github.com/wicketline/cricket-stats/internal/platform/logging"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

// auditTables maps API route prefixes to the tables their mutations touch.
var auditTables = map[string]string{
	"/api/teams":         "teams",
	"/api/players":       "players",
	"/api/matches":       "matches",
	"/api/match-teams":   "match_teams",
	"/api/match-scores":  "match_scores",
	"/api/performance":   "performance",
	"/api/awards":        "awards",
	"/api/player-awards": "player_awards",
	"/api/match-result":  "match_results",
}

// AuditLogging appends one sql_logs row per mutating request, with the status
// reflecting the response code actually sent. Requests against the log
// endpoint itself are exempt so the log does not feed on its own writes.
func AuditLogging(auditService *usecase.AuditLogService, logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.AuditLogging")
		defer span.End()

		table, audited := auditTarget(r)
		if !audited {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		input := usecase.AppendAuditLogInput{
			OperationType: operationType(r.Method),
			TableName:     table,
			Statement:     renderStatement(r, table),
			Status:        string(auditlog.StatusSuccess),
		}
		if rec.status < 200 || rec.status > 299 {
			input.Status = string(auditlog.StatusError)
			input.ErrorMessage = http.StatusText(rec.status)
		}

		// A failed append must not fail the request it describes.
		if _, err := auditService.Append(ctx, input); err != nil {
			logger.ErrorContext(ctx, "audit log append failed",
				"table", table, "operation", input.OperationType, "error", err)
		}
	})
}

func auditTarget(r *http.Request) (string, bool) {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return "", false
	}
	path := r.URL.Path
	if strings.HasPrefix(path, "/api/sql-logs") {
		return "", false
	}
	for prefix, table := range auditTables {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return table, true
		}
	}
	return "", false
}

func operationType(method string) string {
	switch method {
	case http.MethodPost:
		return "INSERT"
	case http.MethodPut:
		return "UPDATE"
	case http.MethodDelete:
		return "DELETE"
	default:
		return method
	}
}

// renderStatement builds the SQL-ish statement text stored in sql_logs.
func renderStatement(r *http.Request, table string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	switch r.Method {
	case http.MethodPost:
		buf.WriteString("INSERT INTO ")
		buf.WriteString(table)
	case http.MethodPut:
		buf.WriteString("UPDATE ")
		buf.WriteString(table)
	case http.MethodDelete:
		buf.WriteString("DELETE FROM ")
		buf.WriteString(table)
	default:
		buf.WriteString(r.Method)
		buf.WriteString(" ")
		buf.WriteString(table)
	}
	if id := strings.TrimSpace(r.URL.Query().Get("id")); id != "" {
		buf.WriteString(" WHERE id = ")
		buf.WriteString(id)
	}
	buf.WriteString(" -- ")
	buf.WriteString(r.Method)
	buf.WriteString(" ")
	buf.WriteString(r.URL.RequestURI())

	return buf.String()
}
