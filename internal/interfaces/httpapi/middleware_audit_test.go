package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAuditLogging_AppendsRowForMutation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/teams", `{"name":"Bangladesh","country":"Bangladesh"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d %s", rec.Code, rec.Body.String())
	}

	logs := doRequest(t, router, http.MethodGet, "/api/sql-logs", "")
	if logs.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", logs.Code, logs.Body.String())
	}

	var entries []auditLogDTO
	decodeBody(t, logs, &entries)
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.OperationType != "INSERT" {
		t.Fatalf("expected operation INSERT, got %q", entry.OperationType)
	}
	if entry.TableName != "teams" {
		t.Fatalf("expected table teams, got %q", entry.TableName)
	}
	if entry.Status != "success" {
		t.Fatalf("expected status success, got %q", entry.Status)
	}
	if !strings.HasPrefix(entry.SQLStatement, "INSERT INTO teams") {
		t.Fatalf("unexpected statement %q", entry.SQLStatement)
	}
}

func TestAuditLogging_SkipsReads(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodGet, "/api/teams", ""); rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rec.Code)
	}

	logs := doRequest(t, router, http.MethodGet, "/api/sql-logs", "")
	var entries []auditLogDTO
	decodeBody(t, logs, &entries)
	if len(entries) != 0 {
		t.Fatalf("expected no audit entries for reads, got %d", len(entries))
	}
}

func TestAuditLogging_RecordsErrorStatus(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/teams?id=999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", rec.Code, rec.Body.String())
	}

	logs := doRequest(t, router, http.MethodGet, "/api/sql-logs", "")
	var entries []auditLogDTO
	decodeBody(t, logs, &entries)
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Status != "error" {
		t.Fatalf("expected status error, got %q", entry.Status)
	}
	if entry.ErrorMessage != http.StatusText(http.StatusNotFound) {
		t.Fatalf("unexpected error message %q", entry.ErrorMessage)
	}
	if !strings.Contains(entry.SQLStatement, "WHERE id = 999") {
		t.Fatalf("expected id in statement, got %q", entry.SQLStatement)
	}
}

func TestAuditLogging_ExemptsOwnEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/sql-logs",
		`{"operationType":"INSERT","tableName":"teams","sqlStatement":"INSERT INTO teams","status":"success"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("append failed: %d %s", rec.Code, rec.Body.String())
	}

	logs := doRequest(t, router, http.MethodGet, "/api/sql-logs", "")
	var entries []auditLogDTO
	decodeBody(t, logs, &entries)
	if len(entries) != 1 {
		t.Fatalf("expected only the explicit entry, got %d", len(entries))
	}
}

func TestAuditTarget(t *testing.T) {
	tests := []struct {
		method string
		path   string
		table  string
		ok     bool
	}{
		{http.MethodPost, "/api/teams", "teams", true},
		{http.MethodPut, "/api/match-scores", "match_scores", true},
		{http.MethodDelete, "/api/player-awards", "player_awards", true},
		{http.MethodPost, "/api/performance/insert", "performance", true},
		{http.MethodPost, "/api/match-result/record", "match_results", true},
		{http.MethodGet, "/api/teams", "", false},
		{http.MethodPost, "/api/sql-logs", "", false},
		{http.MethodPost, "/healthz", "", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		table, ok := auditTarget(req)
		if table != tt.table || ok != tt.ok {
			t.Fatalf("auditTarget(%s %s) = (%q, %t), want (%q, %t)",
				tt.method, tt.path, table, ok, tt.table, tt.ok)
		}
	}
}

func TestRenderStatement(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/teams?id=7", nil)
	got := renderStatement(req, "teams")

	if !strings.HasPrefix(got, "DELETE FROM teams WHERE id = 7") {
		t.Fatalf("unexpected statement %q", got)
	}
	if !strings.Contains(got, "-- DELETE /api/teams?id=7") {
		t.Fatalf("expected request trailer in %q", got)
	}
}
