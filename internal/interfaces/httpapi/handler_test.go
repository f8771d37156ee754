package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/platform/logging"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := memory.SeedDB()
	teamRepo := memory.NewTeamRepository(db)
	playerRepo := memory.NewPlayerRepository(db)
	matchRepo := memory.NewMatchRepository(db)
	scoreRepo := memory.NewMatchScoreRepository(db)
	performanceRepo := memory.NewPerformanceRepository(db)
	awardRepo := memory.NewAwardRepository(db)
	resultRepo := memory.NewMatchResultRepository(db)
	auditRepo := memory.NewAuditLogRepository(db)

	auditSvc := usecase.NewAuditLogService(auditRepo)
	handler := NewHandler(
		usecase.NewTeamService(teamRepo),
		usecase.NewPlayerService(playerRepo, teamRepo, performanceRepo),
		usecase.NewMatchService(matchRepo, teamRepo),
		usecase.NewMatchScoreService(scoreRepo, matchRepo),
		usecase.NewPerformanceService(performanceRepo, matchRepo, playerRepo),
		usecase.NewAwardService(awardRepo, playerRepo),
		usecase.NewMatchResultService(resultRepo, matchRepo, teamRepo),
		auditSvc,
		logging.NewNop(),
	)

	return NewRouter(handler, auditSvc, logging.NewNop(), []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := sonic.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	decodeBody(t, rec, &body)
	code, _ := body["code"].(string)
	return code
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Fatalf("expected status=ok, got %q", body["status"])
	}
}

func TestGetTeams_List(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/teams", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var teams []teamDTO
	decodeBody(t, rec, &teams)
	if len(teams) != 4 {
		t.Fatalf("expected 4 seeded teams, got %d", len(teams))
	}
}

func TestGetTeams_SingleByID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/teams?id=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var team teamDTO
	decodeBody(t, rec, &team)
	if team.ID != 1 || team.Name != "India" {
		t.Fatalf("unexpected team: %+v", team)
	}
}

func TestGetTeams_InvalidID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/teams?id=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "INVALID_ID" {
		t.Fatalf("expected code INVALID_ID, got %q", code)
	}
}

func TestGetTeams_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/teams?id=999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "TEAM_NOT_FOUND" {
		t.Fatalf("expected code TEAM_NOT_FOUND, got %q", code)
	}
}

func TestCreateTeam(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/teams", `{"name":"South Africa","country":"South Africa"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var team teamDTO
	decodeBody(t, rec, &team)
	if team.ID == 0 || team.Name != "South Africa" {
		t.Fatalf("unexpected created team: %+v", team)
	}
	if team.CreatedAt == "" {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestCreateTeam_DuplicateName(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/teams", `{"name":"India","country":"India"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "DUPLICATE_NAME" {
		t.Fatalf("expected code DUPLICATE_NAME, got %q", code)
	}
}

func TestCreateMatchTeam_DuplicateEntry(t *testing.T) {
	router := newTestRouter(t)

	// The seed already enters team 1 into match 1.
	rec := doRequest(t, router, http.MethodPost, "/api/match-teams", `{"matchId":1,"teamId":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "DUPLICATE_TEAM_ENTRY" {
		t.Fatalf("expected code DUPLICATE_TEAM_ENTRY, got %q", code)
	}
}

func TestCreateAward_DuplicateName(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/awards", `{"awardName":"Golden Bat","awardCategory":"Performance"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/api/awards", `{"awardName":"Golden Bat","awardCategory":"Season"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "DUPLICATE_AWARD_NAME" {
		t.Fatalf("expected code DUPLICATE_AWARD_NAME, got %q", code)
	}
}

func TestCreateTeam_MissingName(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/teams", `{"country":"India"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "MISSING_NAME" {
		t.Fatalf("expected code MISSING_NAME, got %q", code)
	}
}

func TestCreateTeam_UnknownFieldRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/teams", `{"name":"Zimbabwe","country":"Zimbabwe","captain":"X"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateTeam_EmptyBodyIsNoOp(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/teams?id=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var team teamDTO
	decodeBody(t, rec, &team)
	if team.ID != 1 || team.Name != "India" {
		t.Fatalf("expected unchanged team, got %+v", team)
	}
}

func TestUpdateTeam_MissingID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/teams", `{"name":"Renamed"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "INVALID_ID" {
		t.Fatalf("expected code INVALID_ID, got %q", code)
	}
}

func TestDeleteTeam_ReferencedByPlayers(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/teams?id=1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "FOREIGN_KEY_CONSTRAINT" {
		t.Fatalf("expected code FOREIGN_KEY_CONSTRAINT, got %q", code)
	}
}

func TestDeleteTeam_ReturnsDeletedRow(t *testing.T) {
	router := newTestRouter(t)

	created := doRequest(t, router, http.MethodPost, "/api/teams", `{"name":"Sri Lanka","country":"Sri Lanka"}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d %s", created.Code, created.Body.String())
	}
	var team teamDTO
	decodeBody(t, created, &team)

	rec := doRequest(t, router, http.MethodDelete, "/api/teams?id="+strconv.FormatInt(team.ID, 10), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Message string  `json:"message"`
		Team    teamDTO `json:"team"`
	}
	decodeBody(t, rec, &body)
	if body.Message != "team deleted" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.Team.ID != team.ID {
		t.Fatalf("expected deleted team %d, got %+v", team.ID, body.Team)
	}
}

func TestInsertPerformance_DuplicateConflict(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"matchId":1,"playerId":1,"runsScored":87,"wicketsTaken":0}`
	first := doRequest(t, router, http.MethodPost, "/api/performance/insert", payload)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", first.Code, first.Body.String())
	}

	second := doRequest(t, router, http.MethodPost, "/api/performance/insert", payload)
	if second.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", second.Code, second.Body.String())
	}
	if code := errorCode(t, second); code != "DUPLICATE_PERFORMANCE" {
		t.Fatalf("expected code DUPLICATE_PERFORMANCE, got %q", code)
	}
}

func TestGetPlayerTotalRuns(t *testing.T) {
	router := newTestRouter(t)

	seed := doRequest(t, router, http.MethodPost, "/api/performance", `{"matchId":1,"playerId":1,"runsScored":64,"wicketsTaken":0}`)
	if seed.Code != http.StatusCreated {
		t.Fatalf("setup insert failed: %d %s", seed.Code, seed.Body.String())
	}

	rec := doRequest(t, router, http.MethodGet, "/api/players/total-runs?playerId=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var total playerTotalDTO
	decodeBody(t, rec, &total)
	if total.PlayerID != 1 || total.TotalRuns != 64 {
		t.Fatalf("unexpected total: %+v", total)
	}
}

