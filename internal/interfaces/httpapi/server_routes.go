package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// registerDomainRoutes wires the CRUD surface. Single records are addressed
// with ?id= on the collection path, matching the original API contract.
func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.GetTeams)
	mux.HandleFunc("POST /api/teams", handler.CreateTeam)
	mux.HandleFunc("PUT /api/teams", handler.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams", handler.DeleteTeam)

	mux.HandleFunc("GET /api/players", handler.GetPlayers)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("PUT /api/players", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players", handler.DeletePlayer)
	mux.HandleFunc("GET /api/players/total-runs", handler.GetPlayerTotalRuns)

	mux.HandleFunc("GET /api/matches", handler.GetMatches)
	mux.HandleFunc("POST /api/matches", handler.CreateMatch)
	mux.HandleFunc("PUT /api/matches", handler.UpdateMatch)
	mux.HandleFunc("DELETE /api/matches", handler.DeleteMatch)

	mux.HandleFunc("GET /api/match-teams", handler.GetMatchTeams)
	mux.HandleFunc("POST /api/match-teams", handler.CreateMatchTeam)
	mux.HandleFunc("DELETE /api/match-teams", handler.DeleteMatchTeam)

	mux.HandleFunc("GET /api/match-scores", handler.GetMatchScores)
	mux.HandleFunc("POST /api/match-scores", handler.CreateMatchScore)
	mux.HandleFunc("PUT /api/match-scores", handler.UpdateMatchScore)
	mux.HandleFunc("DELETE /api/match-scores", handler.DeleteMatchScore)

	mux.HandleFunc("GET /api/performance", handler.GetPerformances)
	mux.HandleFunc("POST /api/performance", handler.InsertPerformance)
	mux.HandleFunc("PUT /api/performance", handler.UpdatePerformance)
	mux.HandleFunc("DELETE /api/performance", handler.DeletePerformance)
	mux.HandleFunc("POST /api/performance/insert", handler.InsertPerformance)
	mux.HandleFunc("GET /api/match-performance-summary", handler.GetMatchPerformanceSummary)

	mux.HandleFunc("GET /api/awards", handler.GetAwards)
	mux.HandleFunc("POST /api/awards", handler.CreateAward)
	mux.HandleFunc("PUT /api/awards", handler.UpdateAward)
	mux.HandleFunc("DELETE /api/awards", handler.DeleteAward)

	mux.HandleFunc("GET /api/player-awards", handler.GetPlayerAwards)
	mux.HandleFunc("POST /api/player-awards", handler.CreatePlayerAward)
	mux.HandleFunc("PUT /api/player-awards", handler.UpdatePlayerAward)
	mux.HandleFunc("DELETE /api/player-awards", handler.DeletePlayerAward)

	mux.HandleFunc("GET /api/match-result", handler.GetMatchResults)
	mux.HandleFunc("POST /api/match-result", handler.CreateMatchResult)
	mux.HandleFunc("PUT /api/match-result", handler.UpdateMatchResult)
	mux.HandleFunc("DELETE /api/match-result", handler.DeleteMatchResult)
	mux.HandleFunc("POST /api/match-result/record", handler.RecordMatchResult)

	mux.HandleFunc("GET /api/sql-logs", handler.GetAuditLogs)
	mux.HandleFunc("POST /api/sql-logs", handler.AppendAuditLog)
	mux.HandleFunc("DELETE /api/sql-logs", handler.DeleteAuditLog)
}
