package httpapi

import (
	"net/http"

	"github.com/wicketline/cricket-stats/internal/domain/performance"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type performanceDTO struct {
	ID           int64 `json:"id"`
	MatchID      int64 `json:"matchId"`
	PlayerID     int64 `json:"playerId"`
	RunsScored   int   `json:"runsScored"`
	WicketsTaken int   `json:"wicketsTaken"`
}

type summaryRowDTO struct {
	MatchID      int64  `json:"matchId"`
	MatchDate    string `json:"matchDate"`
	Venue        string `json:"venue"`
	PlayerName   string `json:"playerName"`
	TeamName     string `json:"teamName"`
	RunsScored   int    `json:"runsScored"`
	WicketsTaken int    `json:"wicketsTaken"`
}

type insertPerformanceRequest struct {
	MatchID      int64 `json:"matchId"`
	PlayerID     int64 `json:"playerId"`
	RunsScored   int   `json:"runsScored"`
	WicketsTaken int   `json:"wicketsTaken"`
}

type updatePerformanceRequest struct {
	RunsScored   *int `json:"runsScored"`
	WicketsTaken *int `json:"wicketsTaken"`
}

func performanceToDTO(v performance.Performance) performanceDTO {
	return performanceDTO{
		ID:           v.ID,
		MatchID:      v.MatchID,
		PlayerID:     v.PlayerID,
		RunsScored:   v.RunsScored,
		WicketsTaken: v.WicketsTaken,
	}
}

func performancesToDTOs(items []performance.Performance) []performanceDTO {
	out := make([]performanceDTO, 0, len(items))
	for _, v := range items {
		out = append(out, performanceToDTO(v))
	}
	return out
}

func summaryRowsToDTOs(items []performance.SummaryRow) []summaryRowDTO {
	out := make([]summaryRowDTO, 0, len(items))
	for _, v := range items {
		out = append(out, summaryRowDTO{
			MatchID:      v.MatchID,
			MatchDate:    v.MatchDate.Format(matchDateFormat),
			Venue:        v.Venue,
			PlayerName:   v.PlayerName,
			TeamName:     v.TeamName,
			RunsScored:   v.RunsScored,
			WicketsTaken: v.WicketsTaken,
		})
	}
	return out
}

func (h *Handler) GetPerformances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPerformances")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.performanceService.GetByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, performanceToDTO(item))
		return
	}

	matchID, err := queryID(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := queryID(r, "playerId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.performanceService.List(ctx, usecase.ListPerformancesInput{
		Limit:    queryInt(r, "limit"),
		Offset:   queryInt(r, "offset"),
		MatchID:  matchID,
		PlayerID: playerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list performances failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, performancesToDTOs(items))
}

// InsertPerformance backs both POST /api/performance and the guarded
// /api/performance/insert workflow; the duplicate pair check rides on the
// unique constraint and surfaces as 409.
func (h *Handler) InsertPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InsertPerformance")
	defer span.End()

	var req insertPerformanceRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.performanceService.Insert(ctx, usecase.InsertPerformanceInput{
		MatchID:      req.MatchID,
		PlayerID:     req.PlayerID,
		RunsScored:   req.RunsScored,
		WicketsTaken: req.WicketsTaken,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "insert performance failed", "match_id", req.MatchID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, performanceToDTO(created))
}

func (h *Handler) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePerformance")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updatePerformanceRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.performanceService.Update(ctx, usecase.UpdatePerformanceInput{
		ID:           id,
		RunsScored:   req.RunsScored,
		WicketsTaken: req.WicketsTaken,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update performance failed", "performance_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, performanceToDTO(updated))
}

func (h *Handler) DeletePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePerformance")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.performanceService.Delete(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete performance failed", "performance_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message     string         `json:"message"`
		Performance performanceDTO `json:"performance"`
	}{
		Message:     "performance deleted",
		Performance: performanceToDTO(deleted),
	})
}

// GetMatchPerformanceSummary serves the joined match/player/team view,
// newest match first.
func (h *Handler) GetMatchPerformanceSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchPerformanceSummary")
	defer span.End()

	matchID, err := queryID(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := queryID(r, "playerId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rows, err := h.performanceService.Summary(ctx, usecase.SummaryInput{
		Limit:    queryInt(r, "limit"),
		Offset:   queryInt(r, "offset"),
		MatchID:  matchID,
		PlayerID: playerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "performance summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, summaryRowsToDTOs(rows))
}
