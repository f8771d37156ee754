package httpapi

import (
	"net/http"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/result"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type matchResultDTO struct {
	ID            int64   `json:"id"`
	MatchID       int64   `json:"matchId"`
	WinningTeamID *int64  `json:"winningTeamId"`
	ResultSummary *string `json:"resultSummary"`
	CreatedAt     string  `json:"createdAt"`
}

type recordedResultDTO struct {
	Result matchResultDTO  `json:"result"`
	Scores []matchScoreDTO `json:"scores"`
}

type createMatchResultRequest struct {
	MatchID       int64   `json:"matchId"`
	WinningTeamID *int64  `json:"winningTeamId"`
	ResultSummary *string `json:"resultSummary" validate:"omitempty,max=512"`
}

type updateMatchResultRequest struct {
	WinningTeamID *int64  `json:"winningTeamId"`
	ResultSummary *string `json:"resultSummary" validate:"omitempty,max=512"`
}

type recordInningsRequest struct {
	MatchTeamID int64   `json:"matchTeamId"`
	Runs        int     `json:"runs"`
	Wickets     int     `json:"wickets"`
	Overs       float64 `json:"overs"`
}

type recordMatchResultRequest struct {
	MatchID int64                  `json:"matchId"`
	Innings []recordInningsRequest `json:"innings" validate:"max=2"`
}

func matchResultToDTO(v result.MatchResult) matchResultDTO {
	return matchResultDTO{
		ID:            v.ID,
		MatchID:       v.MatchID,
		WinningTeamID: v.WinningTeamID,
		ResultSummary: v.ResultSummary,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func matchResultsToDTOs(items []result.MatchResult) []matchResultDTO {
	out := make([]matchResultDTO, 0, len(items))
	for _, v := range items {
		out = append(out, matchResultToDTO(v))
	}
	return out
}

func (h *Handler) GetMatchResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchResults")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.resultService.GetByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, matchResultToDTO(item))
		return
	}

	matchID, err := queryID(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	winningTeamID, err := queryID(r, "winningTeamId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.resultService.List(ctx, usecase.ListMatchResultsInput{
		Limit:         queryInt(r, "limit"),
		Offset:        queryInt(r, "offset"),
		MatchID:       matchID,
		WinningTeamID: winningTeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list match results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchResultsToDTOs(items))
}

func (h *Handler) CreateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchResult")
	defer span.End()

	var req createMatchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.resultService.Create(ctx, usecase.CreateMatchResultInput{
		MatchID:       req.MatchID,
		WinningTeamID: req.WinningTeamID,
		ResultSummary: req.ResultSummary,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match result failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, matchResultToDTO(created))
}

func (h *Handler) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchResult")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateMatchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.resultService.Update(ctx, usecase.UpdateMatchResultInput{
		ID:            id,
		WinningTeamID: req.WinningTeamID,
		ResultSummary: req.ResultSummary,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match result failed", "result_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchResultToDTO(updated))
}

func (h *Handler) DeleteMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchResult")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.resultService.Delete(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete match result failed", "result_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message     string         `json:"message"`
		MatchResult matchResultDTO `json:"matchResult"`
	}{
		Message:     "match result deleted",
		MatchResult: matchResultToDTO(deleted),
	})
}

// RecordMatchResult is the transactional score-and-result workflow: both
// innings and the derived result land in one transaction or not at all.
func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	var req recordMatchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	innings := make([]usecase.RecordInningsInput, 0, len(req.Innings))
	for _, inn := range req.Innings {
		innings = append(innings, usecase.RecordInningsInput{
			MatchTeamID: inn.MatchTeamID,
			Runs:        inn.Runs,
			Wickets:     inn.Wickets,
			Overs:       inn.Overs,
		})
	}

	recorded, err := h.resultService.Record(ctx, usecase.RecordMatchResultInput{
		MatchID: req.MatchID,
		Innings: innings,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, recordedResultDTO{
		Result: matchResultToDTO(recorded.Result),
		Scores: matchScoresToDTOs(recorded.Scores),
	})
}
