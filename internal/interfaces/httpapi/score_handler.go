package httpapi

import (
	"net/http"

	"github.com/wicketline/cricket-stats/internal/domain/score"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type matchScoreDTO struct {
	ID          int64   `json:"id"`
	MatchTeamID int64   `json:"matchTeamId"`
	Runs        int     `json:"runs"`
	Wickets     int     `json:"wickets"`
	Overs       float64 `json:"overs"`
}

type createMatchScoreRequest struct {
	MatchTeamID int64   `json:"matchTeamId"`
	Runs        int     `json:"runs"`
	Wickets     int     `json:"wickets"`
	Overs       float64 `json:"overs"`
}

type updateMatchScoreRequest struct {
	Runs    *int     `json:"runs"`
	Wickets *int     `json:"wickets"`
	Overs   *float64 `json:"overs"`
}

func matchScoreToDTO(v score.MatchScore) matchScoreDTO {
	return matchScoreDTO{
		ID:          v.ID,
		MatchTeamID: v.MatchTeamID,
		Runs:        v.Runs,
		Wickets:     v.Wickets,
		Overs:       v.Overs,
	}
}

func matchScoresToDTOs(items []score.MatchScore) []matchScoreDTO {
	out := make([]matchScoreDTO, 0, len(items))
	for _, v := range items {
		out = append(out, matchScoreToDTO(v))
	}
	return out
}

func (h *Handler) GetMatchScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchScores")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.scoreService.GetByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, matchScoreToDTO(item))
		return
	}

	matchTeamID, err := queryID(r, "matchTeamId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.scoreService.List(ctx, usecase.ListMatchScoresInput{
		Limit:       queryInt(r, "limit"),
		Offset:      queryInt(r, "offset"),
		MatchTeamID: matchTeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list match scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchScoresToDTOs(items))
}

func (h *Handler) CreateMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchScore")
	defer span.End()

	var req createMatchScoreRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.scoreService.Create(ctx, usecase.CreateMatchScoreInput{
		MatchTeamID: req.MatchTeamID,
		Runs:        req.Runs,
		Wickets:     req.Wickets,
		Overs:       req.Overs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match score failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, matchScoreToDTO(created))
}

func (h *Handler) UpdateMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchScore")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateMatchScoreRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.scoreService.Update(ctx, usecase.UpdateMatchScoreInput{
		ID:      id,
		Runs:    req.Runs,
		Wickets: req.Wickets,
		Overs:   req.Overs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match score failed", "score_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchScoreToDTO(updated))
}

func (h *Handler) DeleteMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchScore")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.scoreService.Delete(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete match score failed", "score_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message    string        `json:"message"`
		MatchScore matchScoreDTO `json:"matchScore"`
	}{
		Message:    "match score deleted",
		MatchScore: matchScoreToDTO(deleted),
	})
}
