package httpapi

import (
	"net/http"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/match"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

// matchDateFormat is the wire format for match dates, date-only ISO 8601.
const matchDateFormat = "2006-01-02"

type matchDTO struct {
	ID        int64  `json:"id"`
	Venue     string `json:"venue"`
	MatchDate string `json:"matchDate"`
	MatchType string `json:"matchType"`
	CreatedAt string `json:"createdAt"`
}

type matchTeamDTO struct {
	ID      int64 `json:"id"`
	MatchID int64 `json:"matchId"`
	TeamID  int64 `json:"teamId"`
}

type createMatchRequest struct {
	Venue     string `json:"venue" validate:"max=255"`
	MatchDate string `json:"matchDate" validate:"max=32"`
	MatchType string `json:"matchType" validate:"max=16"`
}

type updateMatchRequest struct {
	Venue     *string `json:"venue" validate:"omitempty,max=255"`
	MatchDate *string `json:"matchDate" validate:"omitempty,max=32"`
	MatchType *string `json:"matchType" validate:"omitempty,max=16"`
}

type createMatchTeamRequest struct {
	MatchID int64 `json:"matchId"`
	TeamID  int64 `json:"teamId"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:        v.ID,
		Venue:     v.Venue,
		MatchDate: v.MatchDate.Format(matchDateFormat),
		MatchType: string(v.MatchType),
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func matchesToDTOs(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, v := range items {
		out = append(out, matchToDTO(v))
	}
	return out
}

func matchTeamToDTO(v match.TeamEntry) matchTeamDTO {
	return matchTeamDTO{ID: v.ID, MatchID: v.MatchID, TeamID: v.TeamID}
}

func matchTeamsToDTOs(items []match.TeamEntry) []matchTeamDTO {
	out := make([]matchTeamDTO, 0, len(items))
	for _, v := range items {
		out = append(out, matchTeamToDTO(v))
	}
	return out
}

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatches")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.matchService.GetByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, matchToDTO(item))
		return
	}

	items, err := h.matchService.List(ctx, usecase.ListMatchesInput{
		Limit:     queryInt(r, "limit"),
		Offset:    queryInt(r, "offset"),
		Search:    queryString(r, "search"),
		MatchType: queryString(r, "matchType"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchesToDTOs(items))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		Venue:     req.Venue,
		MatchDate: req.MatchDate,
		MatchType: req.MatchType,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, usecase.UpdateMatchInput{
		ID:        id,
		Venue:     req.Venue,
		MatchDate: req.MatchDate,
		MatchType: req.MatchType,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.matchService.Delete(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message string   `json:"message"`
		Match   matchDTO `json:"match"`
	}{
		Message: "match deleted",
		Match:   matchToDTO(deleted),
	})
}

func (h *Handler) GetMatchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchTeams")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.matchService.GetTeamByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, matchTeamToDTO(item))
		return
	}

	matchID, err := queryID(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := queryID(r, "teamId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.matchService.ListTeams(ctx, usecase.ListMatchTeamsInput{
		Limit:   queryInt(r, "limit"),
		Offset:  queryInt(r, "offset"),
		MatchID: matchID,
		TeamID:  teamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list match teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchTeamsToDTOs(items))
}

func (h *Handler) CreateMatchTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchTeam")
	defer span.End()

	var req createMatchTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.AddTeam(ctx, usecase.CreateMatchTeamInput{
		MatchID: req.MatchID,
		TeamID:  req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, matchTeamToDTO(created))
}

func (h *Handler) DeleteMatchTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchTeam")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.matchService.RemoveTeam(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete match team failed", "match_team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message   string       `json:"message"`
		MatchTeam matchTeamDTO `json:"matchTeam"`
	}{
		Message:   "match team deleted",
		MatchTeam: matchTeamToDTO(deleted),
	})
}
