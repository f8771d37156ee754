package httpapi

import (
	"net/http"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/team"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	CreatedAt string `json:"createdAt"`
}

type createTeamRequest struct {
	Name    string `json:"name" validate:"max=255"`
	Country string `json:"country" validate:"max=255"`
}

type updateTeamRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	Country *string `json:"country" validate:"omitempty,max=255"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		Country:   v.Country,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func teamsToDTOs(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, v := range items {
		out = append(out, teamToDTO(v))
	}
	return out
}

// GetTeams serves both the collection listing and, when ?id= is present,
// a single record.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeams")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.teamService.GetByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, teamToDTO(item))
		return
	}

	items, err := h.teamService.List(ctx, usecase.ListTeamsInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
		Search: queryString(r, "search"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamsToDTOs(items))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		Name:    req.Name,
		Country: req.Country,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamService.Update(ctx, usecase.UpdateTeamInput{
		ID:      id,
		Name:    req.Name,
		Country: req.Country,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.teamService.Delete(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message string  `json:"message"`
		Team    teamDTO `json:"team"`
	}{
		Message: "team deleted",
		Team:    teamToDTO(deleted),
	})
}
