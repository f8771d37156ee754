package httpapi

import (
	"net/http"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/performance"
	"github.com/wicketline/cricket-stats/internal/domain/player"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type playerDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TeamID    int64  `json:"teamId"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type playerTotalDTO struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	TotalRuns  int    `json:"totalRuns"`
}

type createPlayerRequest struct {
	Name   string `json:"name" validate:"max=255"`
	TeamID int64  `json:"teamId"`
	Role   string `json:"role" validate:"max=64"`
}

type updatePlayerRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=255"`
	TeamID *int64  `json:"teamId"`
	Role   *string `json:"role" validate:"omitempty,max=64"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		TeamID:    v.TeamID,
		Role:      string(v.Role),
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func playersToDTOs(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, v := range items {
		out = append(out, playerToDTO(v))
	}
	return out
}

func playerTotalToDTO(v performance.PlayerTotal) playerTotalDTO {
	return playerTotalDTO{
		PlayerID:   v.PlayerID,
		PlayerName: v.PlayerName,
		TotalRuns:  v.TotalRuns,
	}
}

func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayers")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.playerService.GetByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, playerToDTO(item))
		return
	}

	teamID, err := queryID(r, "teamId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.playerService.List(ctx, usecase.ListPlayersInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
		Search: queryString(r, "search"),
		TeamID: teamID,
		Role:   queryString(r, "role"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playersToDTOs(items))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		Name:   req.Name,
		TeamID: req.TeamID,
		Role:   req.Role,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updatePlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, usecase.UpdatePlayerInput{
		ID:     id,
		Name:   req.Name,
		TeamID: req.TeamID,
		Role:   req.Role,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.playerService.Delete(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message string    `json:"message"`
		Player  playerDTO `json:"player"`
	}{
		Message: "player deleted",
		Player:  playerToDTO(deleted),
	})
}

// GetPlayerTotalRuns aggregates runs across every performance of one player.
func (h *Handler) GetPlayerTotalRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerTotalRuns")
	defer span.End()

	playerID, err := queryID(r, "playerId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	total, err := h.playerService.TotalRuns(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player total runs failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerTotalToDTO(total))
}
