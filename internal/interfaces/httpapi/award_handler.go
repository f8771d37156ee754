package httpapi

import (
	"net/http"

	"github.com/wicketline/cricket-stats/internal/domain/award"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type awardDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"awardName"`
	Category string `json:"awardCategory"`
}

type playerAwardDTO struct {
	ID       int64 `json:"id"`
	PlayerID int64 `json:"playerId"`
	AwardID  int64 `json:"awardId"`
	Year     int   `json:"year"`
}

type createAwardRequest struct {
	Name     string `json:"awardName" validate:"max=255"`
	Category string `json:"awardCategory" validate:"max=64"`
}

type updateAwardRequest struct {
	Name     *string `json:"awardName" validate:"omitempty,max=255"`
	Category *string `json:"awardCategory" validate:"omitempty,max=64"`
}

type createPlayerAwardRequest struct {
	PlayerID int64 `json:"playerId"`
	AwardID  int64 `json:"awardId"`
	Year     int   `json:"year"`
}

type updatePlayerAwardRequest struct {
	PlayerID *int64 `json:"playerId"`
	AwardID  *int64 `json:"awardId"`
	Year     *int   `json:"year"`
}

func awardToDTO(v award.Award) awardDTO {
	return awardDTO{ID: v.ID, Name: v.Name, Category: string(v.Category)}
}

func awardsToDTOs(items []award.Award) []awardDTO {
	out := make([]awardDTO, 0, len(items))
	for _, v := range items {
		out = append(out, awardToDTO(v))
	}
	return out
}

func playerAwardToDTO(v award.PlayerAward) playerAwardDTO {
	return playerAwardDTO{ID: v.ID, PlayerID: v.PlayerID, AwardID: v.AwardID, Year: v.Year}
}

func playerAwardsToDTOs(items []award.PlayerAward) []playerAwardDTO {
	out := make([]playerAwardDTO, 0, len(items))
	for _, v := range items {
		out = append(out, playerAwardToDTO(v))
	}
	return out
}

func (h *Handler) GetAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAwards")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.awardService.GetByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, awardToDTO(item))
		return
	}

	items, err := h.awardService.List(ctx, usecase.ListAwardsInput{
		Limit:    queryInt(r, "limit"),
		Offset:   queryInt(r, "offset"),
		Search:   queryString(r, "search"),
		Category: queryString(r, "category"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list awards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, awardsToDTOs(items))
}

func (h *Handler) CreateAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAward")
	defer span.End()

	var req createAwardRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.awardService.Create(ctx, usecase.CreateAwardInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create award failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, awardToDTO(created))
}

func (h *Handler) UpdateAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAward")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateAwardRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.awardService.Update(ctx, usecase.UpdateAwardInput{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update award failed", "award_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, awardToDTO(updated))
}

func (h *Handler) DeleteAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAward")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.awardService.Delete(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "delete award failed", "award_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message string   `json:"message"`
		Award   awardDTO `json:"award"`
	}{
		Message: "award deleted",
		Award:   awardToDTO(deleted),
	})
}

func (h *Handler) GetPlayerAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerAwards")
	defer span.End()

	if queryString(r, "id") != "" {
		id, err := requiredID(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		item, err := h.awardService.GetPlayerAwardByID(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, playerAwardToDTO(item))
		return
	}

	playerID, err := queryID(r, "playerId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	awardID, err := queryID(r, "awardId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.awardService.ListPlayerAwards(ctx, usecase.ListPlayerAwardsInput{
		Limit:    queryInt(r, "limit"),
		Offset:   queryInt(r, "offset"),
		PlayerID: playerID,
		AwardID:  awardID,
		Year:     queryInt(r, "year"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list player awards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerAwardsToDTOs(items))
}

func (h *Handler) CreatePlayerAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayerAward")
	defer span.End()

	var req createPlayerAwardRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.awardService.GrantPlayerAward(ctx, usecase.CreatePlayerAwardInput{
		PlayerID: req.PlayerID,
		AwardID:  req.AwardID,
		Year:     req.Year,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "grant player award failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, playerAwardToDTO(created))
}

func (h *Handler) UpdatePlayerAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerAward")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updatePlayerAwardRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.awardService.UpdatePlayerAward(ctx, usecase.UpdatePlayerAwardInput{
		ID:       id,
		PlayerID: req.PlayerID,
		AwardID:  req.AwardID,
		Year:     req.Year,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player award failed", "player_award_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerAwardToDTO(updated))
}

func (h *Handler) DeletePlayerAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayerAward")
	defer span.End()

	id, err := requiredID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.awardService.RevokePlayerAward(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "revoke player award failed", "player_award_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Message     string         `json:"message"`
		PlayerAward playerAwardDTO `json:"playerAward"`
	}{
		Message:     "player award deleted",
		PlayerAward: playerAwardToDTO(deleted),
	})
}
