package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wicketline/cricket-stats/internal/domain/performance"
	"github.com/wicketline/cricket-stats/internal/domain/player"
	"github.com/wicketline/cricket-stats/internal/domain/team"
)

type ListPlayersInput struct {
	Limit  int
	Offset int
	Search string
	TeamID int64
	Role   string
}

type CreatePlayerInput struct {
	Name   string
	TeamID int64
	Role   string
}

type UpdatePlayerInput struct {
	ID     int64
	Name   *string
	TeamID *int64
	Role   *string
}

type PlayerService struct {
	playerRepo      player.Repository
	teamRepo        team.Repository
	performanceRepo performance.Repository
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, performanceRepo performance.Repository) *PlayerService {
	return &PlayerService{
		playerRepo:      playerRepo,
		teamRepo:        teamRepo,
		performanceRepo: performanceRepo,
	}
}

func (s *PlayerService) List(ctx context.Context, input ListPlayersInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	role, err := parseRole(input.Role, false)
	if err != nil {
		return nil, err
	}

	items, err := s.playerRepo.List(ctx, player.Filter{
		Limit:  clampLimit(input.Limit, defaultListLimit),
		Offset: clampOffset(input.Offset),
		Search: strings.TrimSpace(input.Search),
		TeamID: input.TeamID,
		Role:   role,
	})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	if id <= 0 {
		return player.Player{}, Errorf(ErrInvalidInput, "INVALID_ID", "player id must be a positive integer")
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, Errorf(ErrNotFound, "PLAYER_NOT_FOUND", "player %d not found", id)
	}
	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	item := player.Player{
		Name:   strings.TrimSpace(input.Name),
		TeamID: input.TeamID,
	}
	if item.Name == "" {
		return player.Player{}, Errorf(ErrInvalidInput, "MISSING_NAME", "player name is required")
	}
	if item.TeamID <= 0 {
		return player.Player{}, Errorf(ErrInvalidInput, "MISSING_TEAM_ID", "player team id is required")
	}
	role, err := parseRole(input.Role, true)
	if err != nil {
		return player.Player{}, err
	}
	item.Role = role

	if err := s.ensureTeamExists(ctx, item.TeamID); err != nil {
		return player.Player{}, err
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return player.Player{}, err
	}

	item := existing
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
		if item.Name == "" {
			return player.Player{}, Errorf(ErrInvalidInput, "MISSING_NAME", "player name is required")
		}
	}
	if input.TeamID != nil {
		item.TeamID = *input.TeamID
		if err := s.ensureTeamExists(ctx, item.TeamID); err != nil {
			return player.Player{}, err
		}
	}
	if input.Role != nil {
		role, err := parseRole(*input.Role, true)
		if err != nil {
			return player.Player{}, err
		}
		item.Role = role
	}
	if input.Name == nil && input.TeamID == nil && input.Role == nil {
		return existing, nil
	}

	updated, exists, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !exists {
		return player.Player{}, Errorf(ErrNotFound, "PLAYER_NOT_FOUND", "player %d not found", input.ID)
	}
	return updated, nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if id <= 0 {
		return player.Player{}, Errorf(ErrInvalidInput, "INVALID_ID", "player id must be a positive integer")
	}

	deleted, exists, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, player.ErrInUse) {
			return player.Player{}, Errorf(ErrReferenced, "FOREIGN_KEY_CONSTRAINT", "player %d is referenced by other records", id)
		}
		return player.Player{}, fmt.Errorf("delete player: %w", err)
	}
	if !exists {
		return player.Player{}, Errorf(ErrNotFound, "PLAYER_NOT_FOUND", "player %d not found", id)
	}
	return deleted, nil
}

// TotalRuns aggregates runs across every performance of the player. Players
// without performances report zero, not absence.
func (s *PlayerService) TotalRuns(ctx context.Context, playerID int64) (performance.PlayerTotal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TotalRuns")
	defer span.End()

	if playerID <= 0 {
		return performance.PlayerTotal{}, Errorf(ErrInvalidInput, "INVALID_ID", "player id must be a positive integer")
	}

	total, exists, err := s.performanceRepo.TotalRuns(ctx, playerID)
	if err != nil {
		return performance.PlayerTotal{}, fmt.Errorf("get player total runs: %w", err)
	}
	if !exists {
		return performance.PlayerTotal{}, Errorf(ErrNotFound, "PLAYER_NOT_FOUND", "player %d not found", playerID)
	}
	return total, nil
}

func (s *PlayerService) ensureTeamExists(ctx context.Context, teamID int64) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return Errorf(ErrNotFound, "TEAM_NOT_FOUND", "team %d not found", teamID)
	}
	return nil
}

func parseRole(raw string, required bool) (player.Role, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return "", Errorf(ErrInvalidInput, "MISSING_ROLE", "player role is required")
		}
		return "", nil
	}
	role := player.Role(raw)
	if _, ok := player.AllRoles[role]; !ok {
		return "", Errorf(ErrInvalidInput, "INVALID_ROLE", "invalid player role %q", raw)
	}
	return role, nil
}
