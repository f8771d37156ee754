package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wicketline/cricket-stats/internal/domain/team"
)

type ListTeamsInput struct {
	Limit  int
	Offset int
	Search string
}

type CreateTeamInput struct {
	Name    string
	Country string
}

// UpdateTeamInput carries optional fields; nil means leave unchanged. An
// update with no fields set returns the existing row untouched.
type UpdateTeamInput struct {
	ID      int64
	Name    *string
	Country *string
}

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) List(ctx context.Context, input ListTeamsInput) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx, team.Filter{
		Limit:  clampLimit(input.Limit, defaultListLimit),
		Offset: clampOffset(input.Offset),
		Search: strings.TrimSpace(input.Search),
	})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) GetByID(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	if id <= 0 {
		return team.Team{}, Errorf(ErrInvalidInput, "INVALID_ID", "team id must be a positive integer")
	}

	item, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, Errorf(ErrNotFound, "TEAM_NOT_FOUND", "team %d not found", id)
	}
	return item, nil
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	item := team.Team{
		Name:    strings.TrimSpace(input.Name),
		Country: strings.TrimSpace(input.Country),
	}
	if item.Name == "" {
		return team.Team{}, Errorf(ErrInvalidInput, "MISSING_NAME", "team name is required")
	}
	if item.Country == "" {
		return team.Team{}, Errorf(ErrInvalidInput, "MISSING_COUNTRY", "team country is required")
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, team.ErrNameTaken) {
			return team.Team{}, Errorf(ErrInvalidInput, "DUPLICATE_NAME", "team name %q already exists", item.Name)
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return team.Team{}, err
	}

	item := existing
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
		if item.Name == "" {
			return team.Team{}, Errorf(ErrInvalidInput, "MISSING_NAME", "team name is required")
		}
	}
	if input.Country != nil {
		item.Country = strings.TrimSpace(*input.Country)
		if item.Country == "" {
			return team.Team{}, Errorf(ErrInvalidInput, "MISSING_COUNTRY", "team country is required")
		}
	}
	if input.Name == nil && input.Country == nil {
		return existing, nil
	}

	updated, exists, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, team.ErrNameTaken) {
			return team.Team{}, Errorf(ErrInvalidInput, "DUPLICATE_NAME", "team name %q already exists", item.Name)
		}
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !exists {
		return team.Team{}, Errorf(ErrNotFound, "TEAM_NOT_FOUND", "team %d not found", input.ID)
	}
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if id <= 0 {
		return team.Team{}, Errorf(ErrInvalidInput, "INVALID_ID", "team id must be a positive integer")
	}

	deleted, exists, err := s.teamRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, team.ErrInUse) {
			return team.Team{}, Errorf(ErrReferenced, "FOREIGN_KEY_CONSTRAINT", "team %d is referenced by other records", id)
		}
		return team.Team{}, fmt.Errorf("delete team: %w", err)
	}
	if !exists {
		return team.Team{}, Errorf(ErrNotFound, "TEAM_NOT_FOUND", "team %d not found", id)
	}
	return deleted, nil
}
