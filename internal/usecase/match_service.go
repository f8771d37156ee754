package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/match"
	"github.com/wicketline/cricket-stats/internal/domain/team"
)

// matchDateLayout is the wire format for match dates, date-only ISO 8601.
const matchDateLayout = "2006-01-02"

type ListMatchesInput struct {
	Limit     int
	Offset    int
	Search    string
	MatchType string
}

type CreateMatchInput struct {
	Venue     string
	MatchDate string
	MatchType string
}

type UpdateMatchInput struct {
	ID        int64
	Venue     *string
	MatchDate *string
	MatchType *string
}

type ListMatchTeamsInput struct {
	Limit   int
	Offset  int
	MatchID int64
	TeamID  int64
}

type CreateMatchTeamInput struct {
	MatchID int64
	TeamID  int64
}

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo, teamRepo: teamRepo}
}

func (s *MatchService) List(ctx context.Context, input ListMatchesInput) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	matchType, err := parseMatchType(input.MatchType, false)
	if err != nil {
		return nil, err
	}

	items, err := s.matchRepo.List(ctx, match.Filter{
		Limit:     clampLimit(input.Limit, defaultListLimit),
		Offset:    clampOffset(input.Offset),
		Search:    strings.TrimSpace(input.Search),
		MatchType: matchType,
	})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetByID(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID")
	defer span.End()

	if id <= 0 {
		return match.Match{}, Errorf(ErrInvalidInput, "INVALID_ID", "match id must be a positive integer")
	}

	item, exists, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, Errorf(ErrNotFound, "MATCH_NOT_FOUND", "match %d not found", id)
	}
	return item, nil
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	item := match.Match{Venue: strings.TrimSpace(input.Venue)}
	if item.Venue == "" {
		return match.Match{}, Errorf(ErrInvalidInput, "MISSING_VENUE", "match venue is required")
	}
	matchDate, err := parseMatchDate(input.MatchDate, true)
	if err != nil {
		return match.Match{}, err
	}
	item.MatchDate = matchDate
	matchType, err := parseMatchType(input.MatchType, true)
	if err != nil {
		return match.Match{}, err
	}
	item.MatchType = matchType

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

func (s *MatchService) Update(ctx context.Context, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return match.Match{}, err
	}

	item := existing
	if input.Venue != nil {
		item.Venue = strings.TrimSpace(*input.Venue)
		if item.Venue == "" {
			return match.Match{}, Errorf(ErrInvalidInput, "MISSING_VENUE", "match venue is required")
		}
	}
	if input.MatchDate != nil {
		matchDate, err := parseMatchDate(*input.MatchDate, true)
		if err != nil {
			return match.Match{}, err
		}
		item.MatchDate = matchDate
	}
	if input.MatchType != nil {
		matchType, err := parseMatchType(*input.MatchType, true)
		if err != nil {
			return match.Match{}, err
		}
		item.MatchType = matchType
	}
	if input.Venue == nil && input.MatchDate == nil && input.MatchType == nil {
		return existing, nil
	}

	updated, exists, err := s.matchRepo.Update(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !exists {
		return match.Match{}, Errorf(ErrNotFound, "MATCH_NOT_FOUND", "match %d not found", input.ID)
	}
	return updated, nil
}

func (s *MatchService) Delete(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if id <= 0 {
		return match.Match{}, Errorf(ErrInvalidInput, "INVALID_ID", "match id must be a positive integer")
	}

	deleted, exists, err := s.matchRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, match.ErrInUse) {
			return match.Match{}, Errorf(ErrReferenced, "FOREIGN_KEY_CONSTRAINT", "match %d is referenced by other records", id)
		}
		return match.Match{}, fmt.Errorf("delete match: %w", err)
	}
	if !exists {
		return match.Match{}, Errorf(ErrNotFound, "MATCH_NOT_FOUND", "match %d not found", id)
	}
	return deleted, nil
}

func (s *MatchService) ListTeams(ctx context.Context, input ListMatchTeamsInput) ([]match.TeamEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListTeams")
	defer span.End()

	items, err := s.matchRepo.ListEntries(ctx, match.EntryFilter{
		Limit:   clampLimit(input.Limit, defaultListLimit),
		Offset:  clampOffset(input.Offset),
		MatchID: input.MatchID,
		TeamID:  input.TeamID,
	})
	if err != nil {
		return nil, fmt.Errorf("list match teams: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetTeamByID(ctx context.Context, id int64) (match.TeamEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetTeamByID")
	defer span.End()

	if id <= 0 {
		return match.TeamEntry{}, Errorf(ErrInvalidInput, "INVALID_ID", "match team id must be a positive integer")
	}

	item, exists, err := s.matchRepo.GetEntryByID(ctx, id)
	if err != nil {
		return match.TeamEntry{}, fmt.Errorf("get match team: %w", err)
	}
	if !exists {
		return match.TeamEntry{}, Errorf(ErrNotFound, "MATCH_TEAM_NOT_FOUND", "match team %d not found", id)
	}
	return item, nil
}

func (s *MatchService) AddTeam(ctx context.Context, input CreateMatchTeamInput) (match.TeamEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddTeam")
	defer span.End()

	if input.MatchID <= 0 {
		return match.TeamEntry{}, Errorf(ErrInvalidInput, "MISSING_MATCH_ID", "match id is required")
	}
	if input.TeamID <= 0 {
		return match.TeamEntry{}, Errorf(ErrInvalidInput, "MISSING_TEAM_ID", "team id is required")
	}
	if _, err := s.GetByID(ctx, input.MatchID); err != nil {
		return match.TeamEntry{}, err
	}
	_, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return match.TeamEntry{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return match.TeamEntry{}, Errorf(ErrNotFound, "TEAM_NOT_FOUND", "team %d not found", input.TeamID)
	}

	created, err := s.matchRepo.CreateEntry(ctx, match.TeamEntry{
		MatchID: input.MatchID,
		TeamID:  input.TeamID,
	})
	if err != nil {
		if errors.Is(err, match.ErrDuplicateEntry) {
			return match.TeamEntry{}, Errorf(ErrInvalidInput, "DUPLICATE_TEAM_ENTRY", "team %d is already entered for match %d", input.TeamID, input.MatchID)
		}
		return match.TeamEntry{}, fmt.Errorf("create match team: %w", err)
	}
	return created, nil
}

func (s *MatchService) RemoveTeam(ctx context.Context, id int64) (match.TeamEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RemoveTeam")
	defer span.End()

	if id <= 0 {
		return match.TeamEntry{}, Errorf(ErrInvalidInput, "INVALID_ID", "match team id must be a positive integer")
	}

	deleted, exists, err := s.matchRepo.DeleteEntry(ctx, id)
	if err != nil {
		if errors.Is(err, match.ErrEntryInUse) {
			return match.TeamEntry{}, Errorf(ErrReferenced, "FOREIGN_KEY_CONSTRAINT", "match team %d is referenced by a score", id)
		}
		return match.TeamEntry{}, fmt.Errorf("delete match team: %w", err)
	}
	if !exists {
		return match.TeamEntry{}, Errorf(ErrNotFound, "MATCH_TEAM_NOT_FOUND", "match team %d not found", id)
	}
	return deleted, nil
}

func parseMatchDate(raw string, required bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return time.Time{}, Errorf(ErrInvalidInput, "MISSING_MATCH_DATE", "match date is required")
		}
		return time.Time{}, nil
	}
	parsed, err := time.Parse(matchDateLayout, raw)
	if err != nil {
		return time.Time{}, Errorf(ErrInvalidInput, "INVALID_MATCH_DATE", "match date %q is not a valid YYYY-MM-DD date", raw)
	}
	return parsed, nil
}

func parseMatchType(raw string, required bool) (match.Type, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return "", Errorf(ErrInvalidInput, "MISSING_MATCH_TYPE", "match type is required")
		}
		return "", nil
	}
	matchType := match.Type(raw)
	if _, ok := match.AllTypes[matchType]; !ok {
		return "", Errorf(ErrInvalidInput, "INVALID_MATCH_TYPE", "invalid match type %q", raw)
	}
	return matchType, nil
}
