package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/wicketline/cricket-stats/internal/domain/match"
	"github.com/wicketline/cricket-stats/internal/domain/score"
)

type ListMatchScoresInput struct {
	Limit       int
	Offset      int
	MatchTeamID int64
}

type CreateMatchScoreInput struct {
	MatchTeamID int64
	Runs        int
	Wickets     int
	Overs       float64
}

type UpdateMatchScoreInput struct {
	ID      int64
	Runs    *int
	Wickets *int
	Overs   *float64
}

type MatchScoreService struct {
	scoreRepo score.Repository
	matchRepo match.Repository
}

func NewMatchScoreService(scoreRepo score.Repository, matchRepo match.Repository) *MatchScoreService {
	return &MatchScoreService{scoreRepo: scoreRepo, matchRepo: matchRepo}
}

func (s *MatchScoreService) List(ctx context.Context, input ListMatchScoresInput) ([]score.MatchScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchScoreService.List")
	defer span.End()

	items, err := s.scoreRepo.List(ctx, score.Filter{
		Limit:       clampLimit(input.Limit, defaultListLimit),
		Offset:      clampOffset(input.Offset),
		MatchTeamID: input.MatchTeamID,
	})
	if err != nil {
		return nil, fmt.Errorf("list match scores: %w", err)
	}
	return items, nil
}

func (s *MatchScoreService) GetByID(ctx context.Context, id int64) (score.MatchScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchScoreService.GetByID")
	defer span.End()

	if id <= 0 {
		return score.MatchScore{}, Errorf(ErrInvalidInput, "INVALID_ID", "match score id must be a positive integer")
	}

	item, exists, err := s.scoreRepo.GetByID(ctx, id)
	if err != nil {
		return score.MatchScore{}, fmt.Errorf("get match score: %w", err)
	}
	if !exists {
		return score.MatchScore{}, Errorf(ErrNotFound, "MATCH_SCORE_NOT_FOUND", "match score %d not found", id)
	}
	return item, nil
}

func (s *MatchScoreService) Create(ctx context.Context, input CreateMatchScoreInput) (score.MatchScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchScoreService.Create")
	defer span.End()

	item := score.MatchScore{
		MatchTeamID: input.MatchTeamID,
		Runs:        input.Runs,
		Wickets:     input.Wickets,
		Overs:       input.Overs,
	}
	if err := validateScoreFields(item); err != nil {
		return score.MatchScore{}, err
	}

	_, exists, err := s.matchRepo.GetEntryByID(ctx, item.MatchTeamID)
	if err != nil {
		return score.MatchScore{}, fmt.Errorf("get match team: %w", err)
	}
	if !exists {
		return score.MatchScore{}, Errorf(ErrNotFound, "MATCH_TEAM_NOT_FOUND", "match team %d not found", item.MatchTeamID)
	}

	created, err := s.scoreRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, score.ErrDuplicateMatchTeam) {
			return score.MatchScore{}, Errorf(ErrInvalidInput, "DUPLICATE_MATCH_TEAM", "score already exists for match team %d", item.MatchTeamID)
		}
		return score.MatchScore{}, fmt.Errorf("create match score: %w", err)
	}
	return created, nil
}

func (s *MatchScoreService) Update(ctx context.Context, input UpdateMatchScoreInput) (score.MatchScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchScoreService.Update")
	defer span.End()

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return score.MatchScore{}, err
	}

	item := existing
	if input.Runs != nil {
		item.Runs = *input.Runs
	}
	if input.Wickets != nil {
		item.Wickets = *input.Wickets
	}
	if input.Overs != nil {
		item.Overs = *input.Overs
	}
	if input.Runs == nil && input.Wickets == nil && input.Overs == nil {
		return existing, nil
	}
	if err := validateScoreFields(item); err != nil {
		return score.MatchScore{}, err
	}

	updated, exists, err := s.scoreRepo.Update(ctx, item)
	if err != nil {
		return score.MatchScore{}, fmt.Errorf("update match score: %w", err)
	}
	if !exists {
		return score.MatchScore{}, Errorf(ErrNotFound, "MATCH_SCORE_NOT_FOUND", "match score %d not found", input.ID)
	}
	return updated, nil
}

func (s *MatchScoreService) Delete(ctx context.Context, id int64) (score.MatchScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchScoreService.Delete")
	defer span.End()

	if id <= 0 {
		return score.MatchScore{}, Errorf(ErrInvalidInput, "INVALID_ID", "match score id must be a positive integer")
	}

	deleted, exists, err := s.scoreRepo.Delete(ctx, id)
	if err != nil {
		return score.MatchScore{}, fmt.Errorf("delete match score: %w", err)
	}
	if !exists {
		return score.MatchScore{}, Errorf(ErrNotFound, "MATCH_SCORE_NOT_FOUND", "match score %d not found", id)
	}
	return deleted, nil
}

func validateScoreFields(item score.MatchScore) error {
	if item.MatchTeamID <= 0 {
		return Errorf(ErrInvalidInput, "MISSING_MATCH_TEAM_ID", "match team id is required")
	}
	if item.Runs < 0 {
		return Errorf(ErrInvalidInput, "INVALID_RUNS", "runs must be non-negative")
	}
	if item.Wickets < 0 {
		return Errorf(ErrInvalidInput, "INVALID_WICKETS", "wickets must be non-negative")
	}
	if item.Overs <= 0 {
		return Errorf(ErrInvalidInput, "INVALID_OVERS", "overs must be greater than zero")
	}
	return nil
}
