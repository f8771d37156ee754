package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/wicketline/cricket-stats/internal/domain/match"
	"github.com/wicketline/cricket-stats/internal/domain/performance"
	"github.com/wicketline/cricket-stats/internal/domain/player"
)

type ListPerformancesInput struct {
	Limit    int
	Offset   int
	MatchID  int64
	PlayerID int64
}

// InsertPerformanceInput feeds both the plain create and the guarded insert
// workflow. Runs and wickets default to zero when omitted.
type InsertPerformanceInput struct {
	MatchID      int64
	PlayerID     int64
	RunsScored   int
	WicketsTaken int
}

type UpdatePerformanceInput struct {
	ID           int64
	RunsScored   *int
	WicketsTaken *int
}

type SummaryInput struct {
	Limit    int
	Offset   int
	MatchID  int64
	PlayerID int64
}

type PerformanceService struct {
	performanceRepo performance.Repository
	matchRepo       match.Repository
	playerRepo      player.Repository
}

func NewPerformanceService(performanceRepo performance.Repository, matchRepo match.Repository, playerRepo player.Repository) *PerformanceService {
	return &PerformanceService{
		performanceRepo: performanceRepo,
		matchRepo:       matchRepo,
		playerRepo:      playerRepo,
	}
}

func (s *PerformanceService) List(ctx context.Context, input ListPerformancesInput) ([]performance.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.List")
	defer span.End()

	items, err := s.performanceRepo.List(ctx, performance.Filter{
		Limit:    clampLimit(input.Limit, defaultListLimit),
		Offset:   clampOffset(input.Offset),
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("list performances: %w", err)
	}
	return items, nil
}

func (s *PerformanceService) GetByID(ctx context.Context, id int64) (performance.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.GetByID")
	defer span.End()

	if id <= 0 {
		return performance.Performance{}, Errorf(ErrInvalidInput, "INVALID_ID", "performance id must be a positive integer")
	}

	item, exists, err := s.performanceRepo.GetByID(ctx, id)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("get performance: %w", err)
	}
	if !exists {
		return performance.Performance{}, Errorf(ErrNotFound, "PERFORMANCE_NOT_FOUND", "performance %d not found", id)
	}
	return item, nil
}

// Insert is the guarded insert workflow: referenced match and player must
// exist, and the (match, player) pair must be new. The duplicate check rides
// on the unique constraint, surfacing as a 409-class conflict.
func (s *PerformanceService) Insert(ctx context.Context, input InsertPerformanceInput) (performance.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Insert")
	defer span.End()

	item := performance.Performance{
		MatchID:      input.MatchID,
		PlayerID:     input.PlayerID,
		RunsScored:   input.RunsScored,
		WicketsTaken: input.WicketsTaken,
	}
	if item.MatchID <= 0 {
		return performance.Performance{}, Errorf(ErrInvalidInput, "MISSING_MATCH_ID", "match id is required")
	}
	if item.PlayerID <= 0 {
		return performance.Performance{}, Errorf(ErrInvalidInput, "MISSING_PLAYER_ID", "player id is required")
	}
	if item.RunsScored < 0 {
		return performance.Performance{}, Errorf(ErrInvalidInput, "INVALID_RUNS_SCORED", "runs scored must be non-negative")
	}
	if item.WicketsTaken < 0 {
		return performance.Performance{}, Errorf(ErrInvalidInput, "INVALID_WICKETS_TAKEN", "wickets taken must be non-negative")
	}

	_, exists, err := s.matchRepo.GetByID(ctx, item.MatchID)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return performance.Performance{}, Errorf(ErrNotFound, "MATCH_NOT_FOUND", "match %d not found", item.MatchID)
	}
	_, exists, err = s.playerRepo.GetByID(ctx, item.PlayerID)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return performance.Performance{}, Errorf(ErrNotFound, "PLAYER_NOT_FOUND", "player %d not found", item.PlayerID)
	}

	created, err := s.performanceRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, performance.ErrDuplicate) {
			return performance.Performance{}, Errorf(ErrConflict, "DUPLICATE_PERFORMANCE",
				"performance already exists for match %d and player %d", item.MatchID, item.PlayerID)
		}
		return performance.Performance{}, fmt.Errorf("insert performance: %w", err)
	}
	return created, nil
}

func (s *PerformanceService) Update(ctx context.Context, input UpdatePerformanceInput) (performance.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Update")
	defer span.End()

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return performance.Performance{}, err
	}

	item := existing
	if input.RunsScored != nil {
		if *input.RunsScored < 0 {
			return performance.Performance{}, Errorf(ErrInvalidInput, "INVALID_RUNS_SCORED", "runs scored must be non-negative")
		}
		item.RunsScored = *input.RunsScored
	}
	if input.WicketsTaken != nil {
		if *input.WicketsTaken < 0 {
			return performance.Performance{}, Errorf(ErrInvalidInput, "INVALID_WICKETS_TAKEN", "wickets taken must be non-negative")
		}
		item.WicketsTaken = *input.WicketsTaken
	}
	if input.RunsScored == nil && input.WicketsTaken == nil {
		return existing, nil
	}

	updated, exists, err := s.performanceRepo.Update(ctx, item)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("update performance: %w", err)
	}
	if !exists {
		return performance.Performance{}, Errorf(ErrNotFound, "PERFORMANCE_NOT_FOUND", "performance %d not found", input.ID)
	}
	return updated, nil
}

func (s *PerformanceService) Delete(ctx context.Context, id int64) (performance.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Delete")
	defer span.End()

	if id <= 0 {
		return performance.Performance{}, Errorf(ErrInvalidInput, "INVALID_ID", "performance id must be a positive integer")
	}

	deleted, exists, err := s.performanceRepo.Delete(ctx, id)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("delete performance: %w", err)
	}
	if !exists {
		return performance.Performance{}, Errorf(ErrNotFound, "PERFORMANCE_NOT_FOUND", "performance %d not found", id)
	}
	return deleted, nil
}

func (s *PerformanceService) Summary(ctx context.Context, input SummaryInput) ([]performance.SummaryRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Summary")
	defer span.End()

	rows, err := s.performanceRepo.Summary(ctx, performance.SummaryFilter{
		Limit:    clampLimit(input.Limit, defaultSummaryLimit),
		Offset:   clampOffset(input.Offset),
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("performance summary: %w", err)
	}
	return rows, nil
}
