package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func newPlayerService(db *memory.DB) *usecase.PlayerService {
	return usecase.NewPlayerService(
		memory.NewPlayerRepository(db),
		memory.NewTeamRepository(db),
		memory.NewPerformanceRepository(db),
	)
}

func TestPlayerServiceCreateInvalidRole(t *testing.T) {
	db := memory.SeedDB()
	svc := newPlayerService(db)

	_, err := svc.Create(context.Background(), usecase.CreatePlayerInput{
		Name:   "Test Player",
		TeamID: 1,
		Role:   "Captain",
	})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "INVALID_ROLE" {
		t.Fatalf("expected INVALID_ROLE, got %q", code)
	}
}

func TestPlayerServiceCreateTeamNotFound(t *testing.T) {
	db := memory.SeedDB()
	svc := newPlayerService(db)

	_, err := svc.Create(context.Background(), usecase.CreatePlayerInput{
		Name:   "Test Player",
		TeamID: 99,
		Role:   "Batsman",
	})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "TEAM_NOT_FOUND" {
		t.Fatalf("expected TEAM_NOT_FOUND, got %q", code)
	}
}

func TestPlayerServiceListFilters(t *testing.T) {
	db := memory.SeedDB()
	svc := newPlayerService(db)

	byTeam, err := svc.List(context.Background(), usecase.ListPlayersInput{TeamID: 1})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(byTeam) != 2 {
		t.Fatalf("expected 2 players for team 1, got %d", len(byTeam))
	}

	byRole, err := svc.List(context.Background(), usecase.ListPlayersInput{Role: "Bowler"})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	for _, p := range byRole {
		if p.Role != "Bowler" {
			t.Fatalf("unexpected role in filtered list: %+v", p)
		}
	}
}

func TestPlayerServiceListInvalidRoleFilter(t *testing.T) {
	db := memory.SeedDB()
	svc := newPlayerService(db)

	_, err := svc.List(context.Background(), usecase.ListPlayersInput{Role: "Spinner"})
	if code := usecase.CodeOf(err); code != "INVALID_ROLE" {
		t.Fatalf("expected INVALID_ROLE, got %q (err=%v)", code, err)
	}
}

func TestPlayerServiceTotalRunsZeroWithoutPerformances(t *testing.T) {
	db := memory.SeedDB()
	svc := newPlayerService(db)

	total, err := svc.TotalRuns(context.Background(), 1)
	if err != nil {
		t.Fatalf("total runs: %v", err)
	}
	if total.TotalRuns != 0 {
		t.Fatalf("expected 0 runs, got %d", total.TotalRuns)
	}
	if total.PlayerName != "Rohit Sharma" {
		t.Fatalf("unexpected player name: %q", total.PlayerName)
	}
}

func TestPlayerServiceTotalRunsAggregates(t *testing.T) {
	db := memory.SeedDB()
	playerSvc := newPlayerService(db)
	perfSvc := newPerformanceService(db)
	ctx := context.Background()

	if _, err := perfSvc.Insert(ctx, usecase.InsertPerformanceInput{MatchID: 1, PlayerID: 1, RunsScored: 85}); err != nil {
		t.Fatalf("insert performance: %v", err)
	}
	if _, err := perfSvc.Insert(ctx, usecase.InsertPerformanceInput{MatchID: 2, PlayerID: 1, RunsScored: 40}); err != nil {
		t.Fatalf("insert performance: %v", err)
	}

	total, err := playerSvc.TotalRuns(ctx, 1)
	if err != nil {
		t.Fatalf("total runs: %v", err)
	}
	if total.TotalRuns != 125 {
		t.Fatalf("expected 125 runs, got %d", total.TotalRuns)
	}
}

func TestPlayerServiceTotalRunsUnknownPlayer(t *testing.T) {
	db := memory.SeedDB()
	svc := newPlayerService(db)

	_, err := svc.TotalRuns(context.Background(), 99)
	if code := usecase.CodeOf(err); code != "PLAYER_NOT_FOUND" {
		t.Fatalf("expected PLAYER_NOT_FOUND, got %q (err=%v)", code, err)
	}
}

func TestPlayerServiceDeleteBlockedByPerformance(t *testing.T) {
	db := memory.SeedDB()
	playerSvc := newPlayerService(db)
	perfSvc := newPerformanceService(db)
	ctx := context.Background()

	if _, err := perfSvc.Insert(ctx, usecase.InsertPerformanceInput{MatchID: 1, PlayerID: 1, RunsScored: 10}); err != nil {
		t.Fatalf("insert performance: %v", err)
	}

	_, err := playerSvc.Delete(ctx, 1)
	if !errors.Is(err, usecase.ErrReferenced) {
		t.Fatalf("expected referenced error, got %v", err)
	}
}
