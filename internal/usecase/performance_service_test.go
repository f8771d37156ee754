package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func newPerformanceService(db *memory.DB) *usecase.PerformanceService {
	return usecase.NewPerformanceService(
		memory.NewPerformanceRepository(db),
		memory.NewMatchRepository(db),
		memory.NewPlayerRepository(db),
	)
}

func TestPerformanceServiceInsert(t *testing.T) {
	db := memory.SeedDB()
	svc := newPerformanceService(db)

	created, err := svc.Insert(context.Background(), usecase.InsertPerformanceInput{
		MatchID:    1,
		PlayerID:   1,
		RunsScored: 85,
	})
	if err != nil {
		t.Fatalf("insert performance: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.WicketsTaken != 0 {
		t.Fatalf("expected wickets to default to 0, got %d", created.WicketsTaken)
	}
}

func TestPerformanceServiceInsertDuplicate(t *testing.T) {
	db := memory.SeedDB()
	svc := newPerformanceService(db)

	input := usecase.InsertPerformanceInput{MatchID: 1, PlayerID: 1, RunsScored: 85}
	if _, err := svc.Insert(context.Background(), input); err != nil {
		t.Fatalf("insert performance: %v", err)
	}

	_, err := svc.Insert(context.Background(), input)
	if !errors.Is(err, usecase.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "DUPLICATE_PERFORMANCE" {
		t.Fatalf("expected DUPLICATE_PERFORMANCE, got %q", code)
	}
}

func TestPerformanceServiceInsertMatchNotFound(t *testing.T) {
	db := memory.SeedDB()
	svc := newPerformanceService(db)

	_, err := svc.Insert(context.Background(), usecase.InsertPerformanceInput{MatchID: 99, PlayerID: 1})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "MATCH_NOT_FOUND" {
		t.Fatalf("expected MATCH_NOT_FOUND, got %q", code)
	}
}

func TestPerformanceServiceInsertPlayerNotFound(t *testing.T) {
	db := memory.SeedDB()
	svc := newPerformanceService(db)

	_, err := svc.Insert(context.Background(), usecase.InsertPerformanceInput{MatchID: 1, PlayerID: 99})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "PLAYER_NOT_FOUND" {
		t.Fatalf("expected PLAYER_NOT_FOUND, got %q", code)
	}
}

func TestPerformanceServiceInsertNegativeRuns(t *testing.T) {
	db := memory.SeedDB()
	svc := newPerformanceService(db)

	_, err := svc.Insert(context.Background(), usecase.InsertPerformanceInput{MatchID: 1, PlayerID: 1, RunsScored: -1})
	if code := usecase.CodeOf(err); code != "INVALID_RUNS_SCORED" {
		t.Fatalf("expected INVALID_RUNS_SCORED, got %q (err=%v)", code, err)
	}
}

func TestPerformanceServiceSummary(t *testing.T) {
	db := memory.SeedDB()
	svc := newPerformanceService(db)

	if _, err := svc.Insert(context.Background(), usecase.InsertPerformanceInput{MatchID: 1, PlayerID: 1, RunsScored: 85}); err != nil {
		t.Fatalf("insert performance: %v", err)
	}
	if _, err := svc.Insert(context.Background(), usecase.InsertPerformanceInput{MatchID: 1, PlayerID: 3, WicketsTaken: 4}); err != nil {
		t.Fatalf("insert performance: %v", err)
	}

	rows, err := svc.Summary(context.Background(), usecase.SummaryInput{MatchID: 1})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 summary rows, got %d", len(rows))
	}
	if rows[0].Venue != "Wankhede Stadium" {
		t.Fatalf("unexpected venue: %q", rows[0].Venue)
	}
	if rows[0].PlayerName == "" || rows[0].TeamName == "" {
		t.Fatalf("expected joined names, got %+v", rows[0])
	}
}
