package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func newMatchService(db *memory.DB) *usecase.MatchService {
	return usecase.NewMatchService(memory.NewMatchRepository(db), memory.NewTeamRepository(db))
}

func TestMatchServiceAddTeam(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchService(db)

	entry, err := svc.AddTeam(context.Background(), usecase.CreateMatchTeamInput{MatchID: 1, TeamID: 3})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	if entry.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestMatchServiceAddTeamDuplicate(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchService(db)

	// The seed already enters team 1 into match 1.
	_, err := svc.AddTeam(context.Background(), usecase.CreateMatchTeamInput{MatchID: 1, TeamID: 1})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "DUPLICATE_TEAM_ENTRY" {
		t.Fatalf("expected DUPLICATE_TEAM_ENTRY, got %q (err=%v)", code, err)
	}
}

func TestMatchServiceAddTeamUnknownTeam(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchService(db)

	_, err := svc.AddTeam(context.Background(), usecase.CreateMatchTeamInput{MatchID: 1, TeamID: 999})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
