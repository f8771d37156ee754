package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func newMatchScoreService(db *memory.DB) *usecase.MatchScoreService {
	return usecase.NewMatchScoreService(memory.NewMatchScoreRepository(db), memory.NewMatchRepository(db))
}

func TestMatchScoreServiceCreateDuplicateMatchTeam(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchScoreService(db)
	ctx := context.Background()

	input := usecase.CreateMatchScoreInput{MatchTeamID: 1, Runs: 250, Wickets: 7, Overs: 50}
	if _, err := svc.Create(ctx, input); err != nil {
		t.Fatalf("create score: %v", err)
	}

	_, err := svc.Create(ctx, input)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "DUPLICATE_MATCH_TEAM" {
		t.Fatalf("expected DUPLICATE_MATCH_TEAM, got %q", code)
	}
}

func TestMatchScoreServiceCreateValidation(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchScoreService(db)
	ctx := context.Background()

	cases := []struct {
		name  string
		input usecase.CreateMatchScoreInput
		code  string
	}{
		{"negative runs", usecase.CreateMatchScoreInput{MatchTeamID: 1, Runs: -1, Overs: 50}, "INVALID_RUNS"},
		{"negative wickets", usecase.CreateMatchScoreInput{MatchTeamID: 1, Wickets: -1, Overs: 50}, "INVALID_WICKETS"},
		{"zero overs", usecase.CreateMatchScoreInput{MatchTeamID: 1, Runs: 100}, "INVALID_OVERS"},
		{"unknown match team", usecase.CreateMatchScoreInput{MatchTeamID: 99, Runs: 100, Overs: 50}, "MATCH_TEAM_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			if code := usecase.CodeOf(err); code != tc.code {
				t.Fatalf("expected %s, got %q (err=%v)", tc.code, code, err)
			}
		})
	}
}

func TestMatchScoreServiceDeleteUnblocksMatchTeam(t *testing.T) {
	db := memory.SeedDB()
	scoreSvc := newMatchScoreService(db)
	matchSvc := usecase.NewMatchService(memory.NewMatchRepository(db), memory.NewTeamRepository(db))
	ctx := context.Background()

	created, err := scoreSvc.Create(ctx, usecase.CreateMatchScoreInput{MatchTeamID: 1, Runs: 250, Wickets: 7, Overs: 50})
	if err != nil {
		t.Fatalf("create score: %v", err)
	}

	_, err = matchSvc.RemoveTeam(ctx, 1)
	if !errors.Is(err, usecase.ErrReferenced) {
		t.Fatalf("expected referenced error while score exists, got %v", err)
	}

	if _, err := scoreSvc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete score: %v", err)
	}
	if _, err := matchSvc.RemoveTeam(ctx, 1); err != nil {
		t.Fatalf("remove match team after score deletion: %v", err)
	}
}
