package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func newMatchResultService(db *memory.DB) *usecase.MatchResultService {
	return usecase.NewMatchResultService(
		memory.NewMatchResultRepository(db),
		memory.NewMatchRepository(db),
		memory.NewTeamRepository(db),
	)
}

func TestMatchResultServiceRecordWinner(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchResultService(db)

	// Match 1: India (entry 1) vs Australia (entry 2).
	recorded, err := svc.Record(context.Background(), usecase.RecordMatchResultInput{
		MatchID: 1,
		Innings: []usecase.RecordInningsInput{
			{MatchTeamID: 1, Runs: 287, Wickets: 6, Overs: 50},
			{MatchTeamID: 2, Runs: 255, Wickets: 10, Overs: 47.3},
		},
	})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}

	if recorded.Result.WinningTeamID == nil || *recorded.Result.WinningTeamID != 1 {
		t.Fatalf("expected team 1 to win, got %+v", recorded.Result.WinningTeamID)
	}
	if recorded.Result.ResultSummary == nil {
		t.Fatalf("expected summary to be set")
	}
	want := "India 287/6 vs Australia 255/10 - India won by 32 runs"
	if *recorded.Result.ResultSummary != want {
		t.Fatalf("unexpected summary:\nwant: %s\ngot:  %s", want, *recorded.Result.ResultSummary)
	}
	if len(recorded.Scores) != 2 {
		t.Fatalf("expected 2 score rows, got %d", len(recorded.Scores))
	}
	for _, s := range recorded.Scores {
		if s.ID == 0 {
			t.Fatalf("expected persisted score rows, got %+v", s)
		}
	}
}

func TestMatchResultServiceRecordTie(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchResultService(db)

	recorded, err := svc.Record(context.Background(), usecase.RecordMatchResultInput{
		MatchID: 1,
		Innings: []usecase.RecordInningsInput{
			{MatchTeamID: 1, Runs: 250, Wickets: 8, Overs: 50},
			{MatchTeamID: 2, Runs: 250, Wickets: 9, Overs: 50},
		},
	})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}

	if recorded.Result.WinningTeamID != nil {
		t.Fatalf("expected no winner for a tie, got %d", *recorded.Result.WinningTeamID)
	}
	want := "India 250/8 vs Australia 250/9 - Match tied"
	if recorded.Result.ResultSummary == nil || *recorded.Result.ResultSummary != want {
		t.Fatalf("unexpected tie summary: %+v", recorded.Result.ResultSummary)
	}
}

func TestMatchResultServiceRecordDuplicate(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchResultService(db)

	input := usecase.RecordMatchResultInput{
		MatchID: 1,
		Innings: []usecase.RecordInningsInput{
			{MatchTeamID: 1, Runs: 287, Wickets: 6, Overs: 50},
			{MatchTeamID: 2, Runs: 255, Wickets: 10, Overs: 47.3},
		},
	}
	if _, err := svc.Record(context.Background(), input); err != nil {
		t.Fatalf("record result: %v", err)
	}

	_, err := svc.Record(context.Background(), input)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	// The second attempt trips the duplicate score constraint before the
	// duplicate result one; both are 400-class codes.
	code := usecase.CodeOf(err)
	if code != "DUPLICATE_MATCH_TEAM" && code != "DUPLICATE_MATCH_ID" {
		t.Fatalf("expected duplicate code, got %q", code)
	}
}

func TestMatchResultServiceRecordIncompleteEntries(t *testing.T) {
	db := memory.NewDB()
	matchRepo := memory.NewMatchRepository(db)
	teamRepo := memory.NewTeamRepository(db)
	matchSvc := usecase.NewMatchService(matchRepo, teamRepo)
	teamSvc := usecase.NewTeamService(teamRepo)
	svc := newMatchResultService(db)
	ctx := context.Background()

	if _, err := teamSvc.Create(ctx, usecase.CreateTeamInput{Name: "India", Country: "India"}); err != nil {
		t.Fatalf("create team: %v", err)
	}
	m, err := matchSvc.Create(ctx, usecase.CreateMatchInput{Venue: "Eden Gardens", MatchDate: "2024-03-01", MatchType: "ODI"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if _, err := matchSvc.AddTeam(ctx, usecase.CreateMatchTeamInput{MatchID: m.ID, TeamID: 1}); err != nil {
		t.Fatalf("add match team: %v", err)
	}

	_, err = svc.Record(ctx, usecase.RecordMatchResultInput{
		MatchID: m.ID,
		Innings: []usecase.RecordInningsInput{{MatchTeamID: 1, Runs: 200, Wickets: 5, Overs: 50}},
	})
	if code := usecase.CodeOf(err); code != "MATCH_TEAMS_INCOMPLETE" {
		t.Fatalf("expected MATCH_TEAMS_INCOMPLETE, got %q (err=%v)", code, err)
	}
}

func TestMatchResultServiceRecordForeignEntry(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchResultService(db)

	// Entries 3 and 4 belong to match 2, not match 1.
	_, err := svc.Record(context.Background(), usecase.RecordMatchResultInput{
		MatchID: 1,
		Innings: []usecase.RecordInningsInput{
			{MatchTeamID: 1, Runs: 200, Wickets: 5, Overs: 50},
			{MatchTeamID: 3, Runs: 180, Wickets: 10, Overs: 45},
		},
	})
	if code := usecase.CodeOf(err); code != "INVALID_MATCH_TEAM_ID" {
		t.Fatalf("expected INVALID_MATCH_TEAM_ID, got %q (err=%v)", code, err)
	}
}

func TestMatchResultServiceCreateDuplicateMatch(t *testing.T) {
	db := memory.SeedDB()
	svc := newMatchResultService(db)
	ctx := context.Background()

	if _, err := svc.Create(ctx, usecase.CreateMatchResultInput{MatchID: 1}); err != nil {
		t.Fatalf("create result: %v", err)
	}

	_, err := svc.Create(ctx, usecase.CreateMatchResultInput{MatchID: 1})
	if code := usecase.CodeOf(err); code != "DUPLICATE_MATCH_ID" {
		t.Fatalf("expected DUPLICATE_MATCH_ID, got %q (err=%v)", code, err)
	}
}
