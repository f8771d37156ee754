package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wicketline/cricket-stats/internal/domain/match"
	"github.com/wicketline/cricket-stats/internal/domain/result"
	"github.com/wicketline/cricket-stats/internal/domain/score"
	"github.com/wicketline/cricket-stats/internal/domain/team"
)

type ListMatchResultsInput struct {
	Limit         int
	Offset        int
	MatchID       int64
	WinningTeamID int64
}

type CreateMatchResultInput struct {
	MatchID       int64
	WinningTeamID *int64
	ResultSummary *string
}

type UpdateMatchResultInput struct {
	ID            int64
	WinningTeamID *int64
	ResultSummary *string
}

// RecordInningsInput is one side's innings total in the record workflow.
type RecordInningsInput struct {
	MatchTeamID int64
	Runs        int
	Wickets     int
	Overs       float64
}

// RecordMatchResultInput drives the transactional replacement for the old
// client-side trigger simulation: both innings and the derived result are
// persisted in one store transaction.
type RecordMatchResultInput struct {
	MatchID int64
	Innings []RecordInningsInput
}

// RecordedResult is the outcome of the record workflow.
type RecordedResult struct {
	Result result.MatchResult
	Scores []score.MatchScore
}

type MatchResultService struct {
	resultRepo result.Repository
	matchRepo  match.Repository
	teamRepo   team.Repository
}

func NewMatchResultService(resultRepo result.Repository, matchRepo match.Repository, teamRepo team.Repository) *MatchResultService {
	return &MatchResultService{
		resultRepo: resultRepo,
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
	}
}

func (s *MatchResultService) List(ctx context.Context, input ListMatchResultsInput) ([]result.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.List")
	defer span.End()

	items, err := s.resultRepo.List(ctx, result.Filter{
		Limit:         clampLimit(input.Limit, defaultListLimit),
		Offset:        clampOffset(input.Offset),
		MatchID:       input.MatchID,
		WinningTeamID: input.WinningTeamID,
	})
	if err != nil {
		return nil, fmt.Errorf("list match results: %w", err)
	}
	return items, nil
}

func (s *MatchResultService) GetByID(ctx context.Context, id int64) (result.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.GetByID")
	defer span.End()

	if id <= 0 {
		return result.MatchResult{}, Errorf(ErrInvalidInput, "INVALID_ID", "match result id must be a positive integer")
	}

	item, exists, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return result.MatchResult{}, fmt.Errorf("get match result: %w", err)
	}
	if !exists {
		return result.MatchResult{}, Errorf(ErrNotFound, "MATCH_RESULT_NOT_FOUND", "match result %d not found", id)
	}
	return item, nil
}

func (s *MatchResultService) Create(ctx context.Context, input CreateMatchResultInput) (result.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.Create")
	defer span.End()

	if input.MatchID <= 0 {
		return result.MatchResult{}, Errorf(ErrInvalidInput, "MISSING_MATCH_ID", "match id is required")
	}
	_, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return result.MatchResult{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return result.MatchResult{}, Errorf(ErrNotFound, "MATCH_NOT_FOUND", "match %d not found", input.MatchID)
	}
	if input.WinningTeamID != nil {
		if err := s.ensureTeamExists(ctx, *input.WinningTeamID); err != nil {
			return result.MatchResult{}, err
		}
	}

	created, err := s.resultRepo.Create(ctx, result.MatchResult{
		MatchID:       input.MatchID,
		WinningTeamID: input.WinningTeamID,
		ResultSummary: trimSummary(input.ResultSummary),
	})
	if err != nil {
		if errors.Is(err, result.ErrDuplicate) {
			return result.MatchResult{}, Errorf(ErrInvalidInput, "DUPLICATE_MATCH_ID", "result already exists for match %d", input.MatchID)
		}
		return result.MatchResult{}, fmt.Errorf("create match result: %w", err)
	}
	return created, nil
}

func (s *MatchResultService) Update(ctx context.Context, input UpdateMatchResultInput) (result.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.Update")
	defer span.End()

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return result.MatchResult{}, err
	}

	item := existing
	if input.WinningTeamID != nil {
		if err := s.ensureTeamExists(ctx, *input.WinningTeamID); err != nil {
			return result.MatchResult{}, err
		}
		item.WinningTeamID = input.WinningTeamID
	}
	if input.ResultSummary != nil {
		item.ResultSummary = trimSummary(input.ResultSummary)
	}
	if input.WinningTeamID == nil && input.ResultSummary == nil {
		return existing, nil
	}

	updated, exists, err := s.resultRepo.Update(ctx, item)
	if err != nil {
		return result.MatchResult{}, fmt.Errorf("update match result: %w", err)
	}
	if !exists {
		return result.MatchResult{}, Errorf(ErrNotFound, "MATCH_RESULT_NOT_FOUND", "match result %d not found", input.ID)
	}
	return updated, nil
}

func (s *MatchResultService) Delete(ctx context.Context, id int64) (result.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.Delete")
	defer span.End()

	if id <= 0 {
		return result.MatchResult{}, Errorf(ErrInvalidInput, "INVALID_ID", "match result id must be a positive integer")
	}

	deleted, exists, err := s.resultRepo.Delete(ctx, id)
	if err != nil {
		return result.MatchResult{}, fmt.Errorf("delete match result: %w", err)
	}
	if !exists {
		return result.MatchResult{}, Errorf(ErrNotFound, "MATCH_RESULT_NOT_FOUND", "match result %d not found", id)
	}
	return deleted, nil
}

// Record validates both innings against the match's two team entries,
// derives the winner and summary, and persists everything atomically.
func (s *MatchResultService) Record(ctx context.Context, input RecordMatchResultInput) (RecordedResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.Record")
	defer span.End()

	if input.MatchID <= 0 {
		return RecordedResult{}, Errorf(ErrInvalidInput, "MISSING_MATCH_ID", "match id is required")
	}
	_, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return RecordedResult{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return RecordedResult{}, Errorf(ErrNotFound, "MATCH_NOT_FOUND", "match %d not found", input.MatchID)
	}

	entries, err := s.matchRepo.ListEntries(ctx, match.EntryFilter{MatchID: input.MatchID})
	if err != nil {
		return RecordedResult{}, fmt.Errorf("list match teams: %w", err)
	}
	if len(entries) != 2 {
		return RecordedResult{}, Errorf(ErrInvalidInput, "MATCH_TEAMS_INCOMPLETE",
			"match %d has %d team entries, exactly 2 are required", input.MatchID, len(entries))
	}

	innings, err := matchInningsToEntries(input.Innings, entries)
	if err != nil {
		return RecordedResult{}, err
	}
	if err := s.resolveTeamNames(ctx, innings); err != nil {
		return RecordedResult{}, err
	}
	for _, inn := range innings {
		if err := validateScoreFields(inn.score); err != nil {
			return RecordedResult{}, err
		}
	}

	first, second := innings[0], innings[1]
	res := result.MatchResult{MatchID: input.MatchID}
	summary := ""
	switch {
	case first.score.Runs > second.score.Runs:
		winner := first
		res.WinningTeamID = &winner.entry.TeamID
		summary = recordedSummary(first, second, winner, first.score.Runs-second.score.Runs)
	case second.score.Runs > first.score.Runs:
		winner := second
		res.WinningTeamID = &winner.entry.TeamID
		summary = recordedSummary(first, second, winner, second.score.Runs-first.score.Runs)
	default:
		summary = fmt.Sprintf("%s %d/%d vs %s %d/%d - Match tied",
			first.teamName, first.score.Runs, first.score.Wickets,
			second.teamName, second.score.Runs, second.score.Wickets)
	}
	res.ResultSummary = &summary

	recorded, scores, err := s.resultRepo.Record(ctx, result.Recording{
		Result: res,
		Scores: []score.MatchScore{first.score, second.score},
	})
	if err != nil {
		if errors.Is(err, result.ErrDuplicate) {
			return RecordedResult{}, Errorf(ErrInvalidInput, "DUPLICATE_MATCH_ID", "result already exists for match %d", input.MatchID)
		}
		if errors.Is(err, score.ErrDuplicateMatchTeam) {
			return RecordedResult{}, Errorf(ErrInvalidInput, "DUPLICATE_MATCH_TEAM", "a score already exists for one of the match teams")
		}
		return RecordedResult{}, fmt.Errorf("record match result: %w", err)
	}

	return RecordedResult{Result: recorded, Scores: scores}, nil
}

type recordedInnings struct {
	entry    match.TeamEntry
	teamName string
	score    score.MatchScore
}

func (s *MatchResultService) ensureTeamExists(ctx context.Context, teamID int64) error {
	if teamID <= 0 {
		return Errorf(ErrInvalidInput, "INVALID_WINNING_TEAM_ID", "winning team id must be a positive integer")
	}
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return Errorf(ErrNotFound, "TEAM_NOT_FOUND", "team %d not found", teamID)
	}
	return nil
}

// matchInningsToEntries pairs each submitted innings with its match-team
// entry, requiring exactly one innings per entry.
func matchInningsToEntries(innings []RecordInningsInput, entries []match.TeamEntry) ([]recordedInnings, error) {
	if len(innings) != len(entries) {
		return nil, Errorf(ErrInvalidInput, "MATCH_TEAMS_INCOMPLETE",
			"expected %d innings, got %d", len(entries), len(innings))
	}

	byEntry := make(map[int64]match.TeamEntry, len(entries))
	for _, e := range entries {
		byEntry[e.ID] = e
	}

	out := make([]recordedInnings, 0, len(innings))
	seen := make(map[int64]struct{}, len(innings))
	for _, inn := range innings {
		entry, ok := byEntry[inn.MatchTeamID]
		if !ok {
			return nil, Errorf(ErrInvalidInput, "INVALID_MATCH_TEAM_ID",
				"match team %d does not belong to this match", inn.MatchTeamID)
		}
		if _, dup := seen[inn.MatchTeamID]; dup {
			return nil, Errorf(ErrInvalidInput, "DUPLICATE_MATCH_TEAM",
				"match team %d appears more than once", inn.MatchTeamID)
		}
		seen[inn.MatchTeamID] = struct{}{}
		out = append(out, recordedInnings{
			entry: entry,
			score: score.MatchScore{
				MatchTeamID: inn.MatchTeamID,
				Runs:        inn.Runs,
				Wickets:     inn.Wickets,
				Overs:       inn.Overs,
			},
		})
	}
	return out, nil
}

func (s *MatchResultService) resolveTeamNames(ctx context.Context, innings []recordedInnings) error {
	for i := range innings {
		t, exists, err := s.teamRepo.GetByID(ctx, innings[i].entry.TeamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return Errorf(ErrNotFound, "TEAM_NOT_FOUND", "team %d not found", innings[i].entry.TeamID)
		}
		innings[i].teamName = t.Name
	}
	return nil
}

func recordedSummary(first, second, winner recordedInnings, margin int) string {
	return fmt.Sprintf("%s %d/%d vs %s %d/%d - %s won by %d runs",
		first.teamName, first.score.Runs, first.score.Wickets,
		second.teamName, second.score.Runs, second.score.Wickets,
		winner.teamName, margin)
}

func trimSummary(summary *string) *string {
	if summary == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*summary)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
