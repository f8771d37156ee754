package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func TestTeamServiceCreate(t *testing.T) {
	db := memory.NewDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	created, err := svc.Create(context.Background(), usecase.CreateTeamInput{Name: "  India ", Country: "India"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id, got zero")
	}
	if created.Name != "India" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp to be set")
	}
}

func TestTeamServiceCreateValidation(t *testing.T) {
	db := memory.NewDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	_, err := svc.Create(context.Background(), usecase.CreateTeamInput{Country: "India"})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "MISSING_NAME" {
		t.Fatalf("expected MISSING_NAME, got %q", code)
	}

	_, err = svc.Create(context.Background(), usecase.CreateTeamInput{Name: "India"})
	if code := usecase.CodeOf(err); code != "MISSING_COUNTRY" {
		t.Fatalf("expected MISSING_COUNTRY, got %q", code)
	}
}

func TestTeamServiceCreateDuplicateName(t *testing.T) {
	db := memory.NewDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	if _, err := svc.Create(context.Background(), usecase.CreateTeamInput{Name: "India", Country: "India"}); err != nil {
		t.Fatalf("create team: %v", err)
	}

	_, err := svc.Create(context.Background(), usecase.CreateTeamInput{Name: "India", Country: "India"})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "DUPLICATE_NAME" {
		t.Fatalf("expected DUPLICATE_NAME, got %q", code)
	}
}

func TestTeamServiceGetByIDNotFound(t *testing.T) {
	db := memory.NewDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "TEAM_NOT_FOUND" {
		t.Fatalf("expected TEAM_NOT_FOUND, got %q", code)
	}
}

func TestTeamServiceUpdateNoFieldsIsNoop(t *testing.T) {
	db := memory.NewDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	created, err := svc.Create(context.Background(), usecase.CreateTeamInput{Name: "England", Country: "England"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	updated, err := svc.Update(context.Background(), usecase.UpdateTeamInput{ID: created.ID})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if updated != created {
		t.Fatalf("expected unchanged row, got %+v", updated)
	}
}

func TestTeamServiceUpdateFields(t *testing.T) {
	db := memory.NewDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	created, err := svc.Create(context.Background(), usecase.CreateTeamInput{Name: "NZ", Country: "NZ"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	name := "New Zealand"
	updated, err := svc.Update(context.Background(), usecase.UpdateTeamInput{ID: created.ID, Name: &name})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if updated.Name != "New Zealand" || updated.Country != "NZ" {
		t.Fatalf("unexpected merged row: %+v", updated)
	}
}

func TestTeamServiceDeleteBlockedByPlayers(t *testing.T) {
	db := memory.SeedDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	_, err := svc.Delete(context.Background(), 1)
	if !errors.Is(err, usecase.ErrReferenced) {
		t.Fatalf("expected referenced error, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "FOREIGN_KEY_CONSTRAINT" {
		t.Fatalf("expected FOREIGN_KEY_CONSTRAINT, got %q", code)
	}
}

func TestTeamServiceListLimitClamp(t *testing.T) {
	db := memory.SeedDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	items, err := svc.List(context.Background(), usecase.ListTeamsInput{Limit: 2})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(items))
	}
}

func TestTeamServiceListSearchMatchesCountry(t *testing.T) {
	db := memory.SeedDB()
	svc := usecase.NewTeamService(memory.NewTeamRepository(db))

	items, err := svc.List(context.Background(), usecase.ListTeamsInput{Search: "zeal"})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(items) != 1 || items[0].Name != "New Zealand" {
		t.Fatalf("unexpected search result: %+v", items)
	}
}
