package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wicketline/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func newAwardService(db *memory.DB) *usecase.AwardService {
	return usecase.NewAwardService(memory.NewAwardRepository(db), memory.NewPlayerRepository(db))
}

func TestAwardServiceCreateInvalidCategory(t *testing.T) {
	db := memory.NewDB()
	svc := newAwardService(db)

	_, err := svc.Create(context.Background(), usecase.CreateAwardInput{Name: "Golden Bat", Category: "Batting"})
	if code := usecase.CodeOf(err); code != "INVALID_AWARD_CATEGORY" {
		t.Fatalf("expected INVALID_AWARD_CATEGORY, got %q (err=%v)", code, err)
	}
}

func TestAwardServiceCreateDuplicateName(t *testing.T) {
	db := memory.NewDB()
	svc := newAwardService(db)
	ctx := context.Background()

	if _, err := svc.Create(ctx, usecase.CreateAwardInput{Name: "Golden Bat", Category: "Performance"}); err != nil {
		t.Fatalf("create award: %v", err)
	}

	_, err := svc.Create(ctx, usecase.CreateAwardInput{Name: "Golden Bat", Category: "Season"})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if code := usecase.CodeOf(err); code != "DUPLICATE_AWARD_NAME" {
		t.Fatalf("expected DUPLICATE_AWARD_NAME, got %q (err=%v)", code, err)
	}
}

func TestAwardServiceUpdateDuplicateName(t *testing.T) {
	db := memory.NewDB()
	svc := newAwardService(db)
	ctx := context.Background()

	if _, err := svc.Create(ctx, usecase.CreateAwardInput{Name: "Golden Bat", Category: "Performance"}); err != nil {
		t.Fatalf("create first award: %v", err)
	}
	second, err := svc.Create(ctx, usecase.CreateAwardInput{Name: "Season MVP", Category: "Season"})
	if err != nil {
		t.Fatalf("create second award: %v", err)
	}

	name := "Golden Bat"
	_, err = svc.Update(ctx, usecase.UpdateAwardInput{ID: second.ID, Name: &name})
	if code := usecase.CodeOf(err); code != "DUPLICATE_AWARD_NAME" {
		t.Fatalf("expected DUPLICATE_AWARD_NAME, got %q (err=%v)", code, err)
	}

	// Renaming an award to its own current name stays allowed.
	own := "Season MVP"
	if _, err := svc.Update(ctx, usecase.UpdateAwardInput{ID: second.ID, Name: &own}); err != nil {
		t.Fatalf("update award with own name: %v", err)
	}
}

func TestAwardServiceGrantPlayerAward(t *testing.T) {
	db := memory.SeedDB()
	svc := newAwardService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, usecase.CreateAwardInput{Name: "Player of the Match", Category: "Performance"})
	if err != nil {
		t.Fatalf("create award: %v", err)
	}

	granted, err := svc.GrantPlayerAward(ctx, usecase.CreatePlayerAwardInput{
		PlayerID: 1,
		AwardID:  a.ID,
		Year:     2024,
	})
	if err != nil {
		t.Fatalf("grant player award: %v", err)
	}
	if granted.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestAwardServiceGrantYearBounds(t *testing.T) {
	db := memory.SeedDB()
	svc := newAwardService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, usecase.CreateAwardInput{Name: "Season MVP", Category: "Season"})
	if err != nil {
		t.Fatalf("create award: %v", err)
	}

	for _, year := range []int{1899, time.Now().Year() + 2} {
		_, err := svc.GrantPlayerAward(ctx, usecase.CreatePlayerAwardInput{PlayerID: 1, AwardID: a.ID, Year: year})
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Fatalf("year %d: expected invalid input, got %v", year, err)
		}
		if code := usecase.CodeOf(err); code != "INVALID_YEAR" {
			t.Fatalf("year %d: expected INVALID_YEAR, got %q", year, code)
		}
	}

	// Next calendar year is the inclusive upper bound.
	if _, err := svc.GrantPlayerAward(ctx, usecase.CreatePlayerAwardInput{PlayerID: 1, AwardID: a.ID, Year: time.Now().Year() + 1}); err != nil {
		t.Fatalf("grant award for next year: %v", err)
	}
}

func TestAwardServiceDeleteBlockedByGrants(t *testing.T) {
	db := memory.SeedDB()
	svc := newAwardService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, usecase.CreateAwardInput{Name: "Best Bowler", Category: "Performance"})
	if err != nil {
		t.Fatalf("create award: %v", err)
	}
	if _, err := svc.GrantPlayerAward(ctx, usecase.CreatePlayerAwardInput{PlayerID: 2, AwardID: a.ID, Year: 2024}); err != nil {
		t.Fatalf("grant player award: %v", err)
	}

	_, err = svc.Delete(ctx, a.ID)
	if !errors.Is(err, usecase.ErrReferenced) {
		t.Fatalf("expected referenced error, got %v", err)
	}
}
