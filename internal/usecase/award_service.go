package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wicketline/cricket-stats/internal/domain/award"
	"github.com/wicketline/cricket-stats/internal/domain/player"
)

type ListAwardsInput struct {
	Limit    int
	Offset   int
	Search   string
	Category string
}

type CreateAwardInput struct {
	Name     string
	Category string
}

type UpdateAwardInput struct {
	ID       int64
	Name     *string
	Category *string
}

type ListPlayerAwardsInput struct {
	Limit    int
	Offset   int
	PlayerID int64
	AwardID  int64
	Year     int
}

type CreatePlayerAwardInput struct {
	PlayerID int64
	AwardID  int64
	Year     int
}

type UpdatePlayerAwardInput struct {
	ID       int64
	PlayerID *int64
	AwardID  *int64
	Year     *int
}

type AwardService struct {
	awardRepo  award.Repository
	playerRepo player.Repository
	now        func() time.Time
}

func NewAwardService(awardRepo award.Repository, playerRepo player.Repository) *AwardService {
	return &AwardService{
		awardRepo:  awardRepo,
		playerRepo: playerRepo,
		now:        time.Now,
	}
}

func (s *AwardService) List(ctx context.Context, input ListAwardsInput) ([]award.Award, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.List")
	defer span.End()

	category, err := parseAwardCategory(input.Category, false)
	if err != nil {
		return nil, err
	}

	items, err := s.awardRepo.List(ctx, award.Filter{
		Limit:    clampLimit(input.Limit, defaultListLimit),
		Offset:   clampOffset(input.Offset),
		Search:   strings.TrimSpace(input.Search),
		Category: category,
	})
	if err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}
	return items, nil
}

func (s *AwardService) GetByID(ctx context.Context, id int64) (award.Award, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.GetByID")
	defer span.End()

	if id <= 0 {
		return award.Award{}, Errorf(ErrInvalidInput, "INVALID_ID", "award id must be a positive integer")
	}

	item, exists, err := s.awardRepo.GetByID(ctx, id)
	if err != nil {
		return award.Award{}, fmt.Errorf("get award: %w", err)
	}
	if !exists {
		return award.Award{}, Errorf(ErrNotFound, "AWARD_NOT_FOUND", "award %d not found", id)
	}
	return item, nil
}

func (s *AwardService) Create(ctx context.Context, input CreateAwardInput) (award.Award, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.Create")
	defer span.End()

	item := award.Award{Name: strings.TrimSpace(input.Name)}
	if item.Name == "" {
		return award.Award{}, Errorf(ErrInvalidInput, "MISSING_AWARD_NAME", "award name is required")
	}
	category, err := parseAwardCategory(input.Category, true)
	if err != nil {
		return award.Award{}, err
	}
	item.Category = category

	created, err := s.awardRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, award.ErrNameTaken) {
			return award.Award{}, Errorf(ErrInvalidInput, "DUPLICATE_AWARD_NAME", "award name %q already exists", item.Name)
		}
		return award.Award{}, fmt.Errorf("create award: %w", err)
	}
	return created, nil
}

func (s *AwardService) Update(ctx context.Context, input UpdateAwardInput) (award.Award, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.Update")
	defer span.End()

	existing, err := s.GetByID(ctx, input.ID)
	if err != nil {
		return award.Award{}, err
	}

	item := existing
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
		if item.Name == "" {
			return award.Award{}, Errorf(ErrInvalidInput, "MISSING_AWARD_NAME", "award name is required")
		}
	}
	if input.Category != nil {
		category, err := parseAwardCategory(*input.Category, true)
		if err != nil {
			return award.Award{}, err
		}
		item.Category = category
	}
	if input.Name == nil && input.Category == nil {
		return existing, nil
	}

	updated, exists, err := s.awardRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, award.ErrNameTaken) {
			return award.Award{}, Errorf(ErrInvalidInput, "DUPLICATE_AWARD_NAME", "award name %q already exists", item.Name)
		}
		return award.Award{}, fmt.Errorf("update award: %w", err)
	}
	if !exists {
		return award.Award{}, Errorf(ErrNotFound, "AWARD_NOT_FOUND", "award %d not found", input.ID)
	}
	return updated, nil
}

func (s *AwardService) Delete(ctx context.Context, id int64) (award.Award, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.Delete")
	defer span.End()

	if id <= 0 {
		return award.Award{}, Errorf(ErrInvalidInput, "INVALID_ID", "award id must be a positive integer")
	}

	deleted, exists, err := s.awardRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, award.ErrInUse) {
			return award.Award{}, Errorf(ErrReferenced, "FOREIGN_KEY_CONSTRAINT", "award %d is referenced by player awards", id)
		}
		return award.Award{}, fmt.Errorf("delete award: %w", err)
	}
	if !exists {
		return award.Award{}, Errorf(ErrNotFound, "AWARD_NOT_FOUND", "award %d not found", id)
	}
	return deleted, nil
}

func (s *AwardService) ListPlayerAwards(ctx context.Context, input ListPlayerAwardsInput) ([]award.PlayerAward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.ListPlayerAwards")
	defer span.End()

	items, err := s.awardRepo.ListPlayerAwards(ctx, award.PlayerAwardFilter{
		Limit:    clampLimit(input.Limit, defaultListLimit),
		Offset:   clampOffset(input.Offset),
		PlayerID: input.PlayerID,
		AwardID:  input.AwardID,
		Year:     input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("list player awards: %w", err)
	}
	return items, nil
}

func (s *AwardService) GetPlayerAwardByID(ctx context.Context, id int64) (award.PlayerAward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.GetPlayerAwardByID")
	defer span.End()

	if id <= 0 {
		return award.PlayerAward{}, Errorf(ErrInvalidInput, "INVALID_ID", "player award id must be a positive integer")
	}

	item, exists, err := s.awardRepo.GetPlayerAwardByID(ctx, id)
	if err != nil {
		return award.PlayerAward{}, fmt.Errorf("get player award: %w", err)
	}
	if !exists {
		return award.PlayerAward{}, Errorf(ErrNotFound, "PLAYER_AWARD_NOT_FOUND", "player award %d not found", id)
	}
	return item, nil
}

func (s *AwardService) GrantPlayerAward(ctx context.Context, input CreatePlayerAwardInput) (award.PlayerAward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.GrantPlayerAward")
	defer span.End()

	item := award.PlayerAward{
		PlayerID: input.PlayerID,
		AwardID:  input.AwardID,
		Year:     input.Year,
	}
	if item.PlayerID <= 0 {
		return award.PlayerAward{}, Errorf(ErrInvalidInput, "MISSING_PLAYER_ID", "player id is required")
	}
	if item.AwardID <= 0 {
		return award.PlayerAward{}, Errorf(ErrInvalidInput, "MISSING_AWARD_ID", "award id is required")
	}
	if err := s.validateYear(item.Year); err != nil {
		return award.PlayerAward{}, err
	}

	_, exists, err := s.playerRepo.GetByID(ctx, item.PlayerID)
	if err != nil {
		return award.PlayerAward{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return award.PlayerAward{}, Errorf(ErrNotFound, "PLAYER_NOT_FOUND", "player %d not found", item.PlayerID)
	}
	if _, err := s.GetByID(ctx, item.AwardID); err != nil {
		return award.PlayerAward{}, err
	}

	created, err := s.awardRepo.CreatePlayerAward(ctx, item)
	if err != nil {
		return award.PlayerAward{}, fmt.Errorf("create player award: %w", err)
	}
	return created, nil
}

func (s *AwardService) UpdatePlayerAward(ctx context.Context, input UpdatePlayerAwardInput) (award.PlayerAward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.UpdatePlayerAward")
	defer span.End()

	existing, err := s.GetPlayerAwardByID(ctx, input.ID)
	if err != nil {
		return award.PlayerAward{}, err
	}

	item := existing
	if input.PlayerID != nil {
		item.PlayerID = *input.PlayerID
		_, exists, err := s.playerRepo.GetByID(ctx, item.PlayerID)
		if err != nil {
			return award.PlayerAward{}, fmt.Errorf("get player: %w", err)
		}
		if !exists {
			return award.PlayerAward{}, Errorf(ErrNotFound, "PLAYER_NOT_FOUND", "player %d not found", item.PlayerID)
		}
	}
	if input.AwardID != nil {
		item.AwardID = *input.AwardID
		if _, err := s.GetByID(ctx, item.AwardID); err != nil {
			return award.PlayerAward{}, err
		}
	}
	if input.Year != nil {
		if err := s.validateYear(*input.Year); err != nil {
			return award.PlayerAward{}, err
		}
		item.Year = *input.Year
	}
	if input.PlayerID == nil && input.AwardID == nil && input.Year == nil {
		return existing, nil
	}

	updated, exists, err := s.awardRepo.UpdatePlayerAward(ctx, item)
	if err != nil {
		return award.PlayerAward{}, fmt.Errorf("update player award: %w", err)
	}
	if !exists {
		return award.PlayerAward{}, Errorf(ErrNotFound, "PLAYER_AWARD_NOT_FOUND", "player award %d not found", input.ID)
	}
	return updated, nil
}

func (s *AwardService) RevokePlayerAward(ctx context.Context, id int64) (award.PlayerAward, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.RevokePlayerAward")
	defer span.End()

	if id <= 0 {
		return award.PlayerAward{}, Errorf(ErrInvalidInput, "INVALID_ID", "player award id must be a positive integer")
	}

	deleted, exists, err := s.awardRepo.DeletePlayerAward(ctx, id)
	if err != nil {
		return award.PlayerAward{}, fmt.Errorf("delete player award: %w", err)
	}
	if !exists {
		return award.PlayerAward{}, Errorf(ErrNotFound, "PLAYER_AWARD_NOT_FOUND", "player award %d not found", id)
	}
	return deleted, nil
}

// validateYear bounds the award year to [1900, next calendar year].
func (s *AwardService) validateYear(year int) error {
	maxYear := s.now().Year() + 1
	if year < award.MinYear || year > maxYear {
		return Errorf(ErrInvalidInput, "INVALID_YEAR", "year must be between %d and %d", award.MinYear, maxYear)
	}
	return nil
}

func parseAwardCategory(raw string, required bool) (award.Category, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return "", Errorf(ErrInvalidInput, "MISSING_AWARD_CATEGORY", "award category is required")
		}
		return "", nil
	}
	category := award.Category(raw)
	if _, ok := award.AllCategories[category]; !ok {
		return "", Errorf(ErrInvalidInput, "INVALID_AWARD_CATEGORY", "invalid award category %q", raw)
	}
	return category, nil
}
