package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/wicketline/cricket-stats/internal/platform/logging"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

type Handler struct {
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	scoreService       *usecase.MatchScoreService
	performanceService *usecase.PerformanceService
	awardService       *usecase.AwardService
	resultService      *usecase.MatchResultService
	auditService       *usecase.AuditLogService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	scoreService *usecase.MatchScoreService,
	performanceService *usecase.PerformanceService,
	awardService *usecase.AwardService,
	resultService *usecase.MatchResultService,
	auditService *usecase.AuditLogService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:        teamService,
		playerService:      playerService,
		matchService:       matchService,
		scoreService:       scoreService,
		performanceService: performanceService,
		awardService:       awardService,
		resultService:      resultService,
		auditService:       auditService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest fills dst from the request body. An empty body is accepted
// and leaves dst zero-valued; update handlers rely on that for the
// empty-PUT-is-a-no-op contract.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// requiredID reads the ?id= query parameter that addresses a single record.
func requiredID(r *http.Request) (int64, error) {
	id, err := queryID(r, "id")
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, usecase.Errorf(usecase.ErrInvalidInput, "INVALID_ID", "id query parameter is required")
	}
	return id, nil
}

// queryID reads an optional positive-integer query parameter; absent means 0.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, usecase.Errorf(usecase.ErrInvalidInput, "INVALID_ID", "%s must be a positive integer", name)
	}
	return id, nil
}

// queryInt reads an optional numeric parameter leniently; garbage falls back
// to zero and the service-side defaults take over.
func queryInt(r *http.Request, name string) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
