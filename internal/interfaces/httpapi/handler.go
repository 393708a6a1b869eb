package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
	"github.com/riskibarqy/survivor-pool/internal/usecase"
)

type Handler struct {
	scheduleService    *usecase.ScheduleService
	eligibilityService *usecase.EligibilityService
	submissionService  *usecase.SubmissionService
	standingsService   *usecase.StandingsService
	clock              clockwork.Clock
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	scheduleService *usecase.ScheduleService,
	eligibilityService *usecase.EligibilityService,
	submissionService *usecase.SubmissionService,
	standingsService *usecase.StandingsService,
	clock clockwork.Clock,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Handler{
		scheduleService:    scheduleService,
		eligibilityService: eligibilityService,
		submissionService:  submissionService,
		standingsService:   standingsService,
		clock:              clock,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSONBody(r *http.Request, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// optionalWeekParam returns 0 when the query parameter is absent.
func optionalWeekParam(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("week"))
	if raw == "" {
		return 0, nil
	}

	week, err := strconv.Atoi(raw)
	if err != nil || week < 1 {
		return 0, fmt.Errorf("%w: week must be a positive integer, got %q", usecase.ErrInvalidInput, raw)
	}

	return week, nil
}

// resolveWeek falls back to the schedule's current week when none was given.
func (h *Handler) resolveWeek(ctx context.Context, week int) (int, error) {
	if week > 0 {
		return week, nil
	}

	return h.scheduleService.CurrentWeek(ctx)
}
