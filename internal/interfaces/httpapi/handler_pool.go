package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/survivor-pool/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayers")
	defer span.End()

	players, err := h.eligibilityService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSubmissionWindow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetSubmissionWindow")
	defer span.End()

	window, err := h.scheduleService.SubmissionWindow(ctx, h.clock.Now())
	if err != nil {
		h.logger.WarnContext(ctx, "get submission window failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submissionWindowDTO{
		Week:      window.Week,
		KickoffAt: window.Kickoff.UTC(),
		Open:      window.Open,
	})
}

func (h *Handler) GetEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetEligibility")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	week, err := optionalWeekParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err = h.resolveWeek(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve week failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.eligibilityService.Eligibility(ctx, playerID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get eligibility failed", "player_id", playerID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eligibilityToDTO(item))
}

func (h *Handler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SubmitPick")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req submitPickRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	week, err := h.resolveWeek(ctx, req.Week)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve week failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	result, err := h.submissionService.Submit(ctx, usecase.SubmitPickInput{
		PlayerID: playerID,
		Week:     week,
		Team:     req.Team,
		Now:      h.clock.Now(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit pick failed", "player_id", playerID, "week", week, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusCreated
	if result.Updated {
		status = http.StatusOK
	}
	writeSuccess(ctx, w, status, submitPickResponseDTO{
		Pick:    pickToDTO(result.Pick),
		Updated: result.Updated,
	})
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetStandings")
	defer span.End()

	week, err := optionalWeekParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var reveal usecase.Reveal
	if week > 0 {
		reveal, err = h.standingsService.RevealWeek(ctx, week, h.clock.Now())
	} else {
		reveal, err = h.standingsService.Reveal(ctx, h.clock.Now())
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "get standings failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, revealToDTO(reveal))
}

func (h *Handler) GetPoolOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPoolOverview")
	defer span.End()

	week, err := optionalWeekParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err = h.resolveWeek(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve week failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	statuses, err := h.eligibilityService.Overview(ctx, week)
	if err != nil {
		h.logger.ErrorContext(ctx, "get pool overview failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerStatusDTO, 0, len(statuses))
	for _, item := range statuses {
		items = append(items, playerStatusToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
