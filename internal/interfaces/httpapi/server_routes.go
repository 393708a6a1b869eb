package httpapi

import (
	"net/http"

	"github.com/riskibarqy/survivor-pool/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !metricsEnabled {
		return
	}

	mux.Handle("GET /metrics", metrics.Handler())
}

func registerPoolRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/schedule/window", handler.GetSubmissionWindow)
	mux.HandleFunc("GET /v1/players/{playerID}/eligibility", handler.GetEligibility)
	mux.HandleFunc("PUT /v1/players/{playerID}/picks", handler.SubmitPick)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/pool/overview", handler.GetPoolOverview)
}
