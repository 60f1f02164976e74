package handlers

import (
	"context"
	"net/http"
	"time"
)

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	checker := a.Service.Checker
	payload := map[string]any{
		"status":         "ok",
		"offline":        checker.Offline(),
		"quota_exceeded": checker.Quota().Exceeded(),
	}
	if provider := checker.Provider(); provider != nil {
		payload["provider"] = provider.Name()
	}
	if a.Monitor != nil {
		if status := a.Monitor.Status(); status != nil {
			payload["provider_health"] = status
		}
	}
	if a.Hub != nil {
		payload["realtime_clients"] = a.Hub.ClientCount()
	}
	if a.Service.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if failures, err := a.Service.Store.RecentHealthFailures(ctx, time.Hour); err == nil {
			payload["recent_provider_failures"] = failures
		}
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) Usage(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{}

	if provider := a.Service.Checker.Provider(); provider != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if stats, err := provider.GetUsage(ctx); err == nil {
			payload["provider"] = stats
		}
	}

	if a.Service.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		summary, err := a.Service.Store.UsageSummary(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load usage summary")
			return
		}
		payload["checks"] = summary
	}

	writeJSON(w, http.StatusOK, payload)
}
