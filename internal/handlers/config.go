package handlers

import (
	"net/http"
)

type configRequest struct {
	APIKey      *string  `json:"api_key"`
	Model       *string  `json:"model"`
	Temperature *float64 `json:"temperature"`
	Offline     *bool    `json:"offline"`
}

func (a *API) GetConfig(w http.ResponseWriter, r *http.Request) {
	checker := a.Service.Checker
	cfg := checker.Config()
	writeJSON(w, http.StatusOK, map[string]any{
		"provider":       cfg.ProviderName,
		"model":          cfg.ModelName,
		"temperature":    cfg.Temperature,
		"api_key":        cfg.APIKey,
		"offline":        checker.Offline(),
		"quota_exceeded": checker.Quota().Exceeded(),
	})
}

// UpdateConfig applies runtime configuration changes. Setting a new API key
// re-enables the remote path for this instance; the process-wide quota flag
// is only cleared through the explicit reset endpoint.
func (a *API) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	checker := a.Service.Checker
	if req.APIKey != nil {
		checker.SetAPIKey(*req.APIKey)
	}
	if req.Model != nil {
		checker.SetModel(*req.Model)
	}
	if req.Temperature != nil {
		checker.SetTemperature(*req.Temperature)
	}
	if req.Offline != nil {
		checker.SetOfflineMode(*req.Offline)
	}

	a.Log.Info().Bool("offline", checker.Offline()).Msg("classifier configuration updated")
	a.GetConfig(w, r)
}

func (a *API) ResetQuota(w http.ResponseWriter, r *http.Request) {
	a.Service.Checker.Quota().Reset()
	a.Log.Info().Msg("quota flag reset, remote checks re-enabled")
	writeJSON(w, http.StatusOK, map[string]any{"quota_exceeded": false})
}
