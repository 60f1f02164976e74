package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"scamcheck/backend/internal/auth"
	"scamcheck/backend/internal/realtime"
	"scamcheck/backend/internal/scam"
)

type API struct {
	Service       *scam.Service
	Auth          *auth.Service
	Hub           *realtime.Hub
	Monitor       *scam.HealthMonitor
	AccessKeyHash string
	Log           zerolog.Logger
}

func NewAPI(service *scam.Service, authService *auth.Service, hub *realtime.Hub, monitor *scam.HealthMonitor, accessKeyHash string, log zerolog.Logger) *API {
	return &API{
		Service:       service,
		Auth:          authService,
		Hub:           hub,
		Monitor:       monitor,
		AccessKeyHash: accessKeyHash,
		Log:           log,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func readJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
