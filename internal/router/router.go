package router

import (
	"net/http"
	"strings"

	"scamcheck/backend/internal/handlers"
	"scamcheck/backend/internal/middleware"
	"scamcheck/backend/internal/realtime"
)

type Router struct {
	api     *handlers.API
	limiter *middleware.RateLimiter
	origin  string
	hub     *realtime.Hub
}

func New(api *handlers.API, limiter *middleware.RateLimiter, origin string, hub *realtime.Hub) *Router {
	return &Router{api: api, limiter: limiter, origin: origin, hub: hub}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if middleware.HandleCORS(w, r, rt.origin) {
		return
	}
	middleware.SecurityHeaders(w)

	path := strings.TrimSuffix(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}

	if rt.limiter != nil {
		if !rt.limiter.Allow(middleware.ClientKey(r)) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("{\"error\":\"rate limit exceeded\"}"))
			return
		}
	}

	if rt.requiresAuth(path) {
		if err := middleware.Authenticate(r, rt.api.Auth); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("{\"error\":\"unauthorized\"}"))
			return
		}
	}

	switch path {
	case "/api/v1/auth/token":
		if r.Method == http.MethodPost {
			rt.api.Token(w, r)
			return
		}
	case "/api/v1/check":
		if r.Method == http.MethodPost {
			rt.api.CheckMessage(w, r)
			return
		}
	case "/api/v1/history":
		switch r.Method {
		case http.MethodGet:
			rt.api.ListHistory(w, r)
			return
		case http.MethodDelete:
			rt.api.ClearHistory(w, r)
			return
		}
	case "/api/v1/config":
		switch r.Method {
		case http.MethodGet:
			rt.api.GetConfig(w, r)
			return
		case http.MethodPut:
			rt.api.UpdateConfig(w, r)
			return
		}
	case "/api/v1/quota/reset":
		if r.Method == http.MethodPost {
			rt.api.ResetQuota(w, r)
			return
		}
	case "/api/v1/health":
		if r.Method == http.MethodGet {
			rt.api.Health(w, r)
			return
		}
	case "/api/v1/usage":
		if r.Method == http.MethodGet {
			rt.api.Usage(w, r)
			return
		}
	case "/api/v1/ws":
		if r.Method == http.MethodGet && rt.hub != nil {
			realtime.ServeWS(w, r, rt.hub)
			return
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("{\"error\":\"not found\"}"))
}

// requiresAuth protects mutating and stateful routes once a JWT secret is
// configured. Health and token issuance stay public.
func (rt *Router) requiresAuth(path string) bool {
	if rt.api.Auth == nil {
		return false
	}
	switch path {
	case "/api/v1/auth/token", "/api/v1/health":
		return false
	}
	return strings.HasPrefix(path, "/api/")
}
