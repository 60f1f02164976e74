package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// maxMessageLength bounds request size; SMS-origin texts are short.
const maxMessageLength = 4000

type checkRequest struct {
	Message string `json:"message"`
}

// CheckMessage analyzes one message. Blank input is rejected here at the
// boundary; the classifier itself accepts any string.
func (a *API) CheckMessage(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if len(req.Message) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message too long")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 45*time.Second)
	defer cancel()

	record := a.Service.Check(ctx, req.Message)
	writeJSON(w, http.StatusOK, record)
}

func (a *API) ListHistory(w http.ResponseWriter, r *http.Request) {
	if a.Service.History == nil {
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": a.Service.History.List()})
}

func (a *API) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if a.Service.History != nil {
		a.Service.History.Clear()
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
