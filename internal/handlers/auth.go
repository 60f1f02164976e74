package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type tokenRequest struct {
	AccessKey string `json:"access_key"`
}

// Token exchanges the configured access key for a bearer token. Auth is
// disabled entirely when no JWT secret is configured.
func (a *API) Token(w http.ResponseWriter, r *http.Request) {
	if a.Auth == nil || a.AccessKeyHash == "" {
		writeError(w, http.StatusNotFound, "authentication is not enabled")
		return
	}

	var req tokenRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.AccessKey == "" {
		writeError(w, http.StatusBadRequest, "access_key is required")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.AccessKeyHash), []byte(req.AccessKey)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid access key")
		return
	}

	token, err := a.Auth.GenerateToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
