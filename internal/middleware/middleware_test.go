package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scamcheck/backend/internal/auth"
)

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	key := "client"
	if !limiter.Allow(key) {
		t.Fatalf("expected allow on first")
	}
	if !limiter.Allow(key) {
		t.Fatalf("expected allow on second")
	}
	if limiter.Allow(key) {
		t.Fatalf("expected block on third")
	}
}

func TestAuthenticate(t *testing.T) {
	service, err := auth.NewService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("service init: %v", err)
	}
	token, err := service.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := Authenticate(req, service); err == nil {
		t.Fatalf("expected error without header")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if err := Authenticate(req, service); err != nil {
		t.Fatalf("unexpected auth error: %v", err)
	}

	req.Header.Set("Authorization", "Bearer bogus")
	if err := Authenticate(req, service); err == nil {
		t.Fatalf("expected error for bad token")
	}
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if key := ClientKey(req); key != "10.0.0.1" {
		t.Fatalf("unexpected key: %s", key)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	if key := ClientKey(req); key != "203.0.113.5" {
		t.Fatalf("unexpected forwarded key: %s", key)
	}
}
