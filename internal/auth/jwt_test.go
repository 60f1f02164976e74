package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	service, err := NewService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("service init: %v", err)
	}

	token, err := service.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if err := service.ParseToken(token); err != nil {
		t.Fatalf("parse token: %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	service, err := NewService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("service init: %v", err)
	}
	if err := service.ParseToken("not-a-token"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewService("secret-one", time.Hour)
	if err != nil {
		t.Fatalf("service init: %v", err)
	}
	verifier, err := NewService("secret-two", time.Hour)
	if err != nil {
		t.Fatalf("service init: %v", err)
	}

	token, err := issuer.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if err := verifier.ParseToken(token); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestEmptySecretRejected(t *testing.T) {
	if _, err := NewService("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
