package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", 7)

	tok, err := svc.Issue(42, "ann@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatalf("Issue returned empty token")
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "ann@x.com" {
		t.Fatalf("Email mismatch: got %q want %q", claims.Email, "ann@x.com")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := &TokenService{secret: []byte("secret"), ttl: -time.Minute}

	tok, err := svc.Issue(1, "u@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := svc.Verify(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret", 7).Issue(2, "u2@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewTokenService("wrong-secret", 7).Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", 7)
	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := svc.Verify(tok); err == nil {
			t.Fatalf("expected error for malformed token %q, got nil", tok)
		}
	}
}
