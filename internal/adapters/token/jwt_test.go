package token_test

import (
	"errors"
	"testing"
	"time"

	"stayhub/internal/adapters/token"
	"stayhub/internal/domain"
)

func TestJWT_RoundTrip(t *testing.T) {
	j, err := token.New([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	raw, err := j.Issue(domain.User{ID: "u-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, err := j.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if c.UserID != "u-1" || c.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", c)
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	a, _ := token.New([]byte("secret-a"), time.Hour)
	b, _ := token.New([]byte("secret-b"), time.Hour)

	raw, err := a.Issue(domain.User{ID: "u-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := b.Verify(raw); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestJWT_Expired(t *testing.T) {
	j, _ := token.New([]byte("test-secret"), -time.Minute)

	raw, err := j.Issue(domain.User{ID: "u-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := j.Verify(raw); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestJWT_Garbage(t *testing.T) {
	j, _ := token.New([]byte("test-secret"), time.Hour)
	if _, err := j.Verify("not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
