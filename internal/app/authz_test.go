package app_test

import (
	"errors"
	"testing"

	"stayhub/internal/app"
	"stayhub/internal/domain"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		actor   app.Actor
		ownerID string
		allowed bool
	}{
		{"admin on anyone's resource", app.Actor{ID: "a-1", Role: domain.RoleAdmin}, "u-2", true},
		{"admin on own resource", app.Actor{ID: "a-1", Role: domain.RoleAdmin}, "a-1", true},
		{"user on own resource", app.Actor{ID: "u-1", Role: domain.RoleUser}, "u-1", true},
		{"user on someone else's resource", app.Actor{ID: "u-1", Role: domain.RoleUser}, "u-2", false},
		{"user on unowned resource", app.Actor{ID: "u-1", Role: domain.RoleUser}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := app.Authorize(tc.actor, tc.ownerID)
			if tc.allowed && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.allowed && !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}
