package app

import "stayhub/internal/domain"

// Actor is the authenticated identity attached to a request.
type Actor struct {
	ID   string
	Role domain.Role
}

func (a Actor) IsAdmin() bool { return a.Role == domain.RoleAdmin }

// Authorize decides whether actor may act on a resource owned by ownerID:
// admins always may, everyone else only on their own resources. Callers
// must resolve the resource first so a missing resource surfaces as
// ErrNotFound, never as a denial.
func Authorize(actor Actor, ownerID string) error {
	if actor.IsAdmin() || actor.ID == ownerID {
		return nil
	}
	return domain.ErrForbidden
}
