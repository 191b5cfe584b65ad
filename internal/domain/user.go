package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Tel          string    `json:"tel,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSummary is the slice of a user embedded in review listings.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tel   string `json:"tel,omitempty"`
	Email string `json:"email"`
}

// TokenClaims is what a verified credential resolves to.
type TokenClaims struct {
	UserID string
	Role   Role
}

type TokenIssuer interface {
	Issue(u User) (string, error)
	Verify(raw string) (TokenClaims, error)
}
