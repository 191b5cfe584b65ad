package token

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cristalhq/jwt/v4"

	"stayhub/internal/domain"
)

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWT issues and verifies HS256 bearer tokens carrying {sub, role, exp}.
type JWT struct {
	signer   *jwt.HSAlg
	verifier *jwt.HSAlg
	ttl      time.Duration
}

func New(secret []byte, ttl time.Duration) (*JWT, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, secret)
	if err != nil {
		return nil, fmt.Errorf("jwt signer: %w", err)
	}
	verifier, err := jwt.NewVerifierHS(jwt.HS256, secret)
	if err != nil {
		return nil, fmt.Errorf("jwt verifier: %w", err)
	}
	return &JWT{signer: signer, verifier: verifier, ttl: ttl}, nil
}

func (j *JWT) Issue(u domain.User) (string, error) {
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: string(u.Role),
	}
	tok, err := jwt.NewBuilder(j.signer).Build(&c)
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}
	return tok.String(), nil
}

func (j *JWT) Verify(raw string) (domain.TokenClaims, error) {
	tok, err := jwt.Parse([]byte(raw), j.verifier)
	if err != nil {
		return domain.TokenClaims{}, domain.ErrUnauthorized
	}
	var c claims
	if err := json.Unmarshal(tok.Claims(), &c); err != nil {
		return domain.TokenClaims{}, domain.ErrUnauthorized
	}
	if !c.IsValidAt(time.Now()) {
		return domain.TokenClaims{}, domain.ErrUnauthorized
	}
	role := domain.Role(c.Role)
	if c.Subject == "" || !role.Valid() {
		return domain.TokenClaims{}, domain.ErrUnauthorized
	}
	return domain.TokenClaims{UserID: c.Subject, Role: role}, nil
}
