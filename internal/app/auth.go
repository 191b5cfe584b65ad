package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stayhub/internal/domain"
)

type AuthService struct {
	users      domain.UserStore
	tokens     domain.TokenIssuer
	bcryptCost int
}

func NewAuthService(u domain.UserStore, t domain.TokenIssuer, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: u, tokens: t, bcryptCost: bcryptCost}
}

type RegisterInput struct {
	Name     string
	Tel      string
	Email    string
	Password string
	Role     domain.Role
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return domain.User{}, domain.Invalid("role must be user or admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	u := domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Tel:          in.Tel,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Login verifies credentials and issues a signed token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", domain.User{}, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", domain.User{}, domain.ErrUnauthorized
	}
	tok, err := s.tokens.Issue(u)
	if err != nil {
		return "", domain.User{}, err
	}
	return tok, u, nil
}

func (s *AuthService) Me(ctx context.Context, actor Actor) (domain.User, error) {
	return s.users.GetUser(ctx, actor.ID)
}
