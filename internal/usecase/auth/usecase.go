package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	authn "loan-engine/internal/auth"
	"loan-engine/internal/domain/user"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password,
// so a caller cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
}

type Usecase struct {
	users     user.Repository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUsecase(users user.Repository, jwtSecret string, tokenTTL time.Duration) *Usecase {
	if tokenTTL == 0 {
		tokenTTL = time.Hour
	}
	return &Usecase{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login checks the password against the stored bcrypt hash and issues a JWT
// carrying the user's role and owning customer.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	usr, err := u.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := authn.GenerateToken(usr, u.jwtSecret, u.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(u.tokenTTL),
		Role:      string(usr.Role),
	}, nil
}
