package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"electripro/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrSessionNotFound     = errors.New("session not found")
)

// Session is an issued sign-in session.
type Session struct {
	Token   string `json:"token"`
	OwnerID string `json:"owner_id"`
}

// IAuthUseCase is the sign-in stub. Any non-empty email/password pair yields
// a session; there is no password verification and no account storage. The
// owner id is derived from the email so the same user reaches the same
// estimates across sessions.

type IAuthUseCase interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (string, error)
}

type AuthUseCase struct {
	sessions interfaces.ISessionStore
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(sessions interfaces.ISessionStore) *AuthUseCase {
	return &AuthUseCase{sessions: sessions}
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return Session{}, ErrInvalidCredentials
	}

	s := Session{Token: uuid.NewString(), OwnerID: email}
	if err := u.sessions.Put(ctx, s.Token, s.OwnerID); err != nil {
		return Session{}, err
	}
	log.Printf("[auth][usecase] sign-in owner=%s", s.OwnerID)
	return s, nil
}

// SignOut revokes a session. Revoking an unknown token is a no-op.
func (u *AuthUseCase) SignOut(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidSessionToken
	}
	return u.sessions.Delete(ctx, token)
}

func (u *AuthUseCase) Resolve(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidSessionToken
	}

	ownerID, err := u.sessions.Get(ctx, token)
	if err != nil {
		return "", err
	}
	if ownerID == "" {
		return "", ErrSessionNotFound
	}
	return ownerID, nil
}
