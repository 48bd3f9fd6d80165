package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "electripro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_SignIn(t *testing.T) {
	t.Run("empty credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		if _, err := uc.SignIn(context.Background(), "  ", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := uc.SignIn(context.Background(), "a@b.com", "   "); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Put(gomock.Any(), gomock.Any(), "a@b.com").Return(errors.New("store"))

		if _, err := uc.SignIn(context.Background(), "a@b.com", "secret"); err == nil || err.Error() != "store" {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("owner id derived from lowercased email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Put(gomock.Any(), gomock.Any(), "spark@electripro.app").Return(nil)

		s, err := uc.SignIn(context.Background(), " Spark@ElectriPro.app ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token == "" {
			t.Fatalf("expected issued token")
		}
		if s.OwnerID != "spark@electripro.app" {
			t.Fatalf("unexpected owner id %q", s.OwnerID)
		}
	})
}

func TestAuthUseCase_SignOut(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		if err := uc.SignOut(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionToken) {
			t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
		}
	})

	t.Run("delegates to store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Delete(gomock.Any(), "tok-1").Return(nil)

		if err := uc.SignOut(context.Background(), " tok-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_Resolve(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		if _, err := uc.Resolve(context.Background(), ""); !errors.Is(err, ErrInvalidSessionToken) {
			t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Get(gomock.Any(), "tok-1").Return("", nil)

		if _, err := uc.Resolve(context.Background(), "tok-1"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Get(gomock.Any(), "tok-1").Return("owner-1", nil)

		owner, err := uc.Resolve(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if owner != "owner-1" {
			t.Fatalf("unexpected owner %q", owner)
		}
	})
}
