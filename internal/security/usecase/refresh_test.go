package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
	"github.com/RaveKev/security-jwt-service/internal/security/entity"
)

func login(t *testing.T, env *testEnv, username, password string) *LoginOutput {
	t.Helper()

	out, err := env.uc.Login(context.Background(), LoginInput{Username: username, Password: password})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return out
}

func TestUsecase_Refresh(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		env.addUser(t, "alice", "open-sesame", entity.RoleNameUser)
		first := login(t, env, "alice", "open-sesame")

		out, err := env.uc.Refresh(context.Background(), RefreshInput{RefreshToken: first.RefreshToken})
		if err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}

		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Fatal("Refresh() should return a new token pair")
		}
		if out.RefreshToken == first.RefreshToken {
			t.Fatal("Refresh() should rotate the refresh token")
		}

		// The rotated-out token is revoked and cannot be replayed.
		secret := env.cfg.GetBinary("jwt.secret")
		claims, err := env.codec.Verify(first.RefreshToken, secret)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if !env.cache.revoked[claims.GetString(token.ClaimID)] {
			t.Fatal("old refresh token jti should be in the revocation store")
		}
	})

	t.Run("ReuseDetection", func(t *testing.T) {
		env := newTestEnv(t)
		env.addUser(t, "alice", "open-sesame", entity.RoleNameUser)
		first := login(t, env, "alice", "open-sesame")

		if _, err := env.uc.Refresh(context.Background(), RefreshInput{RefreshToken: first.RefreshToken}); err != nil {
			t.Fatalf("first Refresh() error = %v", err)
		}

		// Replaying a rotated token fails closed. The cache rejects it
		// before the session lookup even happens.
		_, err := env.uc.Refresh(context.Background(), RefreshInput{RefreshToken: first.RefreshToken})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("second Refresh() error = %v, want unauthorized", err)
		}
	})

	t.Run("SessionReuseRevokesAll", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.addUser(t, "alice", "open-sesame", entity.RoleNameUser)
		first := login(t, env, "alice", "open-sesame")

		if _, err := env.uc.Refresh(context.Background(), RefreshInput{RefreshToken: first.RefreshToken}); err != nil {
			t.Fatalf("first Refresh() error = %v", err)
		}

		// Simulate the revocation store losing the entry. The revoked
		// database session still trips reuse detection.
		secret := env.cfg.GetBinary("jwt.secret")
		claims, err := env.codec.Verify(first.RefreshToken, secret)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		delete(env.cache.revoked, claims.GetString(token.ClaimID))

		_, err = env.uc.Refresh(context.Background(), RefreshInput{RefreshToken: first.RefreshToken})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeForbidden {
			t.Fatalf("replay Refresh() error = %v, want forbidden", err)
		}
		if env.db.revokedAllUserID != user.ID {
			t.Fatal("reuse detection should revoke every session for the user")
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.Refresh(context.Background(), RefreshInput{RefreshToken: "not-a-token"})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("Refresh() error = %v, want unauthorized", err)
		}
	})

	t.Run("MissingToken", func(t *testing.T) {
		env := newTestEnv(t)

		if _, err := env.uc.Refresh(context.Background(), RefreshInput{}); err == nil {
			t.Fatal("Refresh() should reject empty input")
		}
	})
}
