package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/security/entity"
)

func TestUsecase_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		env.addUser(t, "alice", "open-sesame", entity.RoleNameAdmin, entity.RoleNameUser)

		out, err := env.uc.Login(context.Background(), LoginInput{
			Username: "alice",
			Password: "open-sesame",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Fatal("Login() should return both tokens")
		}

		secret := env.cfg.GetBinary("jwt.secret")
		if !env.codec.IsValid(out.AccessToken, secret) {
			t.Fatal("access token should verify and be unexpired")
		}

		username, ok, err := env.codec.Username(out.AccessToken, secret, "username")
		if err != nil || !ok || username != "alice" {
			t.Fatalf("Username() = (%q, %v, %v), want alice", username, ok, err)
		}

		roles, err := env.codec.Roles(out.AccessToken, secret, "roles")
		if err != nil {
			t.Fatalf("Roles() error = %v", err)
		}
		if len(roles) != 2 {
			t.Fatalf("Roles() = %v, want 2 entries", roles)
		}

		if len(env.db.sessions) != 1 {
			t.Fatalf("expected one stored refresh session, got %d", len(env.db.sessions))
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		env := newTestEnv(t)
		env.addUser(t, "alice", "open-sesame")

		_, err := env.uc.Login(context.Background(), LoginInput{
			Username: "alice",
			Password: "wrong",
		})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("Login() error = %v, want unauthorized", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.Login(context.Background(), LoginInput{
			Username: "ghost",
			Password: "whatever",
		})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("Login() error = %v, want unauthorized", err)
		}
	})

	t.Run("BannedUser", func(t *testing.T) {
		env := newTestEnv(t)
		u := env.addUser(t, "alice", "open-sesame")
		u.Status = entity.UserStatusBanned

		_, err := env.uc.Login(context.Background(), LoginInput{
			Username: "alice",
			Password: "open-sesame",
		})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeForbidden {
			t.Fatalf("Login() error = %v, want forbidden", err)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.Login(context.Background(), LoginInput{})
		if err == nil {
			t.Fatal("Login() should reject empty input")
		}
	})
}
