package usecase

import (
	"context"
	"testing"

	"github.com/RaveKev/security-jwt-service/internal/security/entity"
)

func TestUsecase_CheckToken(t *testing.T) {
	t.Run("ActiveToken", func(t *testing.T) {
		env := newTestEnv(t)
		env.addUser(t, "alice", "open-sesame", entity.RoleNameUser)
		out := login(t, env, "alice", "open-sesame")

		res, err := env.uc.CheckToken(context.Background(), CheckTokenInput{Token: out.AccessToken})
		if err != nil {
			t.Fatalf("CheckToken() error = %v", err)
		}
		if !res.Active {
			t.Fatal("freshly minted token should be active")
		}
	})

	t.Run("RevokedToken", func(t *testing.T) {
		env := newTestEnv(t)
		env.addUser(t, "alice", "open-sesame", entity.RoleNameUser)
		out := login(t, env, "alice", "open-sesame")
		ctx := authContext(t, env, out.AccessToken)

		if err := env.uc.Logout(ctx, LogoutInput{}); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}

		res, err := env.uc.CheckToken(context.Background(), CheckTokenInput{Token: out.AccessToken})
		if err != nil {
			t.Fatalf("CheckToken() error = %v", err)
		}
		if res.Active {
			t.Fatal("revoked token should not be active")
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		env := newTestEnv(t)

		res, err := env.uc.CheckToken(context.Background(), CheckTokenInput{Token: "garbage"})
		if err != nil {
			t.Fatalf("CheckToken() error = %v", err)
		}
		if res.Active {
			t.Fatal("garbage token should not be active")
		}
	})

	t.Run("MissingToken", func(t *testing.T) {
		env := newTestEnv(t)

		if _, err := env.uc.CheckToken(context.Background(), CheckTokenInput{}); err == nil {
			t.Fatal("CheckToken() should reject empty input")
		}
	})
}
