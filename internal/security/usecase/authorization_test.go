package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/security/entity"
)

func TestUsecase_AuthorizationInfo(t *testing.T) {
	t.Run("ProjectsIdentity", func(t *testing.T) {
		env := newTestEnv(t)
		env.addUser(t, "alice", "open-sesame", entity.RoleNameAdmin)
		out := login(t, env, "alice", "open-sesame")

		res, err := env.uc.AuthorizationInfo(context.Background(), AuthorizationInfoInput{Token: out.AccessToken})
		if err != nil {
			t.Fatalf("AuthorizationInfo() error = %v", err)
		}

		if res.Username != "alice" {
			t.Fatalf("Username = %q, want alice", res.Username)
		}
		if len(res.Roles) != 1 || res.Roles[0] != "ADMIN" {
			t.Fatalf("Roles = %v, want [ADMIN]", res.Roles)
		}

		// Reserved and identity keys are stripped from the projection.
		for _, key := range []string{"iat", "exp", "jti", "username", "roles"} {
			if res.Claims.Has(key) {
				t.Fatalf("Claims should not contain %q", key)
			}
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.AuthorizationInfo(context.Background(), AuthorizationInfoInput{Token: "garbage"})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("AuthorizationInfo() error = %v, want unauthorized", err)
		}
	})

	t.Run("MissingToken", func(t *testing.T) {
		env := newTestEnv(t)

		if _, err := env.uc.AuthorizationInfo(context.Background(), AuthorizationInfoInput{}); err == nil {
			t.Fatal("AuthorizationInfo() should reject empty input")
		}
	})
}
