package usecase

import (
	"context"
	"log/slog"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
)

type LogoutInput struct {
	RefreshToken string
}

// Logout revokes the caller's access token and, when supplied, the refresh
// token with its stored session.
func (s *Usecase) Logout(ctx context.Context, in LogoutInput) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	id := token.GetAuth(ctx)
	if id == nil {
		return goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	if err := s.revokeByClaims(ctx, id.Claims); err != nil {
		return err
	}

	if in.RefreshToken == "" {
		return nil
	}

	secret := s.cfg.GetBinary("jwt.secret")
	claims, err := s.codec.Verify(in.RefreshToken, secret)
	if err != nil {
		// A garbled refresh token has nothing left to revoke.
		slog.WarnContext(ctx, "logout refresh token cannot be decoded", "error", err)
		return nil
	}

	if err := s.revokeByClaims(ctx, claims); err != nil {
		return err
	}

	jti := claims.GetString(token.ClaimID)
	if jti == "" {
		return nil
	}

	jtiHash, err := s.hmac.Hash(jti)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash refresh token id", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.RevokeRefreshSession(ctx, string(jtiHash)); err != nil {
		slog.ErrorContext(ctx, "failed to repo revoke refresh session", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) revokeByClaims(ctx context.Context, claims token.Claims) error {
	jti := claims.GetString(token.ClaimID)
	if jti == "" {
		return nil
	}

	exp, ok := claims.GetTime(token.ClaimExpiresAt)
	if !ok {
		return nil
	}

	ttl := exp.Sub(s.clock.Now())
	if ttl <= 0 {
		return nil
	}

	if err := s.repoCache.RevokeToken(ctx, jti, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to push token revocation", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
