package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
	"github.com/RaveKev/security-jwt-service/internal/security/entity"
)

type RefreshInput struct {
	RefreshToken string `validate:"required"`
}

type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

func (s *Usecase) Refresh(ctx context.Context, in RefreshInput) (*RefreshOutput, error) {
	ctx, span := s.startSpan(ctx, "Refresh")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	secret := s.cfg.GetBinary("jwt.secret")
	if !s.codec.IsValid(in.RefreshToken, secret) {
		slog.WarnContext(ctx, "refresh token is invalid or expired")
		return nil, goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
	}

	claims, err := s.codec.Verify(in.RefreshToken, secret)
	if err != nil {
		slog.WarnContext(ctx, "refresh token cannot be decoded", "error", err)
		return nil, goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
	}

	jti := claims.GetString(token.ClaimID)
	if jti == "" {
		slog.WarnContext(ctx, "refresh token has no identifier claim")
		return nil, goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
	}

	revoked, err := s.repoCache.IsTokenRevoked(ctx, jti)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check token revocation", "error", err)
		return nil, goerror.NewServer(err)
	}
	if revoked {
		slog.WarnContext(ctx, "refresh token is revoked")
		return nil, goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
	}

	jtiHash, err := s.hmac.Hash(jti)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash refresh token id", "error", err)
		return nil, goerror.NewServer(err)
	}

	session, err := s.repoDB.GetRefreshSessionByTokenHash(ctx, string(jtiHash))
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "refresh session not found")
		return nil, goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get refresh session", "error", err)
		return nil, goerror.NewServer(err)
	}

	// A revoked session presented again means the token leaked after
	// rotation. Drop every session this user holds.
	if session.Revoked {
		if err := s.repoDB.RevokeAllRefreshSessions(ctx, session.UserID); err != nil {
			slog.ErrorContext(ctx, "failed to repo revoke all refresh sessions", "user_id", session.UserID, "error", err)
		}

		slog.WarnContext(ctx, "refresh token reuse detected", "user_id", session.UserID)
		return nil, goerror.NewBusiness("token reuse detected, please log in again", goerror.CodeForbidden)
	}

	if s.clock.Now().After(session.ExpiresAt) {
		slog.WarnContext(ctx, "refresh session is expired")
		return nil, goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
	}

	username := claims.GetString(s.cfg.GetString("jwt.username_claim"))
	user, err := s.repoDB.GetUserByUsername(ctx, username)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user for refresh session not found", "username", username)
		return nil, goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	access, refresh, newJTI, err := s.mintPair(ctx, user)
	if err != nil {
		return nil, err
	}

	newJTIHash, err := s.hmac.Hash(newJTI)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new refresh token id", "error", err)
		return nil, goerror.NewServer(err)
	}

	err = s.repoDB.RotateRefreshSession(ctx, session.ID, entity.RefreshSession{
		ID:        s.uid.Generate(),
		UserID:    user.ID,
		TokenHash: string(newJTIHash),
		ExpiresAt: s.clock.Now().Add(s.cfg.GetHour("modules.security.refresh_token_ttl_hours")),
	})
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "refresh session already rotated or revoked", "session_id", session.ID)
		return nil, goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo rotate refresh session", "error", err)
		return nil, goerror.NewServer(err)
	}

	// The rotated-out token stays dead even if the database row is purged.
	if exp, ok := claims.GetTime(token.ClaimExpiresAt); ok {
		if ttl := exp.Sub(s.clock.Now()); ttl > 0 {
			if err := s.repoCache.RevokeToken(ctx, jti, ttl); err != nil {
				slog.ErrorContext(ctx, "failed to revoke rotated refresh token", "error", err)
			}
		}
	}

	return &RefreshOutput{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
