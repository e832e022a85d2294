package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/security/entity"
)

type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	username := strings.TrimSpace(in.Username)
	user, err := s.repoDB.GetUserByUsername(ctx, username)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "username", username)
		return nil, goerror.NewBusiness("invalid username or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("invalid username or password", goerror.CodeUnauthorized)
	}

	access, refresh, refreshJTI, err := s.mintPair(ctx, user)
	if err != nil {
		return nil, err
	}

	jtiHash, err := s.hmac.Hash(refreshJTI)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash refresh token id", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.CreateRefreshSession(ctx, entity.RefreshSession{
		ID:        s.uid.Generate(),
		UserID:    user.ID,
		TokenHash: string(jtiHash),
		ExpiresAt: s.clock.Now().Add(s.cfg.GetHour("modules.security.refresh_token_ttl_hours")),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create refresh session", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
