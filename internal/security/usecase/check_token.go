package usecase

import (
	"context"
	"log/slog"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
)

type CheckTokenInput struct {
	Token string `validate:"required"`
}

type CheckTokenOutput struct {
	Active bool
}

// CheckToken answers whether a token is currently usable: signature intact,
// not expired, and not revoked. It never fails on a bad token, only on
// infrastructure errors.
func (s *Usecase) CheckToken(ctx context.Context, in CheckTokenInput) (*CheckTokenOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	secret := s.cfg.GetBinary("jwt.secret")
	if !s.codec.IsValid(in.Token, secret) {
		return &CheckTokenOutput{Active: false}, nil
	}

	claims, err := s.codec.Verify(in.Token, secret)
	if err != nil {
		return &CheckTokenOutput{Active: false}, nil
	}

	jti := claims.GetString(token.ClaimID)
	if jti == "" {
		return &CheckTokenOutput{Active: true}, nil
	}

	revoked, err := s.repoCache.IsTokenRevoked(ctx, jti)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check token revocation", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CheckTokenOutput{Active: !revoked}, nil
}
