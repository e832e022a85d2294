package usecase

import (
	"context"
	"log/slog"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
)

type AuthorizationInfoInput struct {
	Token string `validate:"required"`
}

type AuthorizationInfoOutput struct {
	Username string
	Roles    []string
	Claims   token.Claims
}

// AuthorizationInfo projects a token into the identity data a resource
// server needs: the username, the role set, and every additional claim
// except the reserved keys.
func (s *Usecase) AuthorizationInfo(ctx context.Context, in AuthorizationInfoInput) (*AuthorizationInfoOutput, error) {
	ctx, span := s.startSpan(ctx, "AuthorizationInfo")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	secret := s.cfg.GetBinary("jwt.secret")

	username, ok, err := s.codec.Username(in.Token, secret, s.cfg.GetString("jwt.username_claim"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to read username claim", "error", err)
		return nil, goerror.NewServer(err)
	}
	if !ok {
		return nil, goerror.NewBusiness("invalid or expired token", goerror.CodeUnauthorized)
	}

	roles, err := s.codec.Roles(in.Token, secret, s.cfg.GetString("jwt.roles_claim"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to read roles claim", "error", err)
		return nil, goerror.NewServer(err)
	}

	extra, err := s.codec.AllExcept(in.Token, secret,
		token.ClaimIssuedAt,
		token.ClaimExpiresAt,
		token.ClaimID,
		s.cfg.GetString("jwt.username_claim"),
		s.cfg.GetString("jwt.roles_claim"),
	)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read additional claims", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AuthorizationInfoOutput{
		Username: username,
		Roles:    roles,
		Claims:   extra,
	}, nil
}
