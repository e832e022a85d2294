package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/RaveKev/security-jwt-service/internal/pkg/clock"
	"github.com/RaveKev/security-jwt-service/internal/pkg/config"
	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/pkg/hash"
	"github.com/RaveKev/security-jwt-service/internal/pkg/instrument"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
	"github.com/RaveKev/security-jwt-service/internal/pkg/uid"
	"github.com/RaveKev/security-jwt-service/internal/pkg/validator"
	"github.com/RaveKev/security-jwt-service/internal/security/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetRefreshSessionByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshSession, error)

	CreateRefreshSession(ctx context.Context, in entity.RefreshSession) error
	RotateRefreshSession(ctx context.Context, oldID int64, in entity.RefreshSession) error
	RevokeRefreshSession(ctx context.Context, tokenHash string) error
	RevokeAllRefreshSessions(ctx context.Context, userID int64) error
}

type repoCache interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type Usecase struct {
	repoDB    repoDB
	repoCache repoCache
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	hmac      hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	clock     clock.Clocker
	codec     *token.Codec
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	RepoCache  repoCache
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	HMAC       hash.Hash
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Codec      *token.Codec
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoCache: dep.RepoCache,
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		hmac:      dep.HMAC,
		uid:       dep.UID,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		codec:     dep.Codec,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("security.usecase").Start(ctx, name)
}

func (s *Usecase) ensureUserStatusAllowed(ctx context.Context, userID int64, status entity.UserStatus) error {
	switch status.Ensure() {
	case entity.UserStatusUnknown:
		slog.WarnContext(ctx, "user account status is unrecognized", "user_id", userID)
		return goerror.NewBusiness("account status is unrecognized", goerror.CodeForbidden)

	case entity.UserStatusBanned:
		slog.WarnContext(ctx, "user account is banned", "user_id", userID)
		return goerror.NewBusiness("account is banned", goerror.CodeForbidden)

	case entity.UserStatusInactive:
		slog.WarnContext(ctx, "user account is inactive", "user_id", userID)
		return goerror.NewBusiness("account is inactive", goerror.CodeForbidden)

	default:
		return nil
	}
}

func (s *Usecase) signingAlgorithm() (token.Algorithm, error) {
	alg, err := token.ParseAlgorithm(s.cfg.GetString("jwt.algorithm"))
	if err != nil {
		return "", goerror.NewServer(err)
	}
	return alg, nil
}

// mintPair issues an access and refresh token for the user and returns the
// refresh token's jti so the caller can persist the session.
func (s *Usecase) mintPair(ctx context.Context, user *entity.User) (access, refresh, refreshJTI string, err error) {
	alg, err := s.signingAlgorithm()
	if err != nil {
		return "", "", "", err
	}
	secret := s.cfg.GetBinary("jwt.secret")

	access, err = s.codec.Mint(token.Claims{
		token.ClaimID:                         s.uuid.Generate(),
		s.cfg.GetString("jwt.username_claim"): user.Username,
		s.cfg.GetString("jwt.roles_claim"):    entity.RoleNames(user.Roles),
	}, alg, secret, s.cfg.GetMinute("modules.security.access_token_ttl_minutes"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to mint access token", "user_id", user.ID, "error", err)
		return "", "", "", goerror.NewServer(err)
	}

	refreshJTI = s.uuid.Generate()
	refresh, err = s.codec.Mint(token.Claims{
		token.ClaimID:                         refreshJTI,
		s.cfg.GetString("jwt.username_claim"): user.Username,
	}, alg, secret, s.cfg.GetHour("modules.security.refresh_token_ttl_hours"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to mint refresh token", "user_id", user.ID, "error", err)
		return "", "", "", goerror.NewServer(err)
	}

	return access, refresh, refreshJTI, nil
}
