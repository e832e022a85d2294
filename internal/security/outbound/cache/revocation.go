// Package cache stores token revocations in Redis. Entries live exactly as
// long as the token they revoke, so the store stays small on its own.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/RaveKev/security-jwt-service/internal/pkg/instrument"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const revocationKeyPrefix = "security:revoked:"

type Revocation struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewRevocation(client *redis.Client, ins instrument.Instrumentation) *Revocation {
	return &Revocation{
		client: client,
		ins:    ins,
	}
}

func (s *Revocation) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("security.outbound.cache").Start(ctx, name)
}

func (s *Revocation) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// RevokeToken marks a token id as revoked for ttl.
func (s *Revocation) RevokeToken(ctx context.Context, jti string, ttl time.Duration) (err error) {
	ctx, span := s.startSpan(ctx, "RevokeToken")
	defer func() { s.endSpan(span, err) }()

	err = s.client.Set(ctx, revocationKeyPrefix+jti, 1, ttl).Err()
	return err
}

// IsTokenRevoked reports whether a token id is in the revocation store.
func (s *Revocation) IsTokenRevoked(ctx context.Context, jti string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "IsTokenRevoked")
	defer func() { s.endSpan(span, err) }()

	err = s.client.Get(ctx, revocationKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		err = nil
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
