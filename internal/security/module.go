// Package security issues, verifies, and revokes signed authentication
// tokens, and exposes the HTTP surface for login, refresh, logout, and token
// introspection.
package security

import (
	"github.com/RaveKev/security-jwt-service/internal/pkg/clock"
	"github.com/RaveKev/security-jwt-service/internal/pkg/config"
	"github.com/RaveKev/security-jwt-service/internal/pkg/hash"
	"github.com/RaveKev/security-jwt-service/internal/pkg/instrument"
	"github.com/RaveKev/security-jwt-service/internal/pkg/router"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
	"github.com/RaveKev/security-jwt-service/internal/pkg/uid"
	"github.com/RaveKev/security-jwt-service/internal/pkg/validator"
	"github.com/RaveKev/security-jwt-service/internal/security/inbound"
	"github.com/RaveKev/security-jwt-service/internal/security/outbound/cache"
	"github.com/RaveKev/security-jwt-service/internal/security/outbound/db"
	"github.com/RaveKev/security-jwt-service/internal/security/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Codec      *token.Codec               `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoCache := cache.NewRevocation(dep.CacheConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repoDB,
		RepoCache:  repoCache,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		HMAC:       dep.HMAC,
		UID:        dep.UID,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Codec:      dep.Codec,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
