package app

import (
	"context"
	"net/http"

	"github.com/RaveKev/security-jwt-service/internal/pkg/clock"
	"github.com/RaveKev/security-jwt-service/internal/pkg/config"
	"github.com/RaveKev/security-jwt-service/internal/pkg/hash"
	"github.com/RaveKev/security-jwt-service/internal/pkg/instrument"
	"github.com/RaveKev/security-jwt-service/internal/pkg/router"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
	"github.com/RaveKev/security-jwt-service/internal/pkg/uid"
	"github.com/RaveKev/security-jwt-service/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	codec     *token.Codec

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initCache()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
