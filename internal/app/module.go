package app

import (
	"log/slog"
	"os"

	"github.com/RaveKev/security-jwt-service/internal/security"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.security.enabled") {
		if err := security.New(security.Dependency{
			DBConn:     a.dbConn,
			CacheConn:  a.cacheConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			HMAC:       a.hmac,
			Bcrypt:     a.bcrypt,
			Clock:      a.clock,
			Validator:  a.validator,
			Codec:      a.codec,
		}); err != nil {
			slog.Error("failed to init module security", "error", err)
			os.Exit(1)
		}
	}
}
