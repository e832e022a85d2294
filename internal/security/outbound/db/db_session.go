package db

import (
	"context"

	"github.com/RaveKev/security-jwt-service/internal/pkg/goerror"
	"github.com/RaveKev/security-jwt-service/internal/security/entity"
	"github.com/jackc/pgx/v5"
)

const queryCreateRefreshSession = `
INSERT INTO security_refresh_sessions (id, user_id, token_hash, expires_at)
VALUES ($1, $2, $3, $4)`

func (s *DB) CreateRefreshSession(ctx context.Context, in entity.RefreshSession) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRefreshSession")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateRefreshSession, in.ID, in.UserID, in.TokenHash, in.ExpiresAt)
	err = s.mapError(err)
	return err
}

const queryRevokeRefreshSessionByID = `
UPDATE security_refresh_sessions
SET revoked = TRUE
WHERE id = $1 AND revoked = FALSE`

// RotateRefreshSession revokes the old session and inserts the new one in a
// single transaction. It returns goerror.ErrNotFound when the old session was
// already rotated by a concurrent request.
func (s *DB) RotateRefreshSession(ctx context.Context, oldID int64, in entity.RefreshSession) (err error) {
	ctx, span := s.startSpan(ctx, "RotateRefreshSession")
	defer func() { s.endSpan(span, err) }()

	err = pgx.BeginFunc(ctx, s.conn, func(tx pgx.Tx) error {
		tag, errTx := tx.Exec(ctx, queryRevokeRefreshSessionByID, oldID)
		if errTx != nil {
			return errTx
		}
		if tag.RowsAffected() == 0 {
			return goerror.ErrNotFound
		}

		_, errTx = tx.Exec(ctx, queryCreateRefreshSession, in.ID, in.UserID, in.TokenHash, in.ExpiresAt)
		return errTx
	})
	err = s.mapError(err)
	return err
}

const queryRevokeRefreshSessionByTokenHash = `
UPDATE security_refresh_sessions
SET revoked = TRUE
WHERE token_hash = $1 AND revoked = FALSE`

func (s *DB) RevokeRefreshSession(ctx context.Context, tokenHash string) (err error) {
	ctx, span := s.startSpan(ctx, "RevokeRefreshSession")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryRevokeRefreshSessionByTokenHash, tokenHash)
	err = s.mapError(err)
	return err
}

const queryRevokeAllRefreshSessions = `
UPDATE security_refresh_sessions
SET revoked = TRUE
WHERE user_id = $1 AND revoked = FALSE`

func (s *DB) RevokeAllRefreshSessions(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "RevokeAllRefreshSessions")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryRevokeAllRefreshSessions, userID)
	err = s.mapError(err)
	return err
}
