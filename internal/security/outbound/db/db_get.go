package db

import (
	"context"

	"github.com/RaveKev/security-jwt-service/internal/security/entity"
)

const queryGetUserByUsername = `
SELECT u.id, u.username, u.password, u.status, u.updated_at
FROM security_users u
WHERE u.username = $1`

const queryGetUserRoles = `
SELECT r.id, r.name
FROM security_roles r
JOIN security_user_roles ur ON ur.role_id = r.id
WHERE ur.user_id = $1
ORDER BY r.name`

func (s *DB) GetUserByUsername(ctx context.Context, username string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByUsername")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	row := s.conn.QueryRow(ctx, queryGetUserByUsername, username)
	if err = row.Scan(&user.ID, &user.Username, &user.Password, &user.Status, &user.UpdatedAt); err != nil {
		return nil, s.mapError(err)
	}

	rows, err := s.conn.Query(ctx, queryGetUserRoles, user.ID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			role entity.Role
			name string
		)
		if err = rows.Scan(&role.ID, &name); err != nil {
			return nil, s.mapError(err)
		}
		role.Name = entity.RoleNameFromString(name)
		user.Roles = append(user.Roles, role)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

const queryGetRefreshSessionByTokenHash = `
SELECT id, user_id, token_hash, expires_at, revoked
FROM security_refresh_sessions
WHERE token_hash = $1`

func (s *DB) GetRefreshSessionByTokenHash(ctx context.Context, tokenHash string) (_ *entity.RefreshSession, err error) {
	ctx, span := s.startSpan(ctx, "GetRefreshSessionByTokenHash")
	defer func() { s.endSpan(span, err) }()

	var sess entity.RefreshSession
	row := s.conn.QueryRow(ctx, queryGetRefreshSessionByTokenHash, tokenHash)
	if err = row.Scan(&sess.ID, &sess.UserID, &sess.TokenHash, &sess.ExpiresAt, &sess.Revoked); err != nil {
		return nil, s.mapError(err)
	}

	return &sess, nil
}
