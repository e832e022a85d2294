package usecase

import (
	"context"
	"testing"
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
)

const testConfigYAML = `
jwt:
  secret: MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=
  algorithm: HS256
  username_claim: username
  roles_claim: roles
modules:
  security:
    access_token_ttl_minutes: 15
    refresh_token_ttl_hours: 24
`

type stubDB struct {
	users    map[string]*entity.User
	sessions map[string]*entity.RefreshSession

	getUserErr error
	rotateErr  error

	revokedAllUserID int64
	revokedHashes    []string
}

func newStubDB() *stubDB {
	return &stubDB{
		users:    make(map[string]*entity.User),
		sessions: make(map[string]*entity.RefreshSession),
	}
}

func (s *stubDB) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	if s.getUserErr != nil {
		return nil, s.getUserErr
	}
	u, ok := s.users[username]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return u, nil
}

func (s *stubDB) GetRefreshSessionByTokenHash(_ context.Context, tokenHash string) (*entity.RefreshSession, error) {
	sess, ok := s.sessions[tokenHash]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return sess, nil
}

func (s *stubDB) CreateRefreshSession(_ context.Context, in entity.RefreshSession) error {
	s.sessions[in.TokenHash] = &in
	return nil
}

func (s *stubDB) RotateRefreshSession(_ context.Context, oldID int64, in entity.RefreshSession) error {
	if s.rotateErr != nil {
		return s.rotateErr
	}
	for _, sess := range s.sessions {
		if sess.ID == oldID {
			sess.Revoked = true
		}
	}
	s.sessions[in.TokenHash] = &in
	return nil
}

func (s *stubDB) RevokeRefreshSession(_ context.Context, tokenHash string) error {
	s.revokedHashes = append(s.revokedHashes, tokenHash)
	if sess, ok := s.sessions[tokenHash]; ok {
		sess.Revoked = true
	}
	return nil
}

func (s *stubDB) RevokeAllRefreshSessions(_ context.Context, userID int64) error {
	s.revokedAllUserID = userID
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			sess.Revoked = true
		}
	}
	return nil
}

type stubCache struct {
	revoked map[string]bool
	err     error
}

func newStubCache() *stubCache {
	return &stubCache{revoked: make(map[string]bool)}
}

func (s *stubCache) RevokeToken(_ context.Context, jti string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[jti] = true
	return nil
}

func (s *stubCache) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[jti], nil
}

type testEnv struct {
	uc    *Usecase
	db    *stubDB
	cache *stubCache
	cfg   config.Config
	codec *token.Codec
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	snow, err := uid.NewSnowflake()
	if err != nil {
		t.Fatalf("failed to build snowflake: %v", err)
	}

	db := newStubDB()
	cache := newStubCache()
	codec := token.NewCodec(clock.New())

	uc := New(Dependency{
		RepoDB:     db,
		RepoCache:  cache,
		Validator:  v10,
		Config:     cfg,
		Bcrypt:     hash.NewBcrypt(4, ""),
		HMAC:       hash.NewHMACSHA256("test-hmac-secret"),
		UID:        snow,
		UUID:       uid.NewUUID(),
		Clock:      clock.New(),
		Codec:      codec,
		Instrument: instrument.NewNoop(),
	})

	return &testEnv{uc: uc, db: db, cache: cache, cfg: cfg, codec: codec}
}

func (e *testEnv) addUser(t *testing.T, username, password string, roles ...entity.RoleName) *entity.User {
	t.Helper()

	hashed, err := hash.NewBcrypt(4, "").Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	rs := make([]entity.Role, 0, len(roles))
	for i, name := range roles {
		rs = append(rs, entity.Role{ID: int64(i + 1), Name: name})
	}

	u := &entity.User{
		ID:       int64(len(e.db.users) + 1),
		Username: username,
		Password: string(hashed),
		Status:   entity.UserStatusActive,
		Roles:    rs,
	}
	e.db.users[username] = u
	return u
}
