package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptyToken is returned when the token string is empty or blank.
	ErrEmptyToken = errors.New("token: token cannot be empty")

	// ErrEmptySecret is returned when the secret key is empty.
	ErrEmptySecret = errors.New("token: secret key cannot be empty")

	// ErrUnknownAlgorithm is returned when the signature algorithm is not a
	// supported HMAC family.
	ErrUnknownAlgorithm = errors.New("token: unknown signature algorithm")

	// ErrSecretTooShort is returned when the secret is shorter than the hash
	// output of the selected algorithm.
	ErrSecretTooShort = errors.New("token: secret key is too short for algorithm")

	// ErrNonPositiveTTL is returned when the validity window is zero or negative.
	ErrNonPositiveTTL = errors.New("token: ttl must be positive")

	// ErrMalformedToken wraps structural corruption, bad signatures, and
	// unsupported algorithm identifiers found while decoding a token.
	ErrMalformedToken = errors.New("token: malformed token")
)

type clocker interface {
	Now() time.Time
}

// Codec mints and verifies signed tokens. It holds no key material and no
// mutable state; every method is safe for concurrent use.
type Codec struct {
	clock  clocker
	parser *jwt.Parser
}

// NewCodec returns a Codec that reads the current time from clock.
func NewCodec(clock clocker) *Codec {
	return &Codec{
		clock: clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{HS256.String(), HS384.String(), HS512.String()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Mint signs claims into a compact token valid for ttl from now.
//
// The issued-at and expiration claims are set on a copy of claims, replacing
// any caller-supplied values under the same keys. An empty or nil claim set
// is not an error: Mint returns ("", nil) to signal there is nothing to mint.
func (c *Codec) Mint(claims Claims, alg Algorithm, secret []byte, ttl time.Duration) (string, error) {
	method, err := alg.signingMethod()
	if err != nil {
		return "", err
	}

	if len(secret) == 0 {
		return "", ErrEmptySecret
	}

	if min := alg.MinSecretLen(); len(secret) < min {
		return "", fmt.Errorf("%w: %s needs at least %d bytes", ErrSecretTooShort, alg, min)
	}

	if ttl <= 0 {
		return "", ErrNonPositiveTTL
	}

	if len(claims) == 0 {
		return "", nil
	}

	now := c.clock.Now()
	payload := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		payload[k] = v
	}
	payload[ClaimIssuedAt] = now.Unix()
	payload[ClaimExpiresAt] = now.Add(ttl).Unix()

	return jwt.NewWithClaims(method, payload).SignedString(secret)
}

// Verify parses the token envelope and checks its signature against secret.
//
// It deliberately does not enforce expiration: a well-signed but expired
// token decodes successfully, with its past expiration claim intact. Use
// IsValid when the question is "is this token currently usable". Any
// structural problem, signature mismatch, or unsupported algorithm yields an
// error wrapping ErrMalformedToken.
func (c *Codec) Verify(tokenStr string, secret []byte) (Claims, error) {
	if strings.TrimSpace(tokenStr) == "" {
		return nil, ErrEmptyToken
	}

	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	parsed, err := c.parser.Parse(tokenStr, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}

	claims := make(Claims, len(mapClaims))
	for k, v := range mapClaims {
		claims[k] = v
	}

	return claims, nil
}

// IsValid reports whether the token verifies against secret and its
// expiration is strictly in the future.
//
// Validity failures are routine (expired sessions, stale tokens), so every
// failure along the chain collapses to false instead of surfacing an error.
func (c *Codec) IsValid(tokenStr string, secret []byte) bool {
	claims, err := c.Verify(tokenStr, secret)
	if err != nil {
		return false
	}

	exp, ok := claims.GetTime(ClaimExpiresAt)

	return ok && exp.After(c.clock.Now())
}
