package token

import (
	"encoding/json"
	"time"
)

// Reserved claim keys managed by the Codec. Caller-supplied values under
// these keys are overwritten at mint time.
const (
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
)

// ClaimID is the token identifier claim. The Codec does not manage it, but
// callers that revoke tokens key revocation entries by it.
const ClaimID = "jti"

// Claims is the token payload: string keys mapped to JSON-compatible values.
//
// Values decoded from a token arrive in encoding/json shapes (string, bool,
// float64, []any, map[string]any). Reads go through checked getters so a
// missing or wrong-shaped claim yields the zero value instead of a panic.
type Claims map[string]any

// Has reports whether a key exists.
func (c Claims) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// GetString returns the string under key, or "" when missing or wrong-shaped.
func (c Claims) GetString(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// GetInt64 returns the integer under key, or 0 when missing or wrong-shaped.
func (c Claims) GetInt64(key string) int64 {
	switch v := c[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	}
	return 0
}

// GetTime reads the claim under key as seconds since epoch.
func (c Claims) GetTime(key string) (time.Time, bool) {
	switch v := c[key].(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case int64:
		return time.Unix(v, 0), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return time.Unix(n, 0), true
		}
	}
	return time.Time{}, false
}

// GetStrings reads the claim under key as a collection of strings. Non-string
// elements are skipped. Missing or wrong-shaped claims yield nil.
func (c Claims) GetStrings(key string) []string {
	switch v := c[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
