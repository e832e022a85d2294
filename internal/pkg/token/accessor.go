package token

import (
	"encoding/json"
	"errors"

	"github.com/samber/lo"
)

// usageError reports whether err belongs to the invalid-argument class, which
// propagates to the caller instead of being absorbed into an empty result.
func usageError(err error) bool {
	return errors.Is(err, ErrEmptyToken) || errors.Is(err, ErrEmptySecret)
}

// Claim verifies the token and projects the claim under key as a T.
//
// The boolean is true only when the claim exists and has the expected shape.
// Verification failure on an issued token is not an error here: it yields
// (zero, false, nil). Only argument mistakes are returned as errors.
func Claim[T any](c *Codec, tokenStr string, secret []byte, key string) (T, bool, error) {
	var zero T

	claims, err := c.Verify(tokenStr, secret)
	if err != nil {
		if usageError(err) {
			return zero, false, err
		}
		return zero, false, nil
	}

	raw, ok := claims[key]
	if !ok || raw == nil {
		return zero, false, nil
	}

	if v, ok := raw.(T); ok {
		return v, true, nil
	}

	if v, ok := coerceNumber[T](raw); ok {
		return v, true, nil
	}

	return zero, false, nil
}

// coerceNumber converts a JSON-decoded number (float64 or json.Number) into
// the requested numeric type. Decoding a token never yields int claims, so a
// caller asking for an integer would otherwise always miss.
func coerceNumber[T any](raw any) (T, bool) {
	var zero T

	f, ok := raw.(float64)
	if !ok {
		n, okNum := raw.(json.Number)
		if !okNum {
			return zero, false
		}
		v, err := n.Float64()
		if err != nil {
			return zero, false
		}
		f = v
	}

	switch any(zero).(type) {
	case int:
		return any(int(f)).(T), true
	case int32:
		return any(int32(f)).(T), true
	case int64:
		return any(int64(f)).(T), true
	case float32:
		return any(float32(f)).(T), true
	case float64:
		return any(f).(T), true
	default:
		return zero, false
	}
}

// Username extracts the string claim carrying identity. The claim name is a
// deployment convention, so it is a parameter rather than a constant.
func (c *Codec) Username(tokenStr string, secret []byte, usernameKey string) (string, bool, error) {
	return Claim[string](c, tokenStr, secret, usernameKey)
}

// Roles reads the claim under rolesKey as a set of role names.
//
// The result is always a fresh, deduplicated slice; the decoded claim set is
// never mutated. A missing claim means no roles, not an error, and
// verification failure also yields an empty set.
func (c *Codec) Roles(tokenStr string, secret []byte, rolesKey string) ([]string, error) {
	claims, err := c.Verify(tokenStr, secret)
	if err != nil {
		if usageError(err) {
			return nil, err
		}
		return []string{}, nil
	}

	roles := claims.GetStrings(rolesKey)
	if len(roles) == 0 {
		return []string{}, nil
	}

	return lo.Uniq(roles), nil
}

// AllExcept returns every claim except those named in excludedKeys. With no
// exclusions it returns the full decoded claim set. Verification failure
// yields an empty map.
func (c *Codec) AllExcept(tokenStr string, secret []byte, excludedKeys ...string) (Claims, error) {
	claims, err := c.Verify(tokenStr, secret)
	if err != nil {
		if usageError(err) {
			return nil, err
		}
		return Claims{}, nil
	}

	if len(excludedKeys) == 0 {
		return claims, nil
	}

	return Claims(lo.OmitByKeys(map[string]any(claims), excludedKeys)), nil
}
