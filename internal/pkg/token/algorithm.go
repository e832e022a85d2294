package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Algorithm selects the HMAC family used to sign a token.
type Algorithm string

const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// ParseAlgorithm maps a configuration string to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case HS256, HS384, HS512:
		return Algorithm(s), nil
	default:
		return "", ErrUnknownAlgorithm
	}
}

func (a Algorithm) String() string {
	return string(a)
}

// MinSecretLen is the smallest accepted secret, in bytes. It equals the hash
// output size of the family, matching RFC 2104 guidance: shorter keys weaken
// the MAC.
func (a Algorithm) MinSecretLen() int {
	switch a {
	case HS256:
		return 32
	case HS384:
		return 48
	case HS512:
		return 64
	default:
		return 0
	}
}

func (a Algorithm) signingMethod() (jwt.SigningMethod, error) {
	switch a {
	case HS256:
		return jwt.SigningMethodHS256, nil
	case HS384:
		return jwt.SigningMethodHS384, nil
	case HS512:
		return jwt.SigningMethodHS512, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}
