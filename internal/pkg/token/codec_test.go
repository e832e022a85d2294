package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

var testSecret = []byte("0123456789abcdef0123456789abcdef") // 32 bytes, fine for HS256

func newTestCodec(t *testing.T) (*Codec, *stubClock) {
	t.Helper()

	clk := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewCodec(clk), clk
}

func TestCodec_Mint(t *testing.T) {
	codec, _ := newTestCodec(t)

	t.Run("InvalidArguments", func(t *testing.T) {
		tests := []struct {
			name    string
			claims  Claims
			alg     Algorithm
			secret  []byte
			ttl     time.Duration
			wantErr error
		}{
			{
				name:    "unknown algorithm",
				claims:  Claims{"sub": "alice"},
				alg:     Algorithm("none"),
				secret:  testSecret,
				ttl:     time.Hour,
				wantErr: ErrUnknownAlgorithm,
			},
			{
				name:    "empty secret",
				claims:  Claims{"sub": "alice"},
				alg:     HS256,
				secret:  nil,
				ttl:     time.Hour,
				wantErr: ErrEmptySecret,
			},
			{
				name:    "secret shorter than hash output",
				claims:  Claims{"sub": "alice"},
				alg:     HS512,
				secret:  testSecret, // 32 bytes, HS512 needs 64
				ttl:     time.Hour,
				wantErr: ErrSecretTooShort,
			},
			{
				name:    "non-positive ttl",
				claims:  Claims{"sub": "alice"},
				alg:     HS256,
				secret:  testSecret,
				ttl:     0,
				wantErr: ErrNonPositiveTTL,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := codec.Mint(tc.claims, tc.alg, tc.secret, tc.ttl)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Mint() error = %v, want %v", err, tc.wantErr)
				}
			})
		}
	})

	t.Run("EmptyClaimsMintsNothing", func(t *testing.T) {
		for _, claims := range []Claims{nil, {}} {
			got, err := codec.Mint(claims, HS256, testSecret, time.Hour)
			if err != nil {
				t.Fatalf("Mint() error = %v, want nil", err)
			}
			if got != "" {
				t.Fatalf("Mint() = %q, want empty token", got)
			}
		}
	})

	t.Run("ReservedClaimsOverrideCallerValues", func(t *testing.T) {
		codec, clk := newTestCodec(t)

		minted, err := codec.Mint(Claims{
			"sub":          "alice",
			ClaimIssuedAt:  int64(1),
			ClaimExpiresAt: int64(2),
		}, HS256, testSecret, time.Hour)
		if err != nil {
			t.Fatalf("Mint() error = %v", err)
		}

		claims, err := codec.Verify(minted, testSecret)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}

		if got := claims.GetInt64(ClaimIssuedAt); got != clk.now.Unix() {
			t.Errorf("iat = %d, want %d", got, clk.now.Unix())
		}
		if got := claims.GetInt64(ClaimExpiresAt); got != clk.now.Add(time.Hour).Unix() {
			t.Errorf("exp = %d, want %d", got, clk.now.Add(time.Hour).Unix())
		}
	})
}

func TestCodec_Verify_RoundTrip(t *testing.T) {
	codec, _ := newTestCodec(t)

	in := Claims{
		"sub":   "alice",
		"roles": []string{"ADMIN", "USER"},
		"age":   int64(30),
	}

	for _, alg := range []Algorithm{HS256, HS384, HS512} {
		t.Run(alg.String(), func(t *testing.T) {
			secret := []byte(strings.Repeat("s", alg.MinSecretLen()))

			minted, err := codec.Mint(in, alg, secret, time.Hour)
			if err != nil {
				t.Fatalf("Mint() error = %v", err)
			}

			claims, err := codec.Verify(minted, secret)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}

			if got := claims.GetString("sub"); got != "alice" {
				t.Errorf("sub = %q, want %q", got, "alice")
			}
			if got := claims.GetStrings("roles"); len(got) != 2 {
				t.Errorf("roles = %v, want two entries", got)
			}
			if got := claims.GetInt64("age"); got != 30 {
				t.Errorf("age = %d, want 30", got)
			}
			if !claims.Has(ClaimIssuedAt) || !claims.Has(ClaimExpiresAt) {
				t.Errorf("decoded claims missing reserved keys: %v", claims)
			}
		})
	}
}

func TestCodec_Verify_RejectsTampering(t *testing.T) {
	codec, _ := newTestCodec(t)

	minted, err := codec.Mint(Claims{"sub": "alice"}, HS256, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}

	dots := strings.SplitN(minted, ".", 3)
	if len(dots) != 3 {
		t.Fatalf("minted token is not three segments: %q", minted)
	}

	// Flip one character inside each segment.
	offsets := []int{
		2,                                 // header
		len(dots[0]) + 1 + len(dots[1])/2, // payload
		len(minted) - len(dots[2])/2 - 1,  // signature
	}

	for _, off := range offsets {
		mutated := []byte(minted)
		if mutated[off] == 'A' {
			mutated[off] = 'B'
		} else {
			mutated[off] = 'A'
		}

		if _, err := codec.Verify(string(mutated), testSecret); !errors.Is(err, ErrMalformedToken) {
			t.Errorf("Verify(mutated@%d) error = %v, want ErrMalformedToken", off, err)
		}
	}
}

func TestCodec_Verify_RejectsWrongKey(t *testing.T) {
	codec, _ := newTestCodec(t)

	minted, err := codec.Mint(Claims{"sub": "alice"}, HS256, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}

	other := []byte(strings.Repeat("x", 32))
	if _, err := codec.Verify(minted, other); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("Verify(wrong key) error = %v, want ErrMalformedToken", err)
	}
}

func TestCodec_Verify_InvalidArguments(t *testing.T) {
	codec, _ := newTestCodec(t)

	if _, err := codec.Verify("", testSecret); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("Verify(empty token) error = %v, want ErrEmptyToken", err)
	}
	if _, err := codec.Verify("a.b.c", nil); !errors.Is(err, ErrEmptySecret) {
		t.Errorf("Verify(empty secret) error = %v, want ErrEmptySecret", err)
	}
}

func TestCodec_Verify_DecodesExpiredToken(t *testing.T) {
	codec, clk := newTestCodec(t)

	minted, err := codec.Mint(Claims{"sub": "alice"}, HS256, testSecret, time.Second)
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}

	clk.now = clk.now.Add(time.Minute)

	claims, err := codec.Verify(minted, testSecret)
	if err != nil {
		t.Fatalf("Verify(expired) error = %v, want nil", err)
	}

	exp, ok := claims.GetTime(ClaimExpiresAt)
	if !ok {
		t.Fatal("expired token decoded without exp claim")
	}
	if !exp.Before(clk.now) {
		t.Errorf("exp = %v, expected to be in the past of %v", exp, clk.now)
	}
}

func TestCodec_IsValid_ExpiryBoundary(t *testing.T) {
	codec, clk := newTestCodec(t)
	minted := clk.now

	tokenStr, err := codec.Mint(Claims{"sub": "alice"}, HS256, testSecret, time.Second)
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}

	t.Run("ValidRightAfterMinting", func(t *testing.T) {
		if !codec.IsValid(tokenStr, testSecret) {
			t.Fatal("IsValid() = false right after minting, want true")
		}
	})

	t.Run("InvalidOnceExpirationPasses", func(t *testing.T) {
		clk.now = minted.Add(2 * time.Second)
		if codec.IsValid(tokenStr, testSecret) {
			t.Fatal("IsValid() = true past expiration, want false")
		}
	})

	t.Run("NeverErrors", func(t *testing.T) {
		if codec.IsValid("garbage", testSecret) {
			t.Error("IsValid(garbage) = true, want false")
		}
		if codec.IsValid("", testSecret) {
			t.Error("IsValid(empty) = true, want false")
		}
		if codec.IsValid(tokenStr, nil) {
			t.Error("IsValid(no secret) = true, want false")
		}
	})
}
