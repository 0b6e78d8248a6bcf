package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type (
	// Claims is the identity a token carries. Nothing else about the
	// user travels inside the token.
	Claims struct {
		UserID int64  `json:"user_id"`
		Email  string `json:"email"`
	}

	// Verdict is the internal outcome of token verification. Callers
	// outside this package should rely on Verify, which collapses every
	// non-valid verdict into a plain "not authenticated". The split
	// exists so the gate can log why a token was refused without ever
	// telling the client.
	Verdict int

	Codec struct {
		secret   []byte
		validity time.Duration
		now      func() time.Time
	}

	tokenClaims struct {
		jwt.RegisteredClaims
		UserID int64  `json:"user_id"`
		Email  string `json:"email"`
	}
)

const (
	VerdictValid Verdict = iota
	VerdictExpired
	VerdictBadSignature
	VerdictMalformed
)

// DefaultValidity is how long an issued token stays usable. There is no
// revocation, a token dies only by expiring or by the client dropping it.
const DefaultValidity = 7 * 24 * time.Hour

func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "valid"
	case VerdictExpired:
		return "expired"
	case VerdictBadSignature:
		return "bad-signature"
	case VerdictMalformed:
		return "malformed"
	}
	return fmt.Sprintf("verdict(%d)", int(v))
}

// NewCodec builds a token codec around a symmetric secret. An empty
// secret is refused here so the process dies at startup instead of
// signing tokens with an empty key.
func NewCodec(secret []byte) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: token signing secret must not be empty")
	}
	return &Codec{
		secret:   secret,
		validity: DefaultValidity,
		now:      time.Now,
	}, nil
}

// WithClock replaces the codec clock, used by tests to move time past
// the expiry window.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Issue signs the given claims into a compact token with issued-at set
// to now and expiry seven days later.
func (c *Codec) Issue(claims Claims) (string, error) {
	issuedAt := c.now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.validity)),
		},
		UserID: claims.UserID,
		Email:  claims.Email,
	})
	signed, err := tk.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("unable to sign token, cause %w", err)
	}
	return signed, nil
}

// Inspect checks signature and expiry and reports the precise outcome.
// The zero Claims value is returned for every verdict but VerdictValid.
func (c *Codec) Inspect(token string) (Claims, Verdict) {
	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
		return Claims{UserID: parsed.UserID, Email: parsed.Email}, VerdictValid
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, VerdictExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, VerdictBadSignature
	}
	return Claims{}, VerdictMalformed
}

// Verify is the boundary form of Inspect: claims and true on a valid
// token, zero claims and false on anything else. Callers never learn
// whether the token was expired, forged or garbage.
func (c *Codec) Verify(token string) (Claims, bool) {
	claims, verdict := c.Inspect(token)
	return claims, verdict == VerdictValid
}
