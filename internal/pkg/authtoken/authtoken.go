// Package authtoken issues and verifies the HS256 bearer tokens that carry a
// principal between requests. A token holds the user id, the role name and an
// expiry; nothing else is trusted from it.
package authtoken

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL matches the lifetime of tokens handed out at login and refresh.
const DefaultTTL = time.Hour

var ErrEmptySecret = errors.New("token signing secret is empty")

// Claims is the payload of a token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with one shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Issuer)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

func NewIssuer(secret string, ttl time.Duration, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	i := &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

func (i *Issuer) Issue(principal access.Principal) (string, error) {
	if err := principal.Validate(); err != nil {
		return "", err
	}

	now := i.now()
	claims := Claims{
		Role: principal.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(principal.ID(), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the principal of a valid token. Bad signatures, other algorithms,
// expired tokens and unknown roles are all UnauthenticatedError.
func (i *Issuer) Verify(token string) (access.Principal, error) {
	if token == "" {
		return access.Principal{}, errs.NewUnauthenticatedError("token is missing")
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return access.Principal{}, errs.NewUnauthenticatedErrorWithCause("token has expired", err)
		}
		return access.Principal{}, errs.NewUnauthenticatedErrorWithCause("token is invalid", err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return access.Principal{}, errs.NewUnauthenticatedErrorWithCause("token subject is not a user id", err)
	}
	role, err := access.ParseRole(claims.Role)
	if err != nil {
		return access.Principal{}, errs.NewUnauthenticatedErrorWithCause("token role is unknown", err)
	}

	principal, err := access.NewPrincipal(id, role)
	if err != nil {
		return access.Principal{}, errs.NewUnauthenticatedErrorWithCause("token principal is invalid", err)
	}
	return principal, nil
}
