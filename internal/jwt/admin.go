// Package jwt emite y valida los bearer tokens de admin del API HTTP (HS256).
package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

const (
	adminIssuer = "usermanager"
	adminScope  = "users:write"
)

var (
	ErrNoSecret     = errors.New("jwt: admin secret is empty")
	ErrInvalidToken = errors.New("jwt: invalid token")
	ErrMissingScope = errors.New("jwt: missing scope")
)

// AdminClaims son los claims del token de admin.
type AdminClaims struct {
	Scope string `json:"scope"`
	jwtv5.RegisteredClaims
}

// AdminIssuer firma y valida tokens con un secreto compartido.
type AdminIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAdminIssuer(secret string, ttl time.Duration) (*AdminIssuer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AdminIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue firma un token para subject con scope users:write.
func (i *AdminIssuer) Issue(subject string) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	claims := AdminClaims{
		Scope: adminScope,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    adminIssuer,
			Subject:   subject,
			IssuedAt:  jwtv5.NewNumericDate(now),
			NotBefore: jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(exp),
		},
	}
	s, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return s, exp, nil
}

// Parse valida firma, iss, exp/nbf (con 30s de tolerancia) y el scope.
func (i *AdminIssuer) Parse(token string) (*AdminClaims, error) {
	var claims AdminClaims
	tok, err := jwtv5.ParseWithClaims(token, &claims,
		func(*jwtv5.Token) (any, error) { return i.secret, nil },
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithIssuer(adminIssuer),
		jwtv5.WithLeeway(30*time.Second),
		jwtv5.WithTimeFunc(i.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Scope != adminScope {
		return nil, ErrMissingScope
	}
	return &claims, nil
}
