package jwt

import (
	"context"
	"time"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type Claims struct {
	Email      string `json:"email"`
	Identifier string `json:"id"`
	UserID     string `json:"userId"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// Issue implements [port.TokenIssuer].
func (i *Issuer) Issue(ctx context.Context, claims port.TokenClaims) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(i.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email:      claims.Email,
		Identifier: string(claims.ID),
		UserID:     claims.Handle,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   string(claims.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, errors.WithStack(err)
	}

	return signed, expiresAt, nil
}

// Verify implements [port.TokenIssuer].
func (i *Issuer) Verify(ctx context.Context, raw string) (*port.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method '%v'", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(i.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(port.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Identifier == "" {
		return nil, errors.WithStack(port.ErrInvalidToken)
	}

	return &port.TokenClaims{
		Email:  claims.Email,
		ID:     model.UserID(claims.Identifier),
		Handle: claims.UserID,
	}, nil
}

func NewIssuer(secret []byte, ttl time.Duration, issuer string) *Issuer {
	return &Issuer{
		secret: secret,
		ttl:    ttl,
		issuer: issuer,
	}
}

var _ port.TokenIssuer = &Issuer{}
