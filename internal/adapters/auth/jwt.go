package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

// JWTIssuer signs and verifies HS256 access tokens carrying the user id in
// "sub" and the email in "email".
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (j *JWTIssuer) Issue(identity domain.Identity) (string, error) {
	const op = "auth.JWTIssuer.Issue"

	now := j.now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(identity.UserID, 10),
		"email": identity.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Verify checks signature and expiry. Every failure is reported as
// domain.ErrInvalidToken so callers cannot tell the reasons apart.
func (j *JWTIssuer) Verify(tokenString string) (*domain.Identity, error) {
	const op = "auth.JWTIssuer.Verify"

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidToken)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidToken)
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidToken)
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrInvalidToken)
	}

	return &domain.Identity{UserID: userID, Email: email}, nil
}
