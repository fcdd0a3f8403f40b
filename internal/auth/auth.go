package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the resolved owner attached to authenticated requests.
type Identity struct {
	UserID string
	Email  string
}

type ctxKey struct{}

func NewContext(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, ident)
}

func FromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(ctxKey{}).(Identity)
	return ident, ok
}

// Sign mints a bearer token carrying the user id and email.
func Sign(secret, userID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify checks signature and expiry and returns the identity the token
// carries.
func Verify(secret, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return Identity{UserID: userID, Email: email}, nil
}
