package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Omer-KISAKOL/site-builder/internal/errors"
)

// EdgeCodec is the second codec implementation, kept independently coded
// on the jwt/v5 runtime for the lightweight verification path. It shares
// the claim schema and secret with JWTCodec; tokens are interchangeable.
type EdgeCodec struct {
	secret []byte
}

var _ Codec = (*EdgeCodec)(nil)

// NewEdgeCodec creates the edge-runtime codec with the given secret.
func NewEdgeCodec(secret string) *EdgeCodec {
	return &EdgeCodec{secret: []byte(secret)}
}

type edgeClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a credential for the user, expiring after ttl.
func (c *EdgeCodec) Issue(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &edgeClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify validates signature, structure and expiry. All failures collapse
// to ErrInvalidToken.
func (c *EdgeCodec) Verify(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	var claims edgeClaims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	out := &Claims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
