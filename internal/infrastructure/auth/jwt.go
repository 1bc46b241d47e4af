// Package auth provides token verification for the HTTP surface. Token
// issuance belongs to the operator identity service; this side only
// validates bearer tokens and extracts the owner scope.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"skymaint/internal/shared/biztime"
)

// Claims carries the authenticated identity: the fleet operator account
// (owner) the request is scoped to and the individual user acting.
type Claims struct {
	OwnerID uint `json:"owner_id"`
	UserID  uint `json:"user_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token for the given owner and user. Used by
// operational tooling and tests; production tokens come from the identity
// service signed with the shared secret.
func (s *JWTService) Generate(ownerID, userID uint) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		OwnerID: ownerID,
		UserID:  userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.OwnerID == 0 {
		return nil, fmt.Errorf("token carries no owner scope")
	}

	return claims, nil
}
