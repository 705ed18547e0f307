package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in a session token: the user's ID and email
// at issuance time, plus the registered expiry and issued-at claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
}

// TokenService issues and verifies HS256-signed session tokens. Tokens are
// self-contained bearer credentials: the server keeps no session state and
// there is no revocation or refresh, so expiry is the only lifetime bound.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service from the signing secret and a
// validity window in days.
func NewTokenService(secret string, ttlDays int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// Issue signs a token carrying the user's ID and email with an absolute
// expiry one validity window from now.
func (s *TokenService) Issue(userID int64, email string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// Malformed input, a bad signature and an expired token all come back as
// errors from the jwt library; callers treat any of them as an invalid token.
// Verification never mutates state.
func (s *TokenService) Verify(token string) (Claims, error) {
	claims := Claims{}
	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !t.Valid {
		return Claims{}, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
