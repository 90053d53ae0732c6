package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tartil/internal/models"
)

var (
	// ErrInvalidToken covers malformed, mis-signed, and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden signals an authenticated caller acting outside their rights.
	ErrForbidden = errors.New("forbidden")
)

// Claims is the identity embedded in every issued token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies bearer tokens. Stateless by design: a token
// cannot be revoked before it expires.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens builds a Tokens signing with secret; tokens live for ttl.
func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	return &Tokens{secret: secret, ttl: ttl}
}

// Issue signs a token carrying the user's identity.
func (t *Tokens) Issue(user models.User) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token, returning the embedded claims.
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authorize is the ownership predicate shared by every mutating route: the
// actor must own the resource, or hold the admin role when adminOverride is
// set. Returns ErrForbidden otherwise.
func Authorize(identity *Claims, ownerID int64, adminOverride bool) error {
	if identity == nil {
		return ErrForbidden
	}
	if identity.UserID == ownerID {
		return nil
	}
	if adminOverride && identity.Role == models.RoleAdmin {
		return nil
	}
	return ErrForbidden
}
