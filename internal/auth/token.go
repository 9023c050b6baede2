package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenDuration = 7 * 24 * time.Hour

// Claims represents JWT token claims
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() *Identity {
	return &Identity{UserID: c.UserID, Email: c.Email, Role: c.Role}
}

// TokenCodec signs and verifies bearer tokens.
type TokenCodec interface {
	Sign(id Identity) (string, error)
	Verify(token string) (*Claims, bool)
}

type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	if ttl <= 0 {
		ttl = DefaultTokenDuration
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (j *JWTCodec) TTL() time.Duration {
	return j.ttl
}

func (j *JWTCodec) Sign(id Identity) (string, error) {
	now := j.now()
	claims := &Claims{
		UserID: id.UserID,
		Email:  id.Email,
		Role:   id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Verify fails closed: any parse, signature, algorithm or expiry problem
// yields false.
func (j *JWTCodec) Verify(tokenString string) (*Claims, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !token.Valid {
		return nil, false
	}
	if claims.UserID <= 0 || !claims.Role.Valid() {
		return nil, false
	}
	return claims, true
}
