package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for malformed, expired or mis-signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingSubject is returned for valid tokens that carry no subject.
	ErrMissingSubject = errors.New("token has no subject")
)

// CustomerClaims are the claims the storefront's auth API issues.
// The subject is the customer id that owns the cart session.
type CustomerClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(tokenString string) (*CustomerClaims, error)
}

// HMACTokenVerifier verifies HS256 tokens signed with a shared secret.
type HMACTokenVerifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewHMACTokenVerifier creates a verifier. An empty issuer accepts any issuer.
func NewHMACTokenVerifier(secret, issuer string, leeway time.Duration) *HMACTokenVerifier {
	return &HMACTokenVerifier{
		secret: []byte(secret),
		issuer: issuer,
		leeway: leeway,
	}
}

// Verify parses tokenString and returns its claims.
func (v *HMACTokenVerifier) Verify(tokenString string) (*CustomerClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &CustomerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

// Sign issues an HS256 token for subject. It backs local tooling and tests;
// production tokens come from the auth API.
func (v *HMACTokenVerifier) Sign(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
