package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the access token payload. Roles live under realm_access as issued
// by Keycloak-style identity providers.
type Claims struct {
	jwt.RegisteredClaims

	PreferredUsername string      `json:"preferred_username,omitempty"`
	RealmAccess       RealmAccess `json:"realm_access"`
}

type RealmAccess struct {
	Roles []string `json:"roles"`
}

// Verifier validates RS256 access tokens against a public key.
type Verifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewVerifier parses publicKeyPEM. An empty issuer disables the issuer check.
// A bare base64 key body without PEM armor is accepted as well.
func NewVerifier(publicKeyPEM, issuer string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(armorPublicKey(publicKeyPEM)))
	if err != nil {
		return nil, fmt.Errorf("auth: failed to parse public key: %w", err)
	}
	return &Verifier{publicKey: key, issuer: issuer}, nil
}

func armorPublicKey(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "-----BEGIN") {
		return key
	}
	return "-----BEGIN PUBLIC KEY-----\n" + key + "\n-----END PUBLIC KEY-----"
}

// Verify checks the signature and validity of a JWT string.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return v.publicKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ForToken returns the Service for a raw bearer token. Invalid or empty
// tokens yield Anonymous.
func (v *Verifier) ForToken(tokenString string) Service {
	if tokenString == "" {
		return Anonymous{}
	}
	claims, err := v.Verify(tokenString)
	if err != nil {
		return Anonymous{}
	}
	return &TokenService{claims: claims}
}

// TokenService is the Service of a caller holding a verified token.
type TokenService struct {
	claims *Claims
}

func (s *TokenService) IsAuthenticated() bool { return true }

func (s *TokenService) HasRole(role string) bool {
	return slices.Contains(s.claims.RealmAccess.Roles, role)
}

func (s *TokenService) Subject() string {
	if s.claims.PreferredUsername != "" {
		return s.claims.PreferredUsername
	}
	return s.claims.Subject
}
