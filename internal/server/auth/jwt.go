// Package auth implements the session-token codec and the password
// hasher. Tokens are self-contained HS256 JWTs carrying the user's
// email as subject plus a numeric user ID claim.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/politask/politask/internal/common"
)

// Claims includes the registered claims and the user's database ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// GenerateToken issues a signed token for the given subject email,
// expiring validityDuration after issuance.
func GenerateToken(email string, userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ExtractSubject parses the token, verifies its signature and returns
// the embedded subject. All failures on attacker-controlled input are
// returned as sentinel errors, never panics.
func ExtractSubject(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", common.ErrMalformedToken
		}
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrMalformedToken
	}

	return claims.Subject, nil
}

// IsValid reports whether the token verifies under the key, is
// unexpired and carries exactly expectedSubject (case-sensitive).
// The subject comparison is separate from signature verification so a
// verifiable token presented for a different subject still fails.
// Callers only get a boolean; the failure reason stays internal.
func IsValid(tokenString, expectedSubject string, secretKey []byte) bool {
	subject, err := ExtractSubject(tokenString, secretKey)
	if err != nil {
		return false
	}
	return subject == expectedSubject
}
