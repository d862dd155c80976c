package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/acquasitions/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySignKey is returned when a token is verified without a sign key.
var ErrEmptySignKey = errors.New("empty token sign key")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - role           : the user's role
//
// issuer, tokenDuration and signKey are required. Returns an error if any of
// them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("acquasitions", user, time.Hour, "secret")
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: user.ID, Role: user.Role}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check; the claim is required
//   - Subject (sub) claim presence and conversion to int64 UserID
//   - Role claim presence and membership in the known roles
//
// Returns the parsed token with UserID and Role populated, or an error if
// any check fails. An empty tokenSignKey rejects every token with
// [ErrEmptySignKey].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	if tokenSignKey == "" {
		return models.Token{}, ErrEmptySignKey
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := models.ParseSubject(claims)
	if err != nil {
		return models.Token{}, err
	}

	if !claims.Role.IsValid() {
		return models.Token{}, fmt.Errorf("unknown role %q in token", claims.Role)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Role: claims.Role}, nil
}

// IsTokenExpired reports whether err was produced by an expired token.
func IsTokenExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
