// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued for a user: the standard registered
// claims plus the user's role.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the "role" private claim copied from [User.Role] at issuance.
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the Authorization
// header. UserID and Role are parsed copies of the "sub" and "role" claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Role is the role extracted from the "role" claim.
	Role Role `json:"-"`
}

// Identity returns the authenticated caller described by the token.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, Role: t.Role}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// ParseSubject converts the "sub" claim of claims to a user identifier.
func ParseSubject(claims *Claims) (int64, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}
