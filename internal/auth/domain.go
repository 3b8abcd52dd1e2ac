package auth

import "github.com/golang-jwt/jwt/v5"

// RoleClaim is the role granted to the subject inside the token payload.
type RoleClaim struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions"`
}

// Claims is the signed payload carried by a credential. Once verified it is
// trusted verbatim as the role and permission source for the remainder of
// the request; no secondary lookup or revocation check happens downstream.
type Claims struct {
	Role RoleClaim `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the request-scoped principal resolved from a verified
// credential. An Identity only ever exists as the product of a successful
// verification; handlers never see a partially populated one.
type Identity struct {
	Subject string    `json:"id"`
	Role    RoleClaim `json:"role"`
}
