package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the auth service.
//
// The "sub" claim carries the user ID; Roles and Login are private claims.
type Claims struct {
	jwt.RegisteredClaims

	Login string `json:"login,omitempty"`
	Roles []Role `json:"roles"`
}

// Token wraps a signed JWT together with its parsed claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"token"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity converts the token claims into an [Identity].
func (t *Token) Identity() Identity {
	identity := Identity{
		Subject: t.Claims.Subject,
		Login:   t.Claims.Login,
		Roles:   append([]Role(nil), t.Claims.Roles...),
	}
	if t.Claims.IssuedAt != nil {
		identity.IssuedAt = t.Claims.IssuedAt.Time
	}
	if t.Claims.ExpiresAt != nil {
		identity.ExpiresAt = t.Claims.ExpiresAt.Time
	}
	return identity
}
