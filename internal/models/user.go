package models

import "github.com/golang-jwt/jwt/v5"

// User is the local identity row. SubjectID is the stable subject asserted
// by the external identity provider; ID is the locally generated surrogate
// key every cart and order row hangs off.
type User struct {
	ID        int64  `json:"id"`
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
}

// Identity is the external identity assertion for an authenticated session.
type Identity struct {
	Subject string
	Email   string
}

// SessionClaims is the payload of the session cookie minted by the identity
// layer after the OpenID Connect flow completes.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
