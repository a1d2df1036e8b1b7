package models

import "github.com/golang-jwt/jwt/v5"

// TokenPurpose is the only use a token is accepted for.
type TokenPurpose string

const (
	PurposeAccess        TokenPurpose = "access"         // subject is a username
	PurposeConfirmEmail  TokenPurpose = "confirm_email"  // subject is an email
	PurposeResetPassword TokenPurpose = "reset_password" // subject is an email
)

// TokenClaims is the signed claim set of every issued token.
type TokenClaims struct {
	jwt.RegisteredClaims

	Purpose TokenPurpose `json:"purpose"`
}

// Token is an issued or parsed JWT together with its compact form.
type Token struct {
	*jwt.Token `json:"-"`
	TokenClaims

	SignedString string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
