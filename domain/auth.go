package domain

import (
	"errors"

	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/ledger/base/ctx"
)

var (
	ErrInvalidNonce = errors.New("invalid nonce")
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

type AuthUsecase interface {
	// GenerateNonce stores a fresh nonce for address and returns the message to sign
	GenerateNonce(ctx ctx.Ctx, address Address) (string, error)
	// Login verifies the signature over the pending nonce message and issues a token
	Login(ctx ctx.Ctx, address Address, signature string) (string, error)
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
