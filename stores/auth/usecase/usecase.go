package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/base/ethereum"
	"github.com/x-xyz/ledger/base/validator"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/service/cache"
)

const defaultTokenTTL = 24 * time.Hour

type AuthUseCaseCfg struct {
	JwtSecret string
	// SigningMsgTemplate takes the nonce through a single %s
	SigningMsgTemplate string
	// Nonces must be configured with the nonce ttl
	Nonces   cache.Service
	TokenTTL time.Duration
	TimeNow  func() time.Time
}

type impl struct {
	jwtSecret []byte
	template  string
	nonces    cache.Service
	tokenTTL  time.Duration
	timeNow   func() time.Time
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	im := &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		template:  cfg.SigningMsgTemplate,
		nonces:    cfg.Nonces,
		tokenTTL:  cfg.TokenTTL,
		timeNow:   cfg.TimeNow,
	}
	if im.tokenTTL <= 0 {
		im.tokenTTL = defaultTokenTTL
	}
	if im.timeNow == nil {
		im.timeNow = time.Now
	}
	return im
}

func (im *impl) signingMsg(nonce string) string {
	return fmt.Sprintf(im.template, nonce)
}

func (im *impl) GenerateNonce(c ctx.Ctx, address domain.Address) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	nonce := uuid.NewString()
	if err := im.nonces.Set(c, address.ToLowerStr(), nonce); err != nil {
		c.WithField("err", err).Error("nonces.Set failed")
		return "", err
	}
	return im.signingMsg(nonce), nil
}

func (im *impl) Login(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}
	address = address.ToLower()

	var nonce string
	if err := im.nonces.Get(c, string(address), &nonce); err == cache.ErrNotFound {
		return "", xerrors.Errorf("no pending nonce for %s: %w", address, domain.ErrInvalidNonce)
	} else if err != nil {
		c.WithField("err", err).Error("nonces.Get failed")
		return "", err
	}

	ok, err := ethereum.ValidateMsgSignature([]byte(im.signingMsg(nonce)), signature, string(address))
	if err != nil {
		return "", xerrors.Errorf("ethereum.ValidateMsgSignature failed: %v: %w", err, domain.ErrInvalidSignature)
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	// a nonce signs in once
	if err := im.nonces.Del(c, string(address)); err != nil {
		c.WithField("err", err).Error("nonces.Del failed")
		return "", err
	}

	return im.SignToken(c, address)
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address) (string, error) {
	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: im.timeNow().Add(im.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}
	return "", domain.ErrUnauthorized
}
