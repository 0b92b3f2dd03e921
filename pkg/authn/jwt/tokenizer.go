// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"context"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/tibisabau/camunda/pkg/authn"
	"github.com/tibisabau/camunda/pkg/errors"
	svcerr "github.com/tibisabau/camunda/pkg/errors/service"
)

const (
	issuerName = "camunda.authorizations"
	adminField = "admin"
)

var (
	errInvalidIssuer = errors.New("invalid token issuer value")
	// errJWTExpiryKey is used to check if the token is expired.
	errJWTExpiryKey = errors.New(`"exp" not satisfied`)

	// ErrSignJWT indicates failure to sign the jwt token.
	ErrSignJWT = errors.New("failed to sign jwt token")
	// ErrValidateJWTToken indicates a failure to validate the jwt token.
	ErrValidateJWTToken = errors.New("failed to validate jwt token")
	// ErrExpiry indicates that the token is expired.
	ErrExpiry = errors.New("token is expired")
)

type tokenizer struct {
	secret []byte
}

var _ authn.Tokenizer = (*tokenizer)(nil)

// New returns an HS512 JWT tokenizer using the given signing secret.
func New(secret []byte) authn.Tokenizer {
	return &tokenizer{secret: secret}
}

func (tok *tokenizer) Issue(session authn.Session, duration time.Duration) (string, error) {
	builder := jwt.NewBuilder()
	builder.
		Issuer(issuerName).
		IssuedAt(time.Now()).
		Subject(session.UserID).
		Claim(adminField, session.SuperAdmin)
	if duration != 0 {
		builder.Expiration(time.Now().Add(duration))
	}
	tkn, err := builder.Build()
	if err != nil {
		return "", errors.Wrap(svcerr.ErrAuthentication, err)
	}
	signedTkn, err := jwt.Sign(tkn, jwt.WithKey(jwa.HS512, tok.secret))
	if err != nil {
		return "", errors.Wrap(ErrSignJWT, err)
	}

	return string(signedTkn), nil
}

func (tok *tokenizer) Authenticate(_ context.Context, token string) (authn.Session, error) {
	tkn, err := tok.validateToken(token)
	if err != nil {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, err)
	}

	return toSession(tkn)
}

func (tok *tokenizer) validateToken(token string) (jwt.Token, error) {
	tkn, err := jwt.Parse(
		[]byte(token),
		jwt.WithValidate(true),
		jwt.WithKey(jwa.HS512, tok.secret),
	)
	if err != nil {
		if errors.Contains(err, errJWTExpiryKey) {
			return nil, ErrExpiry
		}

		return nil, err
	}
	validator := jwt.ValidatorFunc(func(_ context.Context, t jwt.Token) jwt.ValidationError {
		if t.Issuer() != issuerName {
			return jwt.NewValidationError(errInvalidIssuer)
		}

		return nil
	})
	if err := jwt.Validate(tkn, jwt.WithValidator(validator)); err != nil {
		return nil, errors.Wrap(ErrValidateJWTToken, err)
	}

	return tkn, nil
}

func toSession(tkn jwt.Token) (authn.Session, error) {
	session := authn.Session{
		UserID: tkn.Subject(),
	}
	if session.UserID == "" {
		return authn.Session{}, svcerr.ErrAuthentication
	}
	if admin, ok := tkn.Get(adminField); ok {
		if v, ok := admin.(bool); ok {
			session.SuperAdmin = v
		}
	}

	return session, nil
}
