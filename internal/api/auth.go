// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"

	"github.com/tibisabau/camunda/pkg/apiutil"
	"github.com/tibisabau/camunda/pkg/authn"
)

type sessionKeyType string

// SessionKey is the request context key under which the authenticated
// session is stored.
const SessionKey = sessionKeyType("session")

// AuthenticateMiddleware resolves the bearer token of every request into a
// session and stores it in the request context.
func AuthenticateMiddleware(authn authn.Authentication) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := apiutil.ExtractBearerToken(r)
			if token == "" {
				EncodeError(r.Context(), apiutil.ErrBearerToken, w)
				return
			}

			session, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				EncodeError(r.Context(), err, w)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
