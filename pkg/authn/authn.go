// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package authn contains the session authentication abstraction used by
// transport layers.
package authn

import (
	"context"
	"time"
)

// Session represents the identity carried by an authenticated request token.
type Session struct {
	UserID     string
	SuperAdmin bool
}

// Authentication resolves bearer tokens into sessions.
type Authentication interface {
	// Authenticate validates the given token and returns the session it carries.
	Authenticate(ctx context.Context, token string) (Session, error)
}

// Tokenizer issues and validates session tokens.
type Tokenizer interface {
	Authentication

	// Issue mints a signed token carrying the given session, valid for the
	// given duration. A zero duration issues a token without expiration.
	Issue(session Session, duration time.Duration) (string, error)
}
