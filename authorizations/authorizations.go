// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package authorizations contains the domain concept definitions needed to
// support authorization grants: which owner may exercise which permissions
// over which class of resource.
package authorizations

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tibisabau/camunda/pkg/authn"
)

// Authorization is a grant giving an owner a set of permissions over the
// resources of one resource type.
type Authorization struct {
	ID           string       `json:"id"`
	OwnerID      string       `json:"owner_id"`
	OwnerType    OwnerType    `json:"owner_type"`
	ResourceType ResourceType `json:"resource_type"`
	ResourceID   string       `json:"resource_id"`
	Permissions  []string     `json:"permissions"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at,omitempty"`
}

// Page is a page request together with the optional filters applied when
// listing authorizations. Enum filters carry the wire form so that the zero
// value means "no filter".
type Page struct {
	Offset       uint64 `json:"offset" db:"offset"`
	Limit        uint64 `json:"limit" db:"limit"`
	OwnerID      string `json:"owner_id,omitempty" db:"owner_id"`
	OwnerType    string `json:"owner_type,omitempty" db:"owner_type"`
	ResourceType string `json:"resource_type,omitempty" db:"resource_type"`
	ResourceID   string `json:"resource_id,omitempty" db:"resource_id"`
	Permission   string `json:"permission,omitempty" db:"permission"`
	Direction    string `json:"dir,omitempty"`
}

// AuthorizationPage is a page of authorizations.
type AuthorizationPage struct {
	Total          uint64          `json:"total"`
	Offset         uint64          `json:"offset"`
	Limit          uint64          `json:"limit"`
	Authorizations []Authorization `json:"authorizations"`
}

func (page AuthorizationPage) MarshalJSON() ([]byte, error) {
	type Alias AuthorizationPage
	a := struct {
		Alias
	}{
		Alias: Alias(page),
	}

	if a.Authorizations == nil {
		a.Authorizations = make([]Authorization, 0)
	}

	return json.Marshal(a)
}

// Service is an interface that defines methods for managing authorizations.
//
//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) Abstract Machines"
type Service interface {
	// CreateAuthorization creates a new authorization grant.
	// Only administrators can create authorizations.
	CreateAuthorization(ctx context.Context, session authn.Session, auth Authorization) (Authorization, error)

	// ViewAuthorization returns the authorization with the given ID.
	ViewAuthorization(ctx context.Context, session authn.Session, id string) (Authorization, error)

	// ListAuthorizations returns a page of authorizations matching the
	// given filters.
	ListAuthorizations(ctx context.Context, session authn.Session, pm Page) (AuthorizationPage, error)

	// UpdateAuthorization replaces the owner and permissions of an existing
	// authorization. The resource type and resource ID of a grant never
	// change after creation.
	// Only administrators can update authorizations.
	UpdateAuthorization(ctx context.Context, session authn.Session, auth Authorization) (Authorization, error)

	// RemoveAuthorization deletes the authorization with the given ID.
	// Only administrators can remove authorizations.
	RemoveAuthorization(ctx context.Context, session authn.Session, id string) error
}

// Repository specifies the authorization persistence API.
//
//go:generate mockery --name Repository --output=./mocks --filename repository.go --quiet --note "Copyright (c) Abstract Machines"
type Repository interface {
	// Save persists a new authorization.
	Save(ctx context.Context, auth Authorization) (Authorization, error)

	// RetrieveByID returns the authorization with the given ID.
	RetrieveByID(ctx context.Context, id string) (Authorization, error)

	// RetrieveAll returns a page of authorizations matching the given filters.
	RetrieveAll(ctx context.Context, pm Page) (AuthorizationPage, error)

	// Update replaces the owner and permission fields of an existing
	// authorization.
	Update(ctx context.Context, auth Authorization) (Authorization, error)

	// Delete removes the authorization with the given ID.
	Delete(ctx context.Context, id string) error
}
