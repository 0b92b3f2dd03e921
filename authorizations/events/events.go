// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/pkg/events"
)

const (
	authorizationPrefix = "authorization."
	authorizationCreate = authorizationPrefix + "create"
	authorizationUpdate = authorizationPrefix + "update"
	authorizationRemove = authorizationPrefix + "remove"
)

var (
	_ events.Event = (*createAuthorizationEvent)(nil)
	_ events.Event = (*updateAuthorizationEvent)(nil)
	_ events.Event = (*removeAuthorizationEvent)(nil)
)

type createAuthorizationEvent struct {
	authorizations.Authorization
}

func (cae createAuthorizationEvent) Encode() (map[string]interface{}, error) {
	val := map[string]interface{}{
		"operation":     authorizationCreate,
		"id":            cae.ID,
		"owner_id":      cae.OwnerID,
		"owner_type":    cae.OwnerType.String(),
		"resource_type": cae.ResourceType.String(),
		"resource_id":   cae.ResourceID,
		"created_at":    cae.CreatedAt,
	}

	if len(cae.Permissions) > 0 {
		val["permissions"] = cae.Permissions
	}

	return val, nil
}

type updateAuthorizationEvent struct {
	authorizations.Authorization
}

func (uae updateAuthorizationEvent) Encode() (map[string]interface{}, error) {
	val := map[string]interface{}{
		"operation":     authorizationUpdate,
		"id":            uae.ID,
		"owner_id":      uae.OwnerID,
		"owner_type":    uae.OwnerType.String(),
		"resource_type": uae.ResourceType.String(),
		"resource_id":   uae.ResourceID,
		"updated_at":    uae.UpdatedAt,
	}

	if len(uae.Permissions) > 0 {
		val["permissions"] = uae.Permissions
	}
	if !uae.CreatedAt.IsZero() {
		val["created_at"] = uae.CreatedAt
	}

	return val, nil
}

type removeAuthorizationEvent struct {
	id string
}

func (rae removeAuthorizationEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": authorizationRemove,
		"id":        rae.id,
	}, nil
}
