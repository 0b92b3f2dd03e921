// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/internal/api"
	"github.com/tibisabau/camunda/pkg/apiutil"
)

const maxLimitSize = api.MaxLimitSize

// Enum fields are pointers so that absent JSON fields fail validation
// instead of decoding to the zero enum value.
type createAuthorizationReq struct {
	OwnerID      string                       `json:"owner_id"`
	OwnerType    *authorizations.OwnerType    `json:"owner_type"`
	ResourceType *authorizations.ResourceType `json:"resource_type"`
	ResourceID   string                       `json:"resource_id"`
	Permissions  []string                     `json:"permissions"`
}

func (req createAuthorizationReq) validate() error {
	if req.OwnerID == "" {
		return apiutil.ErrMissingOwnerID
	}
	if req.OwnerType == nil {
		return apiutil.ErrInvalidOwnerType
	}
	if req.ResourceType == nil {
		return apiutil.ErrInvalidResourceType
	}
	if req.ResourceID == "" {
		return apiutil.ErrMissingResourceID
	}
	if len(req.Permissions) == 0 {
		return apiutil.ErrMissingPermissions
	}

	return nil
}

func (req createAuthorizationReq) authorization() authorizations.Authorization {
	return authorizations.Authorization{
		OwnerID:      req.OwnerID,
		OwnerType:    *req.OwnerType,
		ResourceType: *req.ResourceType,
		ResourceID:   req.ResourceID,
		Permissions:  req.Permissions,
	}
}

type viewAuthorizationReq struct {
	id string
}

func (req viewAuthorizationReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return api.ValidateUUID(req.id)
}

type listAuthorizationsReq struct {
	authorizations.Page
}

func (req listAuthorizationsReq) validate() error {
	if req.Limit > maxLimitSize || req.Limit < 1 {
		return apiutil.ErrLimitSize
	}
	if req.Direction != "" && req.Direction != api.AscDir && req.Direction != api.DescDir {
		return apiutil.ErrInvalidDirection
	}

	return nil
}

type updateAuthorizationReq struct {
	id          string
	OwnerID     string                    `json:"owner_id"`
	OwnerType   *authorizations.OwnerType `json:"owner_type"`
	Permissions []string                  `json:"permissions"`
}

func (req updateAuthorizationReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if err := api.ValidateUUID(req.id); err != nil {
		return err
	}
	if req.OwnerID == "" {
		return apiutil.ErrMissingOwnerID
	}
	if req.OwnerType == nil {
		return apiutil.ErrInvalidOwnerType
	}
	if len(req.Permissions) == 0 {
		return apiutil.ErrMissingPermissions
	}

	return nil
}

func (req updateAuthorizationReq) authorization() authorizations.Authorization {
	return authorizations.Authorization{
		ID:          req.id,
		OwnerID:     req.OwnerID,
		OwnerType:   *req.OwnerType,
		Permissions: req.Permissions,
	}
}

type removeAuthorizationReq struct {
	id string
}

func (req removeAuthorizationReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return api.ValidateUUID(req.id)
}
