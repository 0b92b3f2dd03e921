// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tibisabau/camunda/pkg/errors"
)

const authorizationsEndpoint = "authorizations"

// Authorization is a grant giving an owner a set of permissions over the
// resources of one resource type.
type Authorization struct {
	ID           string    `json:"id,omitempty"`
	OwnerID      string    `json:"owner_id"`
	OwnerType    string    `json:"owner_type"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	Permissions  []string  `json:"permissions"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// AuthorizationsPage is a page of authorizations.
type AuthorizationsPage struct {
	Total          uint64          `json:"total"`
	Offset         uint64          `json:"offset"`
	Limit          uint64          `json:"limit"`
	Authorizations []Authorization `json:"authorizations"`
}

func (sdk camSDK) CreateAuthorization(auth Authorization, token string) (Authorization, errors.SDKError) {
	data, err := json.Marshal(auth)
	if err != nil {
		return Authorization{}, errors.NewSDKError(err)
	}

	url := sdk.authorizationsURL + "/" + authorizationsEndpoint

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, token, data, nil, http.StatusCreated)
	if sdkerr != nil {
		return Authorization{}, sdkerr
	}

	auth = Authorization{}
	if err := json.Unmarshal(body, &auth); err != nil {
		return Authorization{}, errors.NewSDKError(err)
	}

	return auth, nil
}

func (sdk camSDK) Authorization(id, token string) (Authorization, errors.SDKError) {
	url := sdk.authorizationsURL + "/" + authorizationsEndpoint + "/" + id

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Authorization{}, sdkerr
	}

	var auth Authorization
	if err := json.Unmarshal(body, &auth); err != nil {
		return Authorization{}, errors.NewSDKError(err)
	}

	return auth, nil
}

func (sdk camSDK) Authorizations(pm PageMetadata, token string) (AuthorizationsPage, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.authorizationsURL, authorizationsEndpoint, pm)
	if err != nil {
		return AuthorizationsPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return AuthorizationsPage{}, sdkerr
	}

	var page AuthorizationsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return AuthorizationsPage{}, errors.NewSDKError(err)
	}

	return page, nil
}

func (sdk camSDK) UpdateAuthorization(auth Authorization, token string) (Authorization, errors.SDKError) {
	data, err := json.Marshal(auth)
	if err != nil {
		return Authorization{}, errors.NewSDKError(err)
	}

	url := sdk.authorizationsURL + "/" + authorizationsEndpoint + "/" + auth.ID

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, token, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Authorization{}, sdkerr
	}

	auth = Authorization{}
	if err := json.Unmarshal(body, &auth); err != nil {
		return Authorization{}, errors.NewSDKError(err)
	}

	return auth, nil
}

func (sdk camSDK) DeleteAuthorization(id, token string) errors.SDKError {
	url := sdk.authorizationsURL + "/" + authorizationsEndpoint + "/" + id

	_, _, sdkerr := sdk.processRequest(http.MethodDelete, url, token, nil, nil, http.StatusNoContent)

	return sdkerr
}
