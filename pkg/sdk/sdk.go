// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package sdk provides a Go client for the authorizations service API.
package sdk

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tibisabau/camunda"
	"github.com/tibisabau/camunda/pkg/errors"
	"moul.io/http2curl"
)

const (
	// CTJSON represents JSON content type.
	CTJSON ContentType = "application/json"

	// BearerPrefix represents the token prefix for Bearer authentication scheme.
	BearerPrefix = "Bearer "
)

// ContentType represents all possible content types.
type ContentType string

var _ SDK = (*camSDK)(nil)

var (
	// ErrFailedCreation indicates that entity creation failed.
	ErrFailedCreation = errors.New("failed to create entity in the db")

	// ErrFailedList indicates that entities list failed.
	ErrFailedList = errors.New("failed to list entities")

	// ErrFailedUpdate indicates that entity update failed.
	ErrFailedUpdate = errors.New("failed to update entity")

	// ErrFailedFetch indicates that fetching of entity data failed.
	ErrFailedFetch = errors.New("failed to fetch entity")

	// ErrFailedRemoval indicates that entity removal failed.
	ErrFailedRemoval = errors.New("failed to remove entity")
)

// PageMetadata carries the optional filters of a list request.
type PageMetadata struct {
	Total        uint64 `json:"total"`
	Offset       uint64 `json:"offset"`
	Limit        uint64 `json:"limit"`
	Direction    string `json:"dir,omitempty"`
	OwnerID      string `json:"owner_id,omitempty"`
	OwnerType    string `json:"owner_type,omitempty"`
	ResourceType string `json:"resource_type,omitempty"`
	ResourceID   string `json:"resource_id,omitempty"`
	Permission   string `json:"permission,omitempty"`
}

// SDK contains the authorizations service API.
//
//go:generate mockery --name SDK --output=./mocks --filename sdk.go --quiet --note "Copyright (c) Abstract Machines"
type SDK interface {
	// CreateAuthorization creates a new authorization grant.
	//
	// example:
	//  auth := sdk.Authorization{
	//    OwnerID:      "9bce0a96-billing",
	//    OwnerType:    "USER",
	//    ResourceType: "PROCESS_DEFINITION",
	//    ResourceID:   "orders",
	//    Permissions:  []string{"READ_PROCESS_DEFINITION"},
	//  }
	//  auth, _ := sdk.CreateAuthorization(auth, "token")
	//  fmt.Println(auth)
	CreateAuthorization(auth Authorization, token string) (Authorization, errors.SDKError)

	// Authorization returns the authorization with the given ID.
	//
	// example:
	//  auth, _ := sdk.Authorization("e21d2a2e-34a4-45a5-a869-002f1e4a2b72", "token")
	//  fmt.Println(auth)
	Authorization(id, token string) (Authorization, errors.SDKError)

	// Authorizations returns a page of authorizations.
	//
	// example:
	//  pm := sdk.PageMetadata{
	//    Offset: 0,
	//    Limit:  10,
	//    ResourceType: "BATCH",
	//  }
	//  page, _ := sdk.Authorizations(pm, "token")
	//  fmt.Println(page)
	Authorizations(pm PageMetadata, token string) (AuthorizationsPage, errors.SDKError)

	// UpdateAuthorization replaces the owner and permissions of the
	// authorization with the given ID.
	//
	// example:
	//  auth := sdk.Authorization{
	//    ID:          "e21d2a2e-34a4-45a5-a869-002f1e4a2b72",
	//    OwnerID:     "9bce0a96-billing",
	//    OwnerType:   "USER",
	//    Permissions: []string{"READ_PROCESS_DEFINITION", "READ_PROCESS_INSTANCE"},
	//  }
	//  auth, _ := sdk.UpdateAuthorization(auth, "token")
	//  fmt.Println(auth)
	UpdateAuthorization(auth Authorization, token string) (Authorization, errors.SDKError)

	// DeleteAuthorization removes the authorization with the given ID.
	//
	// example:
	//  err := sdk.DeleteAuthorization("e21d2a2e-34a4-45a5-a869-002f1e4a2b72", "token")
	//  fmt.Println(err)
	DeleteAuthorization(id, token string) errors.SDKError

	// Health returns service health check.
	//
	// example:
	//  health, _ := sdk.Health()
	//  fmt.Println(health)
	Health() (camunda.HealthInfo, errors.SDKError)
}

type camSDK struct {
	authorizationsURL string

	msgContentType ContentType
	client         *http.Client
	curlFlag       bool
}

// Config contains sdk configuration parameters.
type Config struct {
	AuthorizationsURL string

	MsgContentType  ContentType
	TLSVerification bool
	CurlFlag        bool
}

// NewSDK returns new authorizations SDK instance.
func NewSDK(conf Config) SDK {
	return &camSDK{
		authorizationsURL: conf.AuthorizationsURL,

		msgContentType: conf.MsgContentType,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
		curlFlag: conf.CurlFlag,
	}
}

// processRequest creates and sends a new HTTP request, and checks for errors
// in the HTTP response. It returns the response headers, the response body,
// and the associated error(s) (if any).
func (sdk camSDK) processRequest(method, reqUrl, token string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqUrl, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets a default value for the Content-Type.
	// Overridden if Content-Type is passed in the headers arguments.
	req.Header.Add("Content-Type", string(CTJSON))

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	if token != "" {
		if !strings.HasPrefix(token, BearerPrefix) {
			token = BearerPrefix + token
		}
		req.Header.Set("Authorization", token)
	}

	if sdk.curlFlag {
		curlCommand, err := http2curl.GetCurlCommand(req)
		if err != nil {
			return nil, nil, errors.NewSDKError(err)
		}
		log.Println(curlCommand.String())
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}

func (sdk camSDK) withQueryParams(baseURL, endpoint string, pm PageMetadata) (string, error) {
	q, err := pm.query()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s?%s", baseURL, endpoint, q), nil
}

func (pm PageMetadata) query() (string, error) {
	q := url.Values{}
	if pm.Offset != 0 {
		q.Add("offset", strconv.FormatUint(pm.Offset, 10))
	}
	if pm.Limit != 0 {
		q.Add("limit", strconv.FormatUint(pm.Limit, 10))
	}
	if pm.Direction != "" {
		q.Add("dir", pm.Direction)
	}
	if pm.OwnerID != "" {
		q.Add("owner_id", pm.OwnerID)
	}
	if pm.OwnerType != "" {
		q.Add("owner_type", pm.OwnerType)
	}
	if pm.ResourceType != "" {
		q.Add("resource_type", pm.ResourceType)
	}
	if pm.ResourceID != "" {
		q.Add("resource_id", pm.ResourceID)
	}
	if pm.Permission != "" {
		q.Add("permission", pm.Permission)
	}

	return q.Encode(), nil
}
