// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net/http"

	"github.com/tibisabau/camunda"
	"github.com/tibisabau/camunda/authorizations"
)

var (
	_ camunda.Response = (*createAuthorizationRes)(nil)
	_ camunda.Response = (*viewAuthorizationRes)(nil)
	_ camunda.Response = (*listAuthorizationsRes)(nil)
	_ camunda.Response = (*updateAuthorizationRes)(nil)
	_ camunda.Response = (*removeAuthorizationRes)(nil)
)

type createAuthorizationRes struct {
	authorizations.Authorization `json:",inline"`
}

func (res createAuthorizationRes) Code() int {
	return http.StatusCreated
}

func (res createAuthorizationRes) Headers() map[string]string {
	return map[string]string{
		"Location": fmt.Sprintf("/authorizations/%s", res.ID),
	}
}

func (res createAuthorizationRes) Empty() bool {
	return false
}

type viewAuthorizationRes struct {
	authorizations.Authorization `json:",inline"`
}

func (res viewAuthorizationRes) Code() int {
	return http.StatusOK
}

func (res viewAuthorizationRes) Headers() map[string]string {
	return map[string]string{}
}

func (res viewAuthorizationRes) Empty() bool {
	return false
}

type listAuthorizationsRes struct {
	authorizations.AuthorizationPage `json:",inline"`
}

func (res listAuthorizationsRes) Code() int {
	return http.StatusOK
}

func (res listAuthorizationsRes) Headers() map[string]string {
	return map[string]string{}
}

func (res listAuthorizationsRes) Empty() bool {
	return false
}

type updateAuthorizationRes struct {
	authorizations.Authorization `json:",inline"`
}

func (res updateAuthorizationRes) Code() int {
	return http.StatusOK
}

func (res updateAuthorizationRes) Headers() map[string]string {
	return map[string]string{}
}

func (res updateAuthorizationRes) Empty() bool {
	return false
}

type removeAuthorizationRes struct{}

func (res removeAuthorizationRes) Code() int {
	return http.StatusNoContent
}

func (res removeAuthorizationRes) Headers() map[string]string {
	return map[string]string{}
}

func (res removeAuthorizationRes) Empty() bool {
	return true
}
