// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/tibisabau/camunda"
	"github.com/tibisabau/camunda/pkg/errors"
	sdk "github.com/tibisabau/camunda/pkg/sdk"
)

var _ sdk.SDK = (*SDK)(nil)

type SDK struct {
	mock.Mock
}

func (m *SDK) CreateAuthorization(auth sdk.Authorization, token string) (sdk.Authorization, errors.SDKError) {
	ret := m.Called(auth, token)

	var sdkErr errors.SDKError
	if err := ret.Get(1); err != nil {
		sdkErr = err.(errors.SDKError)
	}

	return ret.Get(0).(sdk.Authorization), sdkErr
}

func (m *SDK) Authorization(id, token string) (sdk.Authorization, errors.SDKError) {
	ret := m.Called(id, token)

	var sdkErr errors.SDKError
	if err := ret.Get(1); err != nil {
		sdkErr = err.(errors.SDKError)
	}

	return ret.Get(0).(sdk.Authorization), sdkErr
}

func (m *SDK) Authorizations(pm sdk.PageMetadata, token string) (sdk.AuthorizationsPage, errors.SDKError) {
	ret := m.Called(pm, token)

	var sdkErr errors.SDKError
	if err := ret.Get(1); err != nil {
		sdkErr = err.(errors.SDKError)
	}

	return ret.Get(0).(sdk.AuthorizationsPage), sdkErr
}

func (m *SDK) UpdateAuthorization(auth sdk.Authorization, token string) (sdk.Authorization, errors.SDKError) {
	ret := m.Called(auth, token)

	var sdkErr errors.SDKError
	if err := ret.Get(1); err != nil {
		sdkErr = err.(errors.SDKError)
	}

	return ret.Get(0).(sdk.Authorization), sdkErr
}

func (m *SDK) DeleteAuthorization(id, token string) errors.SDKError {
	ret := m.Called(id, token)

	var sdkErr errors.SDKError
	if err := ret.Get(0); err != nil {
		sdkErr = err.(errors.SDKError)
	}

	return sdkErr
}

func (m *SDK) Health() (camunda.HealthInfo, errors.SDKError) {
	ret := m.Called()

	var sdkErr errors.SDKError
	if err := ret.Get(1); err != nil {
		sdkErr = err.(errors.SDKError)
	}

	return ret.Get(0).(camunda.HealthInfo), sdkErr
}
