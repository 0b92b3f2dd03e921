// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/pkg/authn"
)

var _ authorizations.Service = (*Service)(nil)

type Service struct {
	mock.Mock
}

func (m *Service) CreateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (authorizations.Authorization, error) {
	ret := m.Called(ctx, session, auth)

	return ret.Get(0).(authorizations.Authorization), ret.Error(1)
}

func (m *Service) ViewAuthorization(ctx context.Context, session authn.Session, id string) (authorizations.Authorization, error) {
	ret := m.Called(ctx, session, id)

	return ret.Get(0).(authorizations.Authorization), ret.Error(1)
}

func (m *Service) ListAuthorizations(ctx context.Context, session authn.Session, pm authorizations.Page) (authorizations.AuthorizationPage, error) {
	ret := m.Called(ctx, session, pm)

	return ret.Get(0).(authorizations.AuthorizationPage), ret.Error(1)
}

func (m *Service) UpdateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (authorizations.Authorization, error) {
	ret := m.Called(ctx, session, auth)

	return ret.Get(0).(authorizations.Authorization), ret.Error(1)
}

func (m *Service) RemoveAuthorization(ctx context.Context, session authn.Session, id string) error {
	ret := m.Called(ctx, session, id)

	return ret.Error(0)
}
