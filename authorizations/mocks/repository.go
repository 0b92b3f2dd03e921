// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tibisabau/camunda/authorizations"
)

var _ authorizations.Repository = (*Repository)(nil)

type Repository struct {
	mock.Mock
}

func (m *Repository) Save(ctx context.Context, auth authorizations.Authorization) (authorizations.Authorization, error) {
	ret := m.Called(ctx, auth)

	return ret.Get(0).(authorizations.Authorization), ret.Error(1)
}

func (m *Repository) RetrieveByID(ctx context.Context, id string) (authorizations.Authorization, error) {
	ret := m.Called(ctx, id)

	return ret.Get(0).(authorizations.Authorization), ret.Error(1)
}

func (m *Repository) RetrieveAll(ctx context.Context, pm authorizations.Page) (authorizations.AuthorizationPage, error) {
	ret := m.Called(ctx, pm)

	return ret.Get(0).(authorizations.AuthorizationPage), ret.Error(1)
}

func (m *Repository) Update(ctx context.Context, auth authorizations.Authorization) (authorizations.Authorization, error) {
	ret := m.Called(ctx, auth)

	return ret.Get(0).(authorizations.Authorization), ret.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
