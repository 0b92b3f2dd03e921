// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tibisabau/camunda/pkg/events"
)

var _ events.Publisher = (*Publisher)(nil)

type Publisher struct {
	mock.Mock
}

func (pub *Publisher) Publish(ctx context.Context, event events.Event) error {
	ret := pub.Called(ctx, event)

	return ret.Error(0)
}

func (pub *Publisher) Close() error {
	ret := pub.Called()

	return ret.Error(0)
}
