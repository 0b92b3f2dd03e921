// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/tibisabau/camunda/pkg/events"
	"github.com/tibisabau/camunda/pkg/events/redis"
)

// NewPublisher returns an event publisher backed by the Redis event store.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	pb, err := redis.NewPublisher(ctx, url, stream)
	if err != nil {
		return nil, err
	}

	return pb, nil
}
