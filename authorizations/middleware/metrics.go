// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/pkg/authn"
)

var _ authorizations.Service = (*metricsmw)(nil)

type metricsmw struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     authorizations.Service
}

// Metrics instruments the authorizations service by means of metrics.
func Metrics(counter metrics.Counter, latency metrics.Histogram, svc authorizations.Service) authorizations.Service {
	return &metricsmw{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsmw) CreateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (authorizations.Authorization, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "create_authorization").Add(1)
		mm.latency.With("method", "create_authorization").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.CreateAuthorization(ctx, session, auth)
}

func (mm *metricsmw) ViewAuthorization(ctx context.Context, session authn.Session, id string) (authorizations.Authorization, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_authorization").Add(1)
		mm.latency.With("method", "view_authorization").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.ViewAuthorization(ctx, session, id)
}

func (mm *metricsmw) ListAuthorizations(ctx context.Context, session authn.Session, page authorizations.Page) (authorizations.AuthorizationPage, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_authorizations").Add(1)
		mm.latency.With("method", "list_authorizations").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.ListAuthorizations(ctx, session, page)
}

func (mm *metricsmw) UpdateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (authorizations.Authorization, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "update_authorization").Add(1)
		mm.latency.With("method", "update_authorization").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.UpdateAuthorization(ctx, session, auth)
}

func (mm *metricsmw) RemoveAuthorization(ctx context.Context, session authn.Session, id string) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "remove_authorization").Add(1)
		mm.latency.With("method", "remove_authorization").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.RemoveAuthorization(ctx, session, id)
}
