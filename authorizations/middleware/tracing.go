// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/pkg/authn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ authorizations.Service = (*tracing)(nil)

type tracing struct {
	tracer trace.Tracer
	svc    authorizations.Service
}

// Tracing traces the calls made to the authorizations service.
func Tracing(svc authorizations.Service, tracer trace.Tracer) authorizations.Service {
	return &tracing{tracer, svc}
}

func (tm *tracing) CreateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (authorizations.Authorization, error) {
	ctx, span := tm.tracer.Start(ctx, "create_authorization", trace.WithAttributes(
		attribute.String("owner_id", auth.OwnerID),
		attribute.String("owner_type", auth.OwnerType.String()),
		attribute.String("resource_type", auth.ResourceType.String()),
		attribute.String("resource_id", auth.ResourceID),
	))
	defer span.End()

	return tm.svc.CreateAuthorization(ctx, session, auth)
}

func (tm *tracing) ViewAuthorization(ctx context.Context, session authn.Session, id string) (authorizations.Authorization, error) {
	ctx, span := tm.tracer.Start(ctx, "view_authorization", trace.WithAttributes(
		attribute.String("id", id),
	))
	defer span.End()

	return tm.svc.ViewAuthorization(ctx, session, id)
}

func (tm *tracing) ListAuthorizations(ctx context.Context, session authn.Session, page authorizations.Page) (authorizations.AuthorizationPage, error) {
	ctx, span := tm.tracer.Start(ctx, "list_authorizations", trace.WithAttributes(
		attribute.Int("limit", int(page.Limit)),
		attribute.Int("offset", int(page.Offset)),
		attribute.String("resource_type", page.ResourceType),
		attribute.String("owner_id", page.OwnerID),
	))
	defer span.End()

	return tm.svc.ListAuthorizations(ctx, session, page)
}

func (tm *tracing) UpdateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (authorizations.Authorization, error) {
	ctx, span := tm.tracer.Start(ctx, "update_authorization", trace.WithAttributes(
		attribute.String("id", auth.ID),
		attribute.String("owner_id", auth.OwnerID),
		attribute.String("owner_type", auth.OwnerType.String()),
	))
	defer span.End()

	return tm.svc.UpdateAuthorization(ctx, session, auth)
}

func (tm *tracing) RemoveAuthorization(ctx context.Context, session authn.Session, id string) error {
	ctx, span := tm.tracer.Start(ctx, "remove_authorization", trace.WithAttributes(
		attribute.String("id", id),
	))
	defer span.End()

	return tm.svc.RemoveAuthorization(ctx, session, id)
}
