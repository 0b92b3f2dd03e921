// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"context"

	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/pkg/authn"
	"github.com/tibisabau/camunda/pkg/events"
	"github.com/tibisabau/camunda/pkg/events/store"
)

const streamID = "camunda.authorizations"

var _ authorizations.Service = (*eventStore)(nil)

type eventStore struct {
	events.Publisher
	svc authorizations.Service
}

// NewEventStoreMiddleware returns wrapper around authorizations service that
// sends events to event store.
func NewEventStoreMiddleware(ctx context.Context, svc authorizations.Service, url string) (authorizations.Service, error) {
	publisher, err := store.NewPublisher(ctx, url, streamID)
	if err != nil {
		return nil, err
	}

	return &eventStore{
		svc:       svc,
		Publisher: publisher,
	}, nil
}

func (es *eventStore) CreateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (authorizations.Authorization, error) {
	auth, err := es.svc.CreateAuthorization(ctx, session, auth)
	if err != nil {
		return auth, err
	}

	event := createAuthorizationEvent{
		auth,
	}

	if err := es.Publish(ctx, event); err != nil {
		return auth, err
	}

	return auth, nil
}

func (es *eventStore) ViewAuthorization(ctx context.Context, session authn.Session, id string) (authorizations.Authorization, error) {
	return es.svc.ViewAuthorization(ctx, session, id)
}

func (es *eventStore) ListAuthorizations(ctx context.Context, session authn.Session, page authorizations.Page) (authorizations.AuthorizationPage, error) {
	return es.svc.ListAuthorizations(ctx, session, page)
}

func (es *eventStore) UpdateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (authorizations.Authorization, error) {
	auth, err := es.svc.UpdateAuthorization(ctx, session, auth)
	if err != nil {
		return auth, err
	}

	event := updateAuthorizationEvent{
		auth,
	}

	if err := es.Publish(ctx, event); err != nil {
		return auth, err
	}

	return auth, nil
}

func (es *eventStore) RemoveAuthorization(ctx context.Context, session authn.Session, id string) error {
	if err := es.svc.RemoveAuthorization(ctx, session, id); err != nil {
		return err
	}

	event := removeAuthorizationEvent{
		id: id,
	}

	return es.Publish(ctx, event)
}
