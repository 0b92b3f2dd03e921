// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tibisabau/camunda"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/internal/api"
	"github.com/tibisabau/camunda/pkg/apiutil"
	mgauthn "github.com/tibisabau/camunda/pkg/authn"
	"github.com/tibisabau/camunda/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler registers the authorizations API routes on the given router
// and returns a handler with health check and metrics.
func MakeHandler(svc authorizations.Service, authn mgauthn.Authentication, mux *chi.Mux, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux.Group(func(r chi.Router) {
		r.Use(api.AuthenticateMiddleware(authn))

		r.Route("/authorizations", func(r chi.Router) {
			r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
				createAuthorizationEndpoint(svc),
				decodeCreateAuthorizationReq,
				api.EncodeResponse,
				opts...,
			), "create_authorization").ServeHTTP)
			r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
				listAuthorizationsEndpoint(svc),
				decodeListAuthorizationsReq,
				api.EncodeResponse,
				opts...,
			), "list_authorizations").ServeHTTP)
			r.Route("/{authID}", func(r chi.Router) {
				r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
					viewAuthorizationEndpoint(svc),
					decodeViewAuthorizationReq,
					api.EncodeResponse,
					opts...,
				), "view_authorization").ServeHTTP)
				r.Put("/", otelhttp.NewHandler(kithttp.NewServer(
					updateAuthorizationEndpoint(svc),
					decodeUpdateAuthorizationReq,
					api.EncodeResponse,
					opts...,
				), "update_authorization").ServeHTTP)
				r.Delete("/", otelhttp.NewHandler(kithttp.NewServer(
					removeAuthorizationEndpoint(svc),
					decodeRemoveAuthorizationReq,
					api.EncodeResponse,
					opts...,
				), "remove_authorization").ServeHTTP)
			})
		})
	})

	mux.Get("/health", camunda.Health("authorizations", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeCreateAuthorizationReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req createAuthorizationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return req, nil
}

func decodeViewAuthorizationReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := viewAuthorizationReq{
		id: chi.URLParam(r, "authID"),
	}

	return req, nil
}

func decodeListAuthorizationsReq(_ context.Context, r *http.Request) (interface{}, error) {
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	ownerID, err := apiutil.ReadStringQuery(r, api.OwnerKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	ownerType, err := apiutil.ReadStringQuery(r, api.OwnerTypeKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	if ownerType != "" {
		if _, err := authorizations.ToOwnerType(ownerType); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
	}
	resourceType, err := apiutil.ReadStringQuery(r, api.ResourceTypeKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	if resourceType != "" {
		if _, err := authorizations.ToResourceType(resourceType); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
	}
	resourceID, err := apiutil.ReadStringQuery(r, api.ResourceKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	permission, err := apiutil.ReadStringQuery(r, api.PermissionKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	dir, err := apiutil.ReadStringQuery(r, api.DirKey, api.DefDir)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listAuthorizationsReq{
		Page: authorizations.Page{
			Offset:       offset,
			Limit:        limit,
			OwnerID:      ownerID,
			OwnerType:    ownerType,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Permission:   permission,
			Direction:    dir,
		},
	}

	return req, nil
}

func decodeUpdateAuthorizationReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	var req updateAuthorizationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}
	req.id = chi.URLParam(r, "authID")

	return req, nil
}

func decodeRemoveAuthorizationReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := removeAuthorizationReq{
		id: chi.URLParam(r, "authID"),
	}

	return req, nil
}
