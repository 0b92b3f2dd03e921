// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/internal/api"
	"github.com/tibisabau/camunda/pkg/apiutil"
	"github.com/tibisabau/camunda/pkg/authn"
	"github.com/tibisabau/camunda/pkg/errors"
	svcerr "github.com/tibisabau/camunda/pkg/errors/service"
)

func createAuthorizationEndpoint(svc authorizations.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(createAuthorizationReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		auth, err := svc.CreateAuthorization(ctx, session, req.authorization())
		if err != nil {
			return nil, err
		}

		return createAuthorizationRes{
			Authorization: auth,
		}, nil
	}
}

func viewAuthorizationEndpoint(svc authorizations.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(viewAuthorizationReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		auth, err := svc.ViewAuthorization(ctx, session, req.id)
		if err != nil {
			return nil, err
		}

		return viewAuthorizationRes{
			Authorization: auth,
		}, nil
	}
}

func listAuthorizationsEndpoint(svc authorizations.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listAuthorizationsReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		page, err := svc.ListAuthorizations(ctx, session, req.Page)
		if err != nil {
			return nil, err
		}

		return listAuthorizationsRes{
			page,
		}, nil
	}
}

func updateAuthorizationEndpoint(svc authorizations.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateAuthorizationReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		auth, err := svc.UpdateAuthorization(ctx, session, req.authorization())
		if err != nil {
			return nil, err
		}

		return updateAuthorizationRes{
			Authorization: auth,
		}, nil
	}
}

func removeAuthorizationEndpoint(svc authorizations.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(removeAuthorizationReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}
		session, ok := ctx.Value(api.SessionKey).(authn.Session)
		if !ok {
			return nil, svcerr.ErrAuthorization
		}

		if err := svc.RemoveAuthorization(ctx, session, req.id); err != nil {
			return nil, err
		}

		return removeAuthorizationRes{}, nil
	}
}
