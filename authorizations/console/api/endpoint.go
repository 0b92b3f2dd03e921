// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/authorizations/console"
	"github.com/tibisabau/camunda/internal/api"
	"github.com/tibisabau/camunda/pkg/apiutil"
	"github.com/tibisabau/camunda/pkg/authn"
	"github.com/tibisabau/camunda/pkg/errors"
)

func listPageEndpoint(svc authorizations.Service, cns console.Console) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listPageReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		tab, corrected := cns.ResolveTab(req.resourceType)
		if corrected {
			return redirectRes{location: cns.TabHref(tab, req.limit)}, nil
		}

		page, err := svc.ListAuthorizations(ctx, authn.Session{}, authorizations.Page{
			Offset:       req.offset,
			Limit:        req.limit,
			ResourceType: tab.String(),
			Direction:    api.DefDir,
		})
		if err != nil {
			return listPageRes{view: cns.ErrorView(tab, req.limit, req.requestURI)}, nil
		}

		return listPageRes{view: cns.PageView(tab, req.offset, req.limit, page)}, nil
	}
}
