// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package api exposes the authorizations console page over HTTP.
package api

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/authorizations/console"
	"github.com/tibisabau/camunda/internal/api"
	"github.com/tibisabau/camunda/pkg/apiutil"
	"github.com/tibisabau/camunda/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const htmlContentType = "text/html; charset=utf-8"

// MakeHandler registers the console page route on the given router.
func MakeHandler(svc authorizations.Service, cns console.Console, mux *chi.Mux, logger *slog.Logger) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux.Get(console.PagePath, otelhttp.NewHandler(kithttp.NewServer(
		listPageEndpoint(svc, cns),
		decodeListPageReq,
		encodePageResponse(cns),
		opts...,
	), "authorizations_page").ServeHTTP)

	return mux
}

func decodeListPageReq(_ context.Context, r *http.Request) (interface{}, error) {
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	resourceType, err := apiutil.ReadStringQuery(r, console.ResourceTypeParam, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listPageReq{
		resourceType: resourceType,
		offset:       offset,
		limit:        limit,
		requestURI:   r.URL.RequestURI(),
	}

	return req, nil
}

// encodePageResponse renders the page into a buffer first so that a template
// failure still reaches the error encoder instead of a half-written body.
func encodePageResponse(cns console.Console) kithttp.EncodeResponseFunc {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		switch res := response.(type) {
		case redirectRes:
			w.Header().Set("Location", res.location)
			w.WriteHeader(http.StatusSeeOther)
			return nil
		case listPageRes:
			var buf bytes.Buffer
			if err := cns.Render(&buf, res.view); err != nil {
				return err
			}
			w.Header().Set("Content-Type", htmlContentType)
			w.WriteHeader(http.StatusOK)
			_, err := w.Write(buf.Bytes())
			return err
		default:
			return api.EncodeResponse(ctx, w, response)
		}
	}
}
