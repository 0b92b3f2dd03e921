// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/pkg/authn"
)

var _ authorizations.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    authorizations.Service
}

// Logging adds logging facilities to the authorizations service.
func Logging(logger *slog.Logger, svc authorizations.Service) authorizations.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm *loggingMiddleware) CreateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (a authorizations.Authorization, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("authorization",
				slog.String("id", a.ID),
				slog.String("owner_id", auth.OwnerID),
				slog.String("owner_type", auth.OwnerType.String()),
				slog.String("resource_type", auth.ResourceType.String()),
				slog.String("resource_id", auth.ResourceID),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create authorization failed", args...)
			return
		}
		lm.logger.Info("Create authorization completed successfully", args...)
	}(time.Now())

	return lm.svc.CreateAuthorization(ctx, session, auth)
}

func (lm *loggingMiddleware) ViewAuthorization(ctx context.Context, session authn.Session, id string) (a authorizations.Authorization, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View authorization failed", args...)
			return
		}
		lm.logger.Info("View authorization completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewAuthorization(ctx, session, id)
}

func (lm *loggingMiddleware) ListAuthorizations(ctx context.Context, session authn.Session, page authorizations.Page) (ap authorizations.AuthorizationPage, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("page",
				slog.String("resource_type", page.ResourceType),
				slog.Uint64("offset", page.Offset),
				slog.Uint64("limit", page.Limit),
				slog.Uint64("total", ap.Total),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List authorizations failed", args...)
			return
		}
		lm.logger.Info("List authorizations completed successfully", args...)
	}(time.Now())

	return lm.svc.ListAuthorizations(ctx, session, page)
}

func (lm *loggingMiddleware) UpdateAuthorization(ctx context.Context, session authn.Session, auth authorizations.Authorization) (a authorizations.Authorization, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("authorization",
				slog.String("id", auth.ID),
				slog.String("owner_id", auth.OwnerID),
				slog.String("owner_type", auth.OwnerType.String()),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Update authorization failed", args...)
			return
		}
		lm.logger.Info("Update authorization completed successfully", args...)
	}(time.Now())

	return lm.svc.UpdateAuthorization(ctx, session, auth)
}

func (lm *loggingMiddleware) RemoveAuthorization(ctx context.Context, session authn.Session, id string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove authorization failed", args...)
			return
		}
		lm.logger.Info("Remove authorization completed successfully", args...)
	}(time.Now())

	return lm.svc.RemoveAuthorization(ctx, session, id)
}
