// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains authorizations main function to start the
// authorizations service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"

	"github.com/caarlos0/env/v10"
	chi "github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/authorizations/api"
	"github.com/tibisabau/camunda/authorizations/console"
	consoleapi "github.com/tibisabau/camunda/authorizations/console/api"
	authevents "github.com/tibisabau/camunda/authorizations/events"
	"github.com/tibisabau/camunda/authorizations/middleware"
	authorizationspg "github.com/tibisabau/camunda/authorizations/postgres"
	"github.com/tibisabau/camunda/internal"
	"github.com/tibisabau/camunda/internal/clients/jaeger"
	"github.com/tibisabau/camunda/internal/server"
	httpserver "github.com/tibisabau/camunda/internal/server/http"
	"github.com/tibisabau/camunda/pkg/authn/jwt"
	camlog "github.com/tibisabau/camunda/pkg/logger"
	pgclient "github.com/tibisabau/camunda/pkg/postgres"
	"github.com/tibisabau/camunda/pkg/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "authorizations"
	envPrefixDB    = "CAMUNDA_AUTHORIZATIONS_DB_"
	envPrefixHTTP  = "CAMUNDA_AUTHORIZATIONS_HTTP_"
	defDB          = "authorizations"
	defSvcHTTPPort = "9008"
)

type config struct {
	LogLevel       string  `env:"CAMUNDA_AUTHORIZATIONS_LOG_LEVEL"   envDefault:"info"`
	Secret         string  `env:"CAMUNDA_AUTHORIZATIONS_SECRET"      envDefault:"secret"`
	TenantsEnabled bool    `env:"CAMUNDA_TENANTS_API_ENABLED"        envDefault:"true"`
	InstanceID     string  `env:"CAMUNDA_AUTHORIZATIONS_INSTANCE_ID" envDefault:""`
	ESURL          string  `env:"CAMUNDA_ES_URL"                     envDefault:"redis://localhost:6379/0"`
	JaegerURL      url.URL `env:"CAMUNDA_JAEGER_URL"                 envDefault:"http://localhost:14268/api/traces"`
	TraceRatio     float64 `env:"CAMUNDA_JAEGER_TRACE_RATIO"         envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := camlog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer camlog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	dbConfig := pgclient.Config{Name: defDB}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefixDB}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s database configuration : %s", svcName, err))
		exitCode = 1
		return
	}
	db, err := pgclient.Setup(dbConfig, *authorizationspg.Migration())
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer db.Close()

	tp, err := jaeger.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %v", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	svc, err := newService(ctx, db, dbConfig, tracer, cfg, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create %s service: %s", svcName, err))
		exitCode = 1
		return
	}

	cns, err := console.New(cfg.TenantsEnabled, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create %s console: %s", svcName, err))
		exitCode = 1
		return
	}

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	authn := jwt.New([]byte(cfg.Secret))

	mux := chi.NewRouter()
	consoleapi.MakeHandler(svc, cns, mux, logger)
	httpSvr := httpserver.New(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, authn, mux, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return httpSvr.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, httpSvr)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(ctx context.Context, db *sqlx.DB, dbConfig pgclient.Config, tracer trace.Tracer, cfg config, logger *slog.Logger) (authorizations.Service, error) {
	database := pgclient.NewDatabase(db, dbConfig, tracer)
	repo := authorizationspg.NewRepository(database)
	idp := uuid.New()

	svc := authorizations.NewService(repo, idp)
	svc, err := authevents.NewEventStoreMiddleware(ctx, svc, cfg.ESURL)
	if err != nil {
		return nil, err
	}
	svc = middleware.Tracing(svc, tracer)
	svc = middleware.Logging(logger, svc)
	counter, latency := internal.MakeMetrics(svcName, "api")
	svc = middleware.Metrics(counter, latency, svc)

	return svc, nil
}
