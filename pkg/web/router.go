// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shutterdesk/inspection-service/internal/db"
	"github.com/shutterdesk/inspection-service/internal/identity"
	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/tracing"
	"github.com/shutterdesk/inspection-service/pkg/companies"
	"github.com/shutterdesk/inspection-service/pkg/export"
	"github.com/shutterdesk/inspection-service/pkg/inspections"
	"github.com/shutterdesk/inspection-service/pkg/inspectors"
	"github.com/shutterdesk/inspection-service/pkg/metrics"
	"github.com/shutterdesk/inspection-service/pkg/permissions"
	"github.com/shutterdesk/inspection-service/pkg/sites"
	"github.com/shutterdesk/inspection-service/pkg/status"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	renderer export.RendererInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, logger).RegisterEndpoints(router)

	companies.NewAPI(
		companies.NewService(s, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(router)
	permissions.NewAPI(
		permissions.NewService(s, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(router)
	sites.NewAPI(
		sites.NewService(s, dbClient, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(router)
	inspectors.NewAPI(
		inspectors.NewService(s, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(router)
	inspections.NewAPI(
		inspections.NewService(s, dbClient, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(router)
	export.NewAPI(
		export.NewService(s, renderer, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", identity.HeaderName},
			MaxAge:         300,
		},
	)
}
